package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timeline/models"
	"timeline/services"
)

type RoomHandler struct {
	roomService *services.RoomService
	hub         *services.Hub
}

func NewRoomHandler(roomService *services.RoomService, hub *services.Hub) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		hub:         hub,
	}
}

type CreateRoomRequest struct {
	PlayerID     string `json:"playerId" binding:"required"`
	PlayerName   string `json:"playerName" binding:"required,min=2,max=20"`
	PlayerAvatar string `json:"playerAvatar" binding:"required"`
	Mode         string `json:"mode"`
}

type JoinRoomRequest struct {
	Code         string `json:"code" binding:"required"`
	PlayerID     string `json:"playerId" binding:"required"`
	PlayerName   string `json:"playerName" binding:"required,min=2,max=20"`
	PlayerAvatar string `json:"playerAvatar" binding:"required"`
}

func roomSummary(room *models.Room) gin.H {
	return gin.H{
		"id":      room.ID,
		"code":    room.Code,
		"status":  room.Status,
		"mode":    room.Mode,
		"hostId":  room.HostID,
		"players": room.Players,
	}
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode := models.GameMode(req.Mode)
	if req.Mode == "" {
		mode = models.ModeGlobal
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req.PlayerID, req.PlayerName, req.PlayerAvatar, mode)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "room": roomSummary(room)})
}

func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.JoinRoom(c.Request.Context(), req.Code, req.PlayerID, req.PlayerName, req.PlayerAvatar)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "room": roomSummary(room)})
}

func (h *RoomHandler) GetRoomByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room code required"})
		return
	}

	room, err := h.roomService.GetRoomByCode(c.Request.Context(), code)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"room":             roomSummary(room),
		"connectedPlayers": h.hub.ConnectedPlayers(room.Code),
	})
}

type LeaveRoomRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	roomID := c.Param("roomId")

	var req LeaveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.roomService.LeaveRoom(c.Request.Context(), roomID, req.PlayerID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CleanupRooms runs the retention sweep. Operator endpoint, not part of the
// game flow.
func (h *RoomHandler) CleanupRooms(c *gin.Context) {
	deleted, err := h.roomService.CleanupExpiredRooms(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}
