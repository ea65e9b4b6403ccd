package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timeline/services"
)

type GameHandler struct {
	roomService *services.RoomService
}

func NewGameHandler(roomService *services.RoomService) *GameHandler {
	return &GameHandler{roomService: roomService}
}

func (h *GameHandler) GetGameState(c *gin.Context) {
	roomID := c.Param("roomId")

	state, err := h.roomService.GetGameState(c.Request.Context(), roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "game": state})
}

type StartGameRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

func (h *GameHandler) StartGame(c *gin.Context) {
	roomID := c.Param("roomId")

	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.StartGame(c.Request.Context(), roomID, req.PlayerID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "game": services.ProjectGameState(room)})
}

type SubmitAnswerRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Answer   *int   `json:"answer" binding:"required"`
}

func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	roomID := c.Param("roomId")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allSubmitted, status, err := h.roomService.SubmitAnswer(c.Request.Context(), roomID, req.PlayerID, *req.Answer)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"allSubmitted":     allSubmitted,
		"submissionStatus": status,
	})
}

type RevealRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	// Round is the round the client believes it is revealing; when set, a
	// duplicate reveal for an already-resolved round is rejected.
	Round *int `json:"round"`
}

func (h *GameHandler) RevealRound(c *gin.Context) {
	roomID := c.Param("roomId")

	var req RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.roomService.RevealRound(c.Request.Context(), roomID, req.Round)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := gin.H{
		"success":      true,
		"results":      result.Results,
		"winnerId":     result.WinnerID,
		"gameFinished": result.GameFinished,
	}
	if !result.GameFinished {
		resp["nextRound"] = gin.H{
			"round":          result.Room.CurrentRound,
			"roundType":      result.Room.RoundType,
			"hint":           result.Room.Hint,
			"forcedCategory": result.Room.ForcedCategory,
			"currentEvent":   result.Room.CurrentEvent,
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) GetSubmissionStatus(c *gin.Context) {
	roomID := c.Param("roomId")

	status, err := h.roomService.GetSubmissionStatus(c.Request.Context(), roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submissionStatus": status})
}
