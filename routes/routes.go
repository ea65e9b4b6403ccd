package routes

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"timeline/handlers"
	"timeline/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // fronted by the same origin in production
	},
}

func SetupRoutes(
	router *gin.Engine,
	roomHandler *handlers.RoomHandler,
	gameHandler *handlers.GameHandler,
	archiveHandler *handlers.ArchiveHandler,
	hub *services.Hub,
	roomService *services.RoomService,
) {
	api := router.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.POST("", roomHandler.CreateRoom)
			rooms.POST("/join", roomHandler.JoinRoom)
			rooms.GET("/:code", roomHandler.GetRoomByCode)
		}

		games := api.Group("/games")
		{
			games.GET("/:roomId", gameHandler.GetGameState)
			games.GET("/:roomId/submissions", gameHandler.GetSubmissionStatus)
			games.POST("/:roomId/start", gameHandler.StartGame)
			games.POST("/:roomId/answer", gameHandler.SubmitAnswer)
			games.POST("/:roomId/reveal", gameHandler.RevealRound)
			games.POST("/:roomId/leave", roomHandler.LeaveRoom)
		}

		if archiveHandler != nil {
			api.GET("/archive/recent", archiveHandler.RecentGames)
		}

		// Operator-invoked retention sweep.
		api.POST("/internal/cleanup", roomHandler.CleanupRooms)
	}

	// WebSocket endpoint: clients subscribe to a room code and receive the
	// full client-safe state after every committed write.
	router.GET("/ws/:code/:playerId", func(c *gin.Context) {
		code := c.Param("code")
		playerID := c.Param("playerId")

		// The room must exist; the player need not have joined yet, a lobby
		// screen watches the room before joining.
		if _, err := roomService.GetRoomByCode(context.Background(), code); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("websocket upgrade failed for room %s: %v", code, err)
			return
		}

		hub.RegisterClient(conn, code, playerID)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
