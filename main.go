package main

import (
	"log"

	"timeline/config"
	"timeline/handlers"
	"timeline/models"
	"timeline/routes"
	"timeline/services"
	"timeline/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Pick the room store backend
	var roomStore store.RoomStore
	switch cfg.StoreBackend {
	case "redis":
		redisClient := config.InitRedis(cfg)
		roomStore = store.NewRedisStore(redisClient, services.RoomTTL)
		log.Printf("using redis room store at %s:%s", cfg.RedisHost, cfg.RedisPort)
	default:
		roomStore = store.NewMemoryStore()
		log.Print("using in-memory room store")
	}

	// Optional finished-game archive
	var archiveService *services.ArchiveService
	if cfg.ArchiveEnabled {
		db, err := config.InitDB(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := db.AutoMigrate(&models.GameRecord{}, &models.PlayerStanding{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		archiveService = services.NewArchiveService(db)
	}

	// Initialize services
	roomService := services.NewRoomService(roomStore, archiveService)

	// Initialize WebSocket hub and wire it to committed store writes
	hub := services.NewHub()
	go hub.Run()
	roomStore.Subscribe(hub.BroadcastRoomState)

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(roomService, hub)
	gameHandler := handlers.NewGameHandler(roomService)
	var archiveHandler *handlers.ArchiveHandler
	if archiveService != nil {
		archiveHandler = handlers.NewArchiveHandler(archiveService)
	}

	// Setup Gin router
	router := gin.Default()

	// CORS for split frontend/backend deployments
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	routes.SetupRoutes(router, roomHandler, gameHandler, archiveHandler, hub, roomService)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
