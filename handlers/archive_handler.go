package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"timeline/services"
)

type ArchiveHandler struct {
	archiveService *services.ArchiveService
}

func NewArchiveHandler(archiveService *services.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{archiveService: archiveService}
}

func (h *ArchiveHandler) RecentGames(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	records, err := h.archiveService.RecentGames(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load game history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "games": records})
}
