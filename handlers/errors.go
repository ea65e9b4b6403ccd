package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timeline/services"
	"timeline/store"
)

// statusForError maps domain errors to HTTP statuses. Anything unrecognized
// is a transient fault and reported as a generic 500 so clients can tell
// "your action was invalid" apart from "try again".
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrRoomFull),
		errors.Is(err, services.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrInvalidMode),
		errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidAvatar),
		errors.Is(err, services.ErrInvalidAnswer):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrCodeGenerationExhausted),
		errors.Is(err, store.ErrConflict):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "something went wrong, please try again"
	}
	c.JSON(status, gin.H{"error": msg})
}
