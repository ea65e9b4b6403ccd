package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"timeline/services"
	"timeline/store"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrRoomNotFound, http.StatusNotFound},
		{services.ErrPlayerNotFound, http.StatusNotFound},
		{services.ErrEventNotFound, http.StatusNotFound},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrRoomFull, http.StatusConflict},
		{services.ErrAlreadySubmitted, http.StatusConflict},
		{services.ErrInvalidState, http.StatusBadRequest},
		{services.ErrInvalidMode, http.StatusBadRequest},
		{services.ErrInvalidName, http.StatusBadRequest},
		{services.ErrInvalidAvatar, http.StatusBadRequest},
		{services.ErrInvalidAnswer, http.StatusBadRequest},
		{services.ErrCodeGenerationExhausted, http.StatusServiceUnavailable},
		{store.ErrConflict, http.StatusServiceUnavailable},
		{errors.New("disk on fire"), http.StatusInternalServerError},
		// Wrapped domain errors keep their mapping.
		{fmt.Errorf("revealing: %w", services.ErrInvalidState), http.StatusBadRequest},
	}

	for _, tt := range tests {
		if got := statusForError(tt.err); got != tt.want {
			t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
