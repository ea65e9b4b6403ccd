package services

import "errors"

// Domain failures cross the service boundary as sentinel errors; handlers map
// them to HTTP statuses. Anything else is a transient/store fault.
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not in room")
	ErrEventNotFound  = errors.New("event not found")

	ErrInvalidState     = errors.New("operation not valid for current room state")
	ErrForbidden        = errors.New("only the host can do that")
	ErrRoomFull         = errors.New("room is full")
	ErrAlreadySubmitted = errors.New("answer already submitted")

	ErrInvalidMode   = errors.New("unknown game mode")
	ErrInvalidName   = errors.New("display name must be 2-20 characters")
	ErrInvalidAvatar = errors.New("unknown avatar")
	ErrInvalidAnswer = errors.New("answer out of range")

	ErrCodeGenerationExhausted = errors.New("could not generate a unique room code")
)
