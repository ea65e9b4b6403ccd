// Package store defines the room document store contract: point lookup by id,
// indexed lookup by code, and transactional read-modify-write with per-room
// serialization. The memory implementation serves tests and single-process
// deployments; the Redis implementation is the production store.
package store

import (
	"context"
	"errors"
	"time"

	"timeline/models"
)

var (
	// ErrNotFound is returned when no room exists for an id or code.
	ErrNotFound = errors.New("room not found")
	// ErrCodeTaken is returned by Create when the room code is already in use.
	ErrCodeTaken = errors.New("room code already in use")
	// ErrConflict is returned when an Update loses the optimistic transaction
	// too many times in a row.
	ErrConflict = errors.New("concurrent update conflict")
)

// Listener receives a snapshot of a room after every committed mutation.
// The snapshot is a clone; listeners may read it freely.
type Listener func(room *models.Room)

// RoomStore is the persistence contract for the room aggregate. All mutating
// operations serialize per room; Update applies fn to a snapshot of the
// current document and commits the result only if no other write intervened.
// A non-nil error from fn aborts the transaction without writing.
type RoomStore interface {
	Create(ctx context.Context, room *models.Room) error
	Get(ctx context.Context, roomID string) (*models.Room, error)
	GetByCode(ctx context.Context, code string) (*models.Room, error)
	Update(ctx context.Context, roomID string, fn func(*models.Room) error) (*models.Room, error)
	Delete(ctx context.Context, roomID string) error

	// DeleteExpired removes rooms older than maxAge and returns how many were
	// deleted. Called by the operator-driven cleanup sweep.
	DeleteExpired(ctx context.Context, maxAge time.Duration) (int, error)

	// Subscribe registers a listener for committed room snapshots.
	Subscribe(l Listener)
}
