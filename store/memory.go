package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"timeline/models"
)

// entry pairs a room document with its own mutex so read-modify-write cycles
// serialize per room without blocking unrelated rooms.
type entry struct {
	mu   sync.Mutex
	room *models.Room
}

// MemoryStore keeps rooms in process memory. A per-room mutex emulates the
// transaction isolation the production store provides.
type MemoryStore struct {
	mu        sync.RWMutex
	rooms     map[string]*entry
	byCode    map[string]string // code -> roomID
	listeners []Listener
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:  make(map[string]*entry),
		byCode: make(map[string]string),
	}
}

func (s *MemoryStore) Create(ctx context.Context, room *models.Room) error {
	code := strings.ToUpper(room.Code)

	s.mu.Lock()
	if _, exists := s.byCode[code]; exists {
		s.mu.Unlock()
		return ErrCodeTaken
	}
	s.rooms[room.ID] = &entry{room: room.Clone()}
	s.byCode[code] = room.ID
	s.mu.Unlock()

	s.notify(room.Clone())
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, roomID string) (*models.Room, error) {
	s.mu.RLock()
	e, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.room.Clone(), nil
}

func (s *MemoryStore) GetByCode(ctx context.Context, code string) (*models.Room, error) {
	s.mu.RLock()
	roomID, ok := s.byCode[strings.ToUpper(code)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s.Get(ctx, roomID)
}

func (s *MemoryStore) Update(ctx context.Context, roomID string, fn func(*models.Room) error) (*models.Room, error) {
	s.mu.RLock()
	e, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	snapshot := e.room.Clone()
	if err := fn(snapshot); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.room = snapshot
	result := snapshot.Clone()
	e.mu.Unlock()

	s.notify(result.Clone())
	return result, nil
}

func (s *MemoryStore) Delete(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.rooms[roomID]
	if !ok {
		return ErrNotFound
	}
	delete(s.byCode, strings.ToUpper(e.room.Code))
	delete(s.rooms, roomID)
	return nil
}

func (s *MemoryStore) DeleteExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, e := range s.rooms {
		if e.room.CreatedAt.Before(cutoff) {
			delete(s.byCode, strings.ToUpper(e.room.Code))
			delete(s.rooms, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryStore) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *MemoryStore) notify(room *models.Room) {
	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()
	for _, l := range listeners {
		l(room)
	}
}
