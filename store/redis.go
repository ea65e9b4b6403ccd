package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"timeline/models"
)

const (
	roomKeyPrefix = "room:"
	codeKeyPrefix = "roomcode:"

	// updateRetries bounds the optimistic transaction retry loop.
	updateRetries = 5
)

// RedisStore persists each room as a JSON document. Update uses WATCH-based
// optimistic transactions: the write commits only if the room key was not
// touched between read and EXEC, which gives the compare-and-swap semantics
// the room state machine depends on.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration

	mu        sync.RWMutex
	listeners []Listener
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func roomKey(roomID string) string { return roomKeyPrefix + roomID }

func codeKey(code string) string { return codeKeyPrefix + strings.ToUpper(code) }

func (s *RedisStore) Create(ctx context.Context, room *models.Room) error {
	// Claim the code index first; SETNX makes code uniqueness atomic.
	ok, err := s.client.SetNX(ctx, codeKey(room.Code), room.ID, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("claiming room code: %w", err)
	}
	if !ok {
		return ErrCodeTaken
	}

	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("marshaling room: %w", err)
	}
	if err := s.client.Set(ctx, roomKey(room.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing room: %w", err)
	}

	s.notify(room.Clone())
	return nil
}

func (s *RedisStore) Get(ctx context.Context, roomID string) (*models.Room, error) {
	data, err := s.client.Get(ctx, roomKey(roomID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("unmarshaling room: %w", err)
	}
	return &room, nil
}

func (s *RedisStore) GetByCode(ctx context.Context, code string) (*models.Room, error) {
	roomID, err := s.client.Get(ctx, codeKey(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("resolving room code: %w", err)
	}
	return s.Get(ctx, roomID)
}

func (s *RedisStore) Update(ctx context.Context, roomID string, fn func(*models.Room) error) (*models.Room, error) {
	key := roomKey(roomID)
	var updated *models.Room

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return err
		}

		var room models.Room
		if err := json.Unmarshal(data, &room); err != nil {
			return fmt.Errorf("unmarshaling room: %w", err)
		}

		if err := fn(&room); err != nil {
			return err
		}

		out, err := json.Marshal(&room)
		if err != nil {
			return fmt.Errorf("marshaling room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &room
		return nil
	}

	for i := 0; i < updateRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			s.notify(updated.Clone())
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Lost the race; re-read and try again.
			continue
		}
		return nil, err
	}
	return nil, ErrConflict
}

func (s *RedisStore) Delete(ctx context.Context, roomID string) error {
	room, err := s.Get(ctx, roomID)
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, roomKey(roomID), codeKey(room.Code)).Err(); err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	// Key TTLs already bound retention; the sweep handles rooms whose TTL was
	// refreshed past the retention window by late activity.
	cutoff := time.Now().Add(-maxAge)
	deleted := 0

	iter := s.client.Scan(ctx, 0, roomKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		var room models.Room
		if err := json.Unmarshal(data, &room); err != nil {
			continue
		}
		if room.CreatedAt.Before(cutoff) {
			if err := s.client.Del(ctx, key, codeKey(room.Code)).Err(); err == nil {
				deleted++
			}
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scanning rooms: %w", err)
	}
	return deleted, nil
}

func (s *RedisStore) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *RedisStore) notify(room *models.Room) {
	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()
	for _, l := range listeners {
		l(room)
	}
}
