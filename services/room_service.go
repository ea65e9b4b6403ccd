package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"timeline/catalog"
	"timeline/models"
	"timeline/store"
)

// RoomTTL is the retention window for abandoned rooms.
const RoomTTL = 24 * time.Hour

// codeAttempts bounds room code generation retries on collision.
const codeAttempts = 10

// RoomService owns the room lifecycle: create, join, start, submit, reveal,
// leave. Every mutation is a single transactional read-modify-write against
// the store, so two racing requests can never half-apply.
type RoomService struct {
	store   store.RoomStore
	archive *ArchiveService // optional; nil disables the finished-game archive
}

func NewRoomService(st store.RoomStore, archive *ArchiveService) *RoomService {
	return &RoomService{store: st, archive: archive}
}

// SubmissionStatus is the read-only projection of round progress.
type SubmissionStatus struct {
	Total        int  `json:"total"`
	Submitted    int  `json:"submitted"`
	AllSubmitted bool `json:"allSubmitted"`
}

// RevealResult bundles the outcome of a reveal: the resolved round, the
// winner if the game ended, and the room with next-round fields applied.
type RevealResult struct {
	Results      *models.RoundResults `json:"results"`
	WinnerID     *string              `json:"winnerId,omitempty"`
	GameFinished bool                 `json:"gameFinished"`
	Room         *models.Room         `json:"-"`
}

func validatePlayerInput(name, avatar string) error {
	if len(name) < 2 || len(name) > 20 {
		return ErrInvalidName
	}
	if !models.IsValidAvatar(avatar) {
		return ErrInvalidAvatar
	}
	return nil
}

// CreateRoom allocates a room with a unique shareable code and the host as
// its only player.
func (s *RoomService) CreateRoom(ctx context.Context, hostID, hostName, hostAvatar string, mode models.GameMode) (*models.Room, error) {
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}
	if err := validatePlayerInput(hostName, hostAvatar); err != nil {
		return nil, err
	}

	cfg := mode.Config()
	host := &models.Player{
		ID:          hostID,
		DisplayName: hostName,
		Avatar:      hostAvatar,
		IsHost:      true,
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := models.GenerateRoomCode()
		if err != nil {
			return nil, fmt.Errorf("generating room code: %w", err)
		}

		room := &models.Room{
			ID:         uuid.NewString(),
			Code:       code,
			Status:     models.StatusWaiting,
			Mode:       mode,
			HostID:     hostID,
			Players:    map[string]*models.Player{hostID: host},
			RoundType:  models.RoundNormal,
			BoardTiles: models.GenerateBoard(cfg.Categories, cfg.BoardSize),
			CreatedAt:  time.Now(),
		}

		err = s.store.Create(ctx, room)
		if errors.Is(err, store.ErrCodeTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}

		roomsCreated.Inc()
		log.Printf("room %s created (code %s, mode %s)", room.ID, room.Code, mode)
		return room, nil
	}

	return nil, ErrCodeGenerationExhausted
}

// JoinRoom adds a player to a waiting room. Joining with an id that is
// already present succeeds without change, which is how clients rejoin after
// a dropped connection.
func (s *RoomService) JoinRoom(ctx context.Context, code, playerID, playerName, playerAvatar string) (*models.Room, error) {
	if err := validatePlayerInput(playerName, playerAvatar); err != nil {
		return nil, err
	}

	room, err := s.store.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return s.update(ctx, room.ID, func(r *models.Room) error {
		if _, ok := r.Players[playerID]; ok {
			return nil // already in the room
		}
		if r.Status != models.StatusWaiting {
			return ErrInvalidState
		}
		if len(r.Players) >= models.MaxPlayers {
			return ErrRoomFull
		}
		r.Players[playerID] = &models.Player{
			ID:          playerID,
			DisplayName: playerName,
			Avatar:      playerAvatar,
		}
		return nil
	})
}

// StartGame transitions a waiting room to playing and produces round 1.
// Host only.
func (s *RoomService) StartGame(ctx context.Context, roomID, playerID string) (*models.Room, error) {
	return s.update(ctx, roomID, func(r *models.Room) error {
		if r.HostID != playerID {
			return ErrForbidden
		}
		if r.Status != models.StatusWaiting {
			return ErrInvalidState
		}
		if len(r.Players) < 1 {
			return fmt.Errorf("%w: need at least 1 player to start", ErrInvalidState)
		}
		r.Status = models.StatusPlaying
		r.CurrentRound = 1
		startNewRound(r)
		return nil
	})
}

// SubmitAnswer locks in a player's answer for the current round and reports
// whether everyone has now submitted.
func (s *RoomService) SubmitAnswer(ctx context.Context, roomID, playerID string, answer int) (bool, SubmissionStatus, error) {
	var status SubmissionStatus
	room, err := s.update(ctx, roomID, func(r *models.Room) error {
		if r.Status != models.StatusPlaying {
			return ErrInvalidState
		}
		p, ok := r.Players[playerID]
		if !ok {
			return ErrPlayerNotFound
		}
		if p.HasSubmitted {
			return ErrAlreadySubmitted
		}
		if answer < 0 || answer >= r.Mode.Config().BucketCount {
			return ErrInvalidAnswer
		}
		a := answer
		p.CurrentAnswer = &a
		p.HasSubmitted = true
		return nil
	})
	if err != nil {
		return false, status, err
	}

	status = submissionStatus(room)
	return status.AllSubmitted, status, nil
}

// RevealRound resolves the current round: scores answers, moves tokens, and
// either bundles the next round's fields into the same write or finishes the
// game. Guarded against double resolution: the round observed at request time
// must still be current inside the transaction. Clients that know which round
// they are revealing pass it as expectedRound, which also catches a duplicate
// reveal arriving after the first one committed.
func (s *RoomService) RevealRound(ctx context.Context, roomID string, expectedRound *int) (*RevealResult, error) {
	observed, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	observedRound := observed.CurrentRound
	observedEvent := observed.CurrentEventID
	if expectedRound != nil {
		observedRound = *expectedRound
	}

	var results *models.RoundResults
	room, err := s.update(ctx, roomID, func(r *models.Room) error {
		if r.Status != models.StatusPlaying {
			return ErrInvalidState
		}
		// Another reveal already advanced this room.
		if r.CurrentRound != observedRound {
			return fmt.Errorf("%w: round already resolved", ErrInvalidState)
		}
		if expectedRound == nil && r.CurrentEventID != observedEvent {
			return fmt.Errorf("%w: round already resolved", ErrInvalidState)
		}
		res, rerr := resolveRound(r)
		if rerr != nil {
			return rerr
		}
		results = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	roundsResolved.Inc()

	result := &RevealResult{
		Results:      results,
		WinnerID:     room.WinnerID,
		GameFinished: room.Status == models.StatusFinished,
		Room:         room,
	}

	if result.GameFinished {
		gamesFinished.Inc()
		if s.archive != nil {
			if err := s.archive.RecordFinishedGame(room); err != nil {
				log.Printf("archiving finished game %s: %v", room.ID, err)
			}
		}
	}
	return result, nil
}

// LeaveRoom removes a player. An emptied room is deleted; a departing host
// hands the role to the first remaining player by id.
func (s *RoomService) LeaveRoom(ctx context.Context, roomID, playerID string) error {
	room, err := s.update(ctx, roomID, func(r *models.Room) error {
		if _, ok := r.Players[playerID]; !ok {
			return ErrPlayerNotFound
		}
		delete(r.Players, playerID)

		if len(r.Players) > 0 && r.HostID == playerID {
			newHostID := r.SortedPlayerIDs()[0]
			r.Players[newHostID].IsHost = true
			r.HostID = newHostID
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(room.Players) == 0 {
		if err := s.store.Delete(ctx, roomID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		log.Printf("room %s deleted (last player left)", roomID)
	}
	return nil
}

// GetRoom returns the current room document.
func (s *RoomService) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.store.Get(ctx, roomID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// GetRoomByCode resolves a room through its shareable code.
func (s *RoomService) GetRoomByCode(ctx context.Context, code string) (*models.Room, error) {
	room, err := s.store.GetByCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// GetSubmissionStatus is the read-only round progress projection.
func (s *RoomService) GetSubmissionStatus(ctx context.Context, roomID string) (SubmissionStatus, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return SubmissionStatus{}, err
	}
	return submissionStatus(room), nil
}

// CleanupExpiredRooms deletes rooms past the retention window. Invoked by the
// operator-driven sweep, not by a background timer.
func (s *RoomService) CleanupExpiredRooms(ctx context.Context) (int, error) {
	deleted, err := s.store.DeleteExpired(ctx, RoomTTL)
	if err != nil {
		return deleted, err
	}
	if deleted > 0 {
		log.Printf("cleanup sweep removed %d expired rooms", deleted)
	}
	return deleted, nil
}

// GameState is the client-safe projection of a room: the event is already
// answer-stripped, and round progress is included.
type GameState struct {
	ID             string                    `json:"id"`
	Code           string                    `json:"code"`
	Status         models.RoomStatus         `json:"status"`
	Mode           models.GameMode           `json:"mode"`
	HostID         string                    `json:"hostId"`
	Players        map[string]*models.Player `json:"players"`
	CurrentRound   int                       `json:"currentRound"`
	RoundType      models.RoundType          `json:"roundType"`
	Hint           *string                   `json:"hint,omitempty"`
	ForcedCategory *models.Category          `json:"forcedCategory,omitempty"`
	CurrentEvent   *models.ClientEvent       `json:"currentEvent"`
	BoardTiles     []models.BoardTile        `json:"boardTiles"`
	WinnerID       *string                   `json:"winnerId"`
	RoundResults   *models.RoundResults      `json:"roundResults"`
	Submission     SubmissionStatus          `json:"submissionStatus"`
}

// GetGameState returns the full client-facing view of a room.
func (s *RoomService) GetGameState(ctx context.Context, roomID string) (*GameState, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return ProjectGameState(room), nil
}

// ProjectGameState builds the client view from a room snapshot.
func ProjectGameState(room *models.Room) *GameState {
	return &GameState{
		ID:             room.ID,
		Code:           room.Code,
		Status:         room.Status,
		Mode:           room.Mode,
		HostID:         room.HostID,
		Players:        room.Players,
		CurrentRound:   room.CurrentRound,
		RoundType:      room.RoundType,
		Hint:           room.Hint,
		ForcedCategory: room.ForcedCategory,
		CurrentEvent:   room.CurrentEvent,
		BoardTiles:     room.BoardTiles,
		WinnerID:       room.WinnerID,
		RoundResults:   room.RoundResults,
		Submission:     submissionStatus(room),
	}
}

func submissionStatus(room *models.Room) SubmissionStatus {
	total := len(room.Players)
	submitted := room.SubmittedCount()
	return SubmissionStatus{
		Total:        total,
		Submitted:    submitted,
		AllSubmitted: total > 0 && submitted == total,
	}
}

// update wraps the store transaction and maps store-level not-found to the
// domain error.
func (s *RoomService) update(ctx context.Context, roomID string, fn func(*models.Room) error) (*models.Room, error) {
	room, err := s.store.Update(ctx, roomID, fn)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// EventForRoom resolves the room's current catalog item server-side,
// including the correct range. Used by round resolution and tests; never
// serialized to clients.
func EventForRoom(room *models.Room) (catalog.Event, bool) {
	return catalog.EventByID(room.CurrentEventID)
}
