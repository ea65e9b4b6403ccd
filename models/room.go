package models

import (
	"sort"
	"time"
)

type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

const MaxPlayers = 8

// ClientEvent is the answer-safe projection of a catalog event: the correct
// range is stripped before it is stored on the room.
type ClientEvent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Choices     []string `json:"choices,omitempty"`
}

// Room is the central aggregate: one game session, addressed by an opaque id
// and a shareable 6-character code. Persisted as a single document; all
// mutations go through the store's transactional read-modify-write.
type Room struct {
	ID     string     `json:"id"`
	Code   string     `json:"code"`
	Status RoomStatus `json:"status"`
	Mode   GameMode   `json:"mode"`
	HostID string     `json:"hostId"`

	Players map[string]*Player `json:"players"`

	CurrentRound   int          `json:"currentRound"`
	RoundType      RoundType    `json:"roundType"`
	CurrentEventID string       `json:"currentEventId,omitempty"`
	CurrentEvent   *ClientEvent `json:"currentEvent,omitempty"`
	Hint           *string      `json:"hint,omitempty"`
	ForcedCategory *Category    `json:"forcedCategory,omitempty"`

	BoardTiles   []BoardTile   `json:"boardTiles"`
	WinnerID     *string       `json:"winnerId"`
	RoundResults *RoundResults `json:"roundResults,omitempty"`
	EventHistory []string      `json:"eventHistory,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// SortedPlayerIDs returns the player ids in ascending order. Round resolution
// always iterates in this order so outcomes are deterministic.
func (r *Room) SortedPlayerIDs() []string {
	ids := make([]string, 0, len(r.Players))
	for id := range r.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AllSubmitted reports whether every player has locked in an answer.
func (r *Room) AllSubmitted() bool {
	for _, p := range r.Players {
		if !p.HasSubmitted {
			return false
		}
	}
	return true
}

// SubmittedCount returns how many players have locked in an answer.
func (r *Room) SubmittedCount() int {
	n := 0
	for _, p := range r.Players {
		if p.HasSubmitted {
			n++
		}
	}
	return n
}

// Clone returns a deep copy. Stores hand out clones so callers can mutate a
// snapshot without racing other readers.
func (r *Room) Clone() *Room {
	c := *r

	c.Players = make(map[string]*Player, len(r.Players))
	for id, p := range r.Players {
		pc := *p
		if p.CurrentAnswer != nil {
			v := *p.CurrentAnswer
			pc.CurrentAnswer = &v
		}
		if p.LastAnswerCorrect != nil {
			v := *p.LastAnswerCorrect
			pc.LastAnswerCorrect = &v
		}
		c.Players[id] = &pc
	}

	c.BoardTiles = make([]BoardTile, len(r.BoardTiles))
	copy(c.BoardTiles, r.BoardTiles)
	for i := range c.BoardTiles {
		if r.BoardTiles[i].Category != nil {
			v := *r.BoardTiles[i].Category
			c.BoardTiles[i].Category = &v
		}
	}

	if r.CurrentEvent != nil {
		ev := *r.CurrentEvent
		ev.Choices = append([]string(nil), r.CurrentEvent.Choices...)
		c.CurrentEvent = &ev
	}
	if r.Hint != nil {
		v := *r.Hint
		c.Hint = &v
	}
	if r.ForcedCategory != nil {
		v := *r.ForcedCategory
		c.ForcedCategory = &v
	}
	if r.WinnerID != nil {
		v := *r.WinnerID
		c.WinnerID = &v
	}
	if r.RoundResults != nil {
		rr := *r.RoundResults
		rr.AnswerLabels = append([]string(nil), r.RoundResults.AnswerLabels...)
		rr.Players = make([]RoundPlayerResult, len(r.RoundResults.Players))
		copy(rr.Players, r.RoundResults.Players)
		for i := range rr.Players {
			if r.RoundResults.Players[i].Answer != nil {
				v := *r.RoundResults.Players[i].Answer
				rr.Players[i].Answer = &v
			}
		}
		c.RoundResults = &rr
	}
	c.EventHistory = append([]string(nil), r.EventHistory...)

	return &c
}
