package services

import (
	"errors"
	"testing"

	"timeline/models"
)

// roomWithEvent pins the room to a known catalog event so scoring is
// deterministic. hist-001 sits in range bucket 0.
func roomWithEvent(roundType models.RoundType, positions map[string]int) *models.Room {
	room := testRoom(models.ModeGlobal, positions)
	room.RoundType = roundType
	room.CurrentEventID = "hist-001"
	return room
}

func submit(room *models.Room, playerID string, answer int) {
	p := room.Players[playerID]
	a := answer
	p.CurrentAnswer = &a
	p.HasSubmitted = true
}

func TestResolveRound_MovementTable(t *testing.T) {
	tests := []struct {
		name         string
		roundType    models.RoundType
		startPos     int
		answer       *int
		wantMovement int
		wantPosition int
		wantCorrect  bool
	}{
		{"normal correct", models.RoundNormal, 5, intPtr(0), 1, 6, true},
		{"normal incorrect", models.RoundNormal, 5, intPtr(3), 0, 5, false},
		{"risk correct", models.RoundRisk, 5, intPtr(0), 2, 7, true},
		{"risk incorrect", models.RoundRisk, 5, intPtr(3), -1, 4, false},
		{"risk incorrect clamped at start", models.RoundRisk, 0, intPtr(3), -1, 0, false},
		{"support correct", models.RoundSupport, 5, intPtr(0), 1, 6, true},
		{"category incorrect", models.RoundCategory, 5, intPtr(3), 0, 5, false},
		{"no submission scores incorrect", models.RoundNormal, 5, nil, 0, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := roomWithEvent(tt.roundType, map[string]int{"p1": tt.startPos, "p2": 0})
			if tt.answer != nil {
				submit(room, "p1", *tt.answer)
			}

			results, err := resolveRound(room)
			if err != nil {
				t.Fatalf("resolveRound: %v", err)
			}

			var got *models.RoundPlayerResult
			for i := range results.Players {
				if results.Players[i].ID == "p1" {
					got = &results.Players[i]
				}
			}
			if got == nil {
				t.Fatal("p1 missing from results")
			}
			if got.Movement != tt.wantMovement {
				t.Errorf("movement = %d, want %d", got.Movement, tt.wantMovement)
			}
			if got.NewPosition != tt.wantPosition {
				t.Errorf("position = %d, want %d", got.NewPosition, tt.wantPosition)
			}
			if got.Correct != tt.wantCorrect {
				t.Errorf("correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
			if room.Players["p1"].LastAnswerCorrect == nil || *room.Players["p1"].LastAnswerCorrect != tt.wantCorrect {
				t.Error("LastAnswerCorrect not recorded on player")
			}
		})
	}
}

func TestResolveRound_WinnerAtFinish(t *testing.T) {
	room := roomWithEvent(models.RoundNormal, map[string]int{"p1": 14, "p2": 3})
	submit(room, "p1", 0)

	results, err := resolveRound(room)
	if err != nil {
		t.Fatalf("resolveRound: %v", err)
	}

	if room.WinnerID == nil || *room.WinnerID != "p1" {
		t.Fatalf("winner = %v, want p1", room.WinnerID)
	}
	if room.Status != models.StatusFinished {
		t.Errorf("status = %s, want finished", room.Status)
	}
	if room.CurrentRound != 1 {
		t.Errorf("round advanced after finish: %d", room.CurrentRound)
	}
	if results.Round != 1 {
		t.Errorf("results round = %d, want 1", results.Round)
	}
}

func TestResolveRound_RiskOvershootClampsToFinish(t *testing.T) {
	room := roomWithEvent(models.RoundRisk, map[string]int{"p1": 14})
	submit(room, "p1", 0)

	if _, err := resolveRound(room); err != nil {
		t.Fatalf("resolveRound: %v", err)
	}
	if room.Players["p1"].Position != 15 {
		t.Errorf("position = %d, want clamped to 15", room.Players["p1"].Position)
	}
	if room.WinnerID == nil || *room.WinnerID != "p1" {
		t.Error("clamped finish should still win")
	}
}

func TestResolveRound_TieBreakLowestID(t *testing.T) {
	room := roomWithEvent(models.RoundNormal, map[string]int{"zed": 14, "alpha": 14})
	submit(room, "zed", 0)
	submit(room, "alpha", 0)

	if _, err := resolveRound(room); err != nil {
		t.Fatalf("resolveRound: %v", err)
	}
	if room.WinnerID == nil || *room.WinnerID != "alpha" {
		t.Errorf("winner = %v, want alpha (lowest id on equal position)", room.WinnerID)
	}
}

func TestResolveRound_PreparesNextRound(t *testing.T) {
	room := roomWithEvent(models.RoundNormal, map[string]int{"p1": 2, "p2": 4})
	submit(room, "p1", 0)
	room.EventHistory = []string{"hist-001"}

	if _, err := resolveRound(room); err != nil {
		t.Fatalf("resolveRound: %v", err)
	}

	if room.CurrentRound != 2 {
		t.Errorf("round = %d, want 2", room.CurrentRound)
	}
	if room.WinnerID != nil {
		t.Errorf("unexpected winner %s", *room.WinnerID)
	}
	if room.CurrentEventID == "hist-001" {
		t.Error("next round reused the excluded event")
	}
	for id, p := range room.Players {
		if p.HasSubmitted || p.CurrentAnswer != nil {
			t.Errorf("player %s not reset for next round", id)
		}
	}
	if room.RoundResults == nil || room.RoundResults.Round != 1 {
		t.Error("previous round's results not kept on the room")
	}
}

func TestResolveRound_MissingEvent(t *testing.T) {
	room := testRoom(models.ModeGlobal, map[string]int{"p1": 0})
	room.CurrentEventID = ""
	if _, err := resolveRound(room); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}

	room.CurrentEventID = "no-such-event"
	if _, err := resolveRound(room); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestResolveRound_AnswerLabels(t *testing.T) {
	room := roomWithEvent(models.RoundNormal, map[string]int{"p1": 0})

	results, err := resolveRound(room)
	if err != nil {
		t.Fatalf("resolveRound: %v", err)
	}
	if len(results.AnswerLabels) != models.TimelineRangeCount {
		t.Errorf("label count = %d, want %d", len(results.AnswerLabels), models.TimelineRangeCount)
	}
	if results.CorrectAnswerText != models.RangeLabel(models.ModeGlobal, 0) {
		t.Errorf("correct answer text = %q", results.CorrectAnswerText)
	}
}

func intPtr(v int) *int { return &v }
