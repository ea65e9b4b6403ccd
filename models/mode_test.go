package models

import "testing"

func TestModeConfigs(t *testing.T) {
	tests := []struct {
		mode        GameMode
		boardSize   int
		finish      int
		bucketCount int
	}{
		{ModeGlobal, 16, 15, 10},
		{ModeThailand, 16, 15, 10},
		{ModeScience, 16, 15, 10},
		{ModeMovies, 16, 15, 20},
		{ModeMovieGuess, 6, 5, 4},
	}

	for _, tt := range tests {
		cfg := tt.mode.Config()
		if cfg.BoardSize != tt.boardSize {
			t.Errorf("%s board size = %d, want %d", tt.mode, cfg.BoardSize, tt.boardSize)
		}
		if cfg.FinishPosition != tt.finish {
			t.Errorf("%s finish = %d, want %d", tt.mode, cfg.FinishPosition, tt.finish)
		}
		if cfg.BucketCount != tt.bucketCount {
			t.Errorf("%s bucket count = %d, want %d", tt.mode, cfg.BucketCount, tt.bucketCount)
		}
		if len(cfg.Categories) == 0 {
			t.Errorf("%s has no categories", tt.mode)
		}
	}
}

func TestGameMode_IsValid(t *testing.T) {
	if !ModeGlobal.IsValid() {
		t.Error("GLOBAL should be valid")
	}
	if GameMode("SPEEDRUN").IsValid() {
		t.Error("unknown mode should not be valid")
	}
}

func TestMovieRangeIndex(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{1930, 0},
		{1934, 0},
		{1935, 1},
		{1977, 9},
		{2019, 17},
		{1900, 0},  // clamped low
		{2100, 19}, // clamped high
	}

	for _, tt := range tests {
		if got := MovieRangeIndex(tt.year); got != tt.want {
			t.Errorf("MovieRangeIndex(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestMovieRange_Label(t *testing.T) {
	if got := MovieRange(0).Name; got != "1930-1934" {
		t.Errorf("MovieRange(0).Name = %q, want %q", got, "1930-1934")
	}
	if got := MovieRange(19).Name; got != "2025-2029" {
		t.Errorf("MovieRange(19).Name = %q, want %q", got, "2025-2029")
	}
}

func TestRangeLabel(t *testing.T) {
	if got := RangeLabel(ModeGlobal, 0); got != "Prehistoric Age" {
		t.Errorf("RangeLabel(GLOBAL, 0) = %q", got)
	}
	if got := RangeLabel(ModeGlobal, 9); got != "Digital Age" {
		t.Errorf("RangeLabel(GLOBAL, 9) = %q", got)
	}
	if got := RangeLabel(ModeMovies, 0); got != "1930-1934" {
		t.Errorf("RangeLabel(MOVIES, 0) = %q", got)
	}
	if got := RangeLabel(ModeGlobal, 10); got != "" {
		t.Errorf("out-of-range bucket should have empty label, got %q", got)
	}
	if got := RangeLabel(ModeGlobal, -1); got != "" {
		t.Errorf("negative bucket should have empty label, got %q", got)
	}
}

func TestRoundEffects_Table(t *testing.T) {
	tests := []struct {
		roundType RoundType
		correct   int
		incorrect int
	}{
		{RoundNormal, 1, 0},
		{RoundRisk, 2, -1},
		{RoundSupport, 1, 0},
		{RoundCategory, 1, 0},
	}

	for _, tt := range tests {
		e, ok := RoundEffects[tt.roundType]
		if !ok {
			t.Fatalf("no effect entry for %s", tt.roundType)
		}
		if e.CorrectMove != tt.correct || e.IncorrectMove != tt.incorrect {
			t.Errorf("%s effect = {%d, %d}, want {%d, %d}",
				tt.roundType, e.CorrectMove, e.IncorrectMove, tt.correct, tt.incorrect)
		}
	}
}

func TestRoom_Clone_Isolated(t *testing.T) {
	answer := 3
	room := &Room{
		ID:      "r1",
		Code:    "ABCDEF",
		Status:  StatusPlaying,
		Mode:    ModeGlobal,
		HostID:  "p1",
		Players: map[string]*Player{"p1": {ID: "p1", CurrentAnswer: &answer}},
		BoardTiles: []BoardTile{
			{Position: 0, Type: NormalTile},
		},
		EventHistory: []string{"hist-001"},
	}

	clone := room.Clone()
	*clone.Players["p1"].CurrentAnswer = 7
	clone.Players["p2"] = &Player{ID: "p2"}
	clone.EventHistory = append(clone.EventHistory, "hist-002")

	if *room.Players["p1"].CurrentAnswer != 3 {
		t.Error("clone mutation leaked into original player answer")
	}
	if len(room.Players) != 1 {
		t.Error("clone mutation leaked into original player map")
	}
	if len(room.EventHistory) != 1 {
		t.Error("clone mutation leaked into original event history")
	}
}

func TestRoom_SortedPlayerIDs(t *testing.T) {
	room := &Room{Players: map[string]*Player{
		"charlie": {}, "alpha": {}, "bravo": {},
	}}

	ids := room.SortedPlayerIDs()
	want := []string{"alpha", "bravo", "charlie"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("SortedPlayerIDs() = %v, want %v", ids, want)
		}
	}
}
