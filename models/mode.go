package models

import "fmt"

type GameMode string

const (
	ModeGlobal     GameMode = "GLOBAL"
	ModeThailand   GameMode = "THAILAND"
	ModeScience    GameMode = "SCIENCE"
	ModeMovies     GameMode = "MOVIES"
	ModeMovieGuess GameMode = "MOVIE_GUESS"
)

type Category string

const (
	CategoryHistory     Category = "HISTORY"
	CategorySciTech     Category = "SCI_TECH"
	CategoryCulture     Category = "CULTURE"
	CategoryTravel      Category = "TRAVEL"
	CategoryLandmarks   Category = "LANDMARKS"
	CategoryDiscoveries Category = "DISCOVERIES"
	CategoryMovies      Category = "MOVIES"
	// CategoryRandom is the wildcard: it matches every category.
	CategoryRandom Category = "RANDOM"
)

// Board geometry shared by the era-guessing modes.
const (
	BoardSize      = 16
	FinishPosition = 15
)

// MOVIE_GUESS is a short race: first to tile 5 wins.
const (
	MovieGuessTarget    = 5
	MovieGuessBoardSize = MovieGuessTarget + 1
)

// Movie answer bins: 5-year ranges starting at 1930, 20 bins total.
const (
	MovieRangeStartYear = 1930
	MovieRangeStep      = 5
	MovieRangeCount     = 20
)

// TimelineRangeCount is the number of era buckets in timeline modes.
const TimelineRangeCount = 10

// ModeConfig describes the board geometry and answer-range semantics of a mode.
type ModeConfig struct {
	BoardSize      int
	FinishPosition int
	BucketCount    int
	Categories     []Category
	// Guess modes hide the real title behind a generic one and reveal choices.
	Guess bool
}

var modeConfigs = map[GameMode]ModeConfig{
	ModeGlobal: {
		BoardSize:      BoardSize,
		FinishPosition: FinishPosition,
		BucketCount:    TimelineRangeCount,
		Categories:     []Category{CategoryHistory, CategorySciTech, CategoryCulture, CategoryTravel},
	},
	ModeThailand: {
		BoardSize:      BoardSize,
		FinishPosition: FinishPosition,
		BucketCount:    TimelineRangeCount,
		Categories:     []Category{CategoryHistory, CategoryCulture, CategoryLandmarks},
	},
	ModeScience: {
		BoardSize:      BoardSize,
		FinishPosition: FinishPosition,
		BucketCount:    TimelineRangeCount,
		Categories:     []Category{CategorySciTech, CategoryDiscoveries},
	},
	ModeMovies: {
		BoardSize:      BoardSize,
		FinishPosition: FinishPosition,
		BucketCount:    MovieRangeCount,
		Categories:     []Category{CategoryMovies},
	},
	ModeMovieGuess: {
		BoardSize:      MovieGuessBoardSize,
		FinishPosition: MovieGuessTarget,
		BucketCount:    4, // one bucket per choice
		Categories:     []Category{CategoryMovies},
		Guess:          true,
	},
}

// IsValid reports whether m is a known game mode.
func (m GameMode) IsValid() bool {
	_, ok := modeConfigs[m]
	return ok
}

// Config returns the mode's configuration. Unknown modes fall back to GLOBAL.
func (m GameMode) Config() ModeConfig {
	if cfg, ok := modeConfigs[m]; ok {
		return cfg
	}
	return modeConfigs[ModeGlobal]
}

// RangeInfo labels an answer bucket for display.
type RangeInfo struct {
	Name        string `json:"name"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// TimelineRanges maps era bucket index to its label, 0..9.
var TimelineRanges = [TimelineRangeCount]RangeInfo{
	{Name: "Prehistoric Age", Period: "Before 500 BCE", Description: "Stone age, before civilizations"},
	{Name: "Ancient Civilizations", Period: "500 BCE - 500 CE", Description: "Rise of empires"},
	{Name: "Early Middle Ages", Period: "500 - 1000", Description: "Dark ages, early medieval"},
	{Name: "Late Middle Ages", Period: "1000 - 1500", Description: "Crusades, feudalism"},
	{Name: "Renaissance & Exploration", Period: "1500 - 1700", Description: "Age of discovery"},
	{Name: "Revolution & Industry", Period: "1700 - 1800", Description: "Enlightenment era"},
	{Name: "Industrial & Nationalism", Period: "1800 - 1900", Description: "Industrial revolution"},
	{Name: "World Wars Era", Period: "1900 - 1950", Description: "Global conflicts"},
	{Name: "Cold War & Space Age", Period: "1950 - 2000", Description: "Space race, tech boom"},
	{Name: "Digital Age", Period: "2000 - Present", Description: "Internet era"},
}

// MovieRange returns the label of a 5-year movie bin.
func MovieRange(index int) RangeInfo {
	start := MovieRangeStartYear + MovieRangeStep*index
	end := start + MovieRangeStep - 1
	name := fmt.Sprintf("%d-%d", start, end)
	return RangeInfo{
		Name:        name,
		Period:      name,
		Description: fmt.Sprintf("Movie releases from %d to %d", start, end),
	}
}

// MovieRangeIndex maps a release year to its bin, clamped to the valid range.
func MovieRangeIndex(year int) int {
	index := (year - MovieRangeStartYear) / MovieRangeStep
	if index < 0 {
		return 0
	}
	if index >= MovieRangeCount {
		return MovieRangeCount - 1
	}
	return index
}

// RangeLabel returns the display label for an answer bucket in a given mode.
// Guess modes label buckets by choice letter and have no era names.
func RangeLabel(mode GameMode, bucket int) string {
	cfg := mode.Config()
	if bucket < 0 || bucket >= cfg.BucketCount {
		return ""
	}
	switch mode {
	case ModeMovies:
		return MovieRange(bucket).Name
	case ModeMovieGuess:
		return fmt.Sprintf("Choice %d", bucket+1)
	default:
		return TimelineRanges[bucket].Name
	}
}
