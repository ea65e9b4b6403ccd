package models

type RoundType string

const (
	RoundNormal   RoundType = "NORMAL"
	RoundRisk     RoundType = "RISK"
	RoundSupport  RoundType = "SUPPORT"
	RoundCategory RoundType = "CATEGORY"
)

// RoundEffect is the movement applied on reveal, by answer correctness.
type RoundEffect struct {
	CorrectMove   int
	IncorrectMove int
	Description   string
}

// RoundEffects is the fixed per-round-type movement table.
var RoundEffects = map[RoundType]RoundEffect{
	RoundNormal:   {CorrectMove: 1, IncorrectMove: 0, Description: "Answer correctly to move +1"},
	RoundRisk:     {CorrectMove: 2, IncorrectMove: -1, Description: "High stakes! +2 if correct, -1 if wrong"},
	RoundSupport:  {CorrectMove: 1, IncorrectMove: 0, Description: "Hint provided! +1 if correct"},
	RoundCategory: {CorrectMove: 1, IncorrectMove: 0, Description: "Category locked! +1 if correct"},
}

// RoundPlayerResult is one player's outcome for a resolved round.
type RoundPlayerResult struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Answer      *int   `json:"answer"`
	Correct     bool   `json:"correct"`
	Movement    int    `json:"movement"`
	NewPosition int    `json:"newPosition"`
}

// RoundResults is the outcome of the last resolved round. Overwritten each
// reveal; only the latest is retained.
type RoundResults struct {
	Round             int                 `json:"round"`
	CorrectRange      int                 `json:"correctRange"`
	CorrectAnswerText string              `json:"correctAnswerText,omitempty"`
	AnswerLabels      []string            `json:"answerLabels,omitempty"`
	Players           []RoundPlayerResult `json:"players"`
}
