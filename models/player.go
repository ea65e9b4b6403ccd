package models

// Player is a client-generated identity inside a room. Not authenticated.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
	Position    int    `json:"position"`
	IsHost      bool   `json:"isHost"`

	// Per-round submission state, reset when a new round starts.
	HasSubmitted      bool  `json:"hasSubmitted"`
	CurrentAnswer     *int  `json:"currentAnswer"`
	LastAnswerCorrect *bool `json:"lastAnswerCorrect"`
}

// ResetForRound clears the submission bookkeeping.
func (p *Player) ResetForRound() {
	p.HasSubmitted = false
	p.CurrentAnswer = nil
	p.LastAnswerCorrect = nil
}

// Avatars is the fixed set of selectable avatar ids.
var Avatars = []string{
	"explorer",
	"scholar",
	"inventor",
	"warrior",
	"artist",
	"scientist",
	"navigator",
	"philosopher",
}

func IsValidAvatar(id string) bool {
	for _, a := range Avatars {
		if a == id {
			return true
		}
	}
	return false
}
