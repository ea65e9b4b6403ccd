package services

import (
	"fmt"

	"timeline/catalog"
	"timeline/models"
)

// resolveRound scores every submitted answer, applies the round type's
// movement table, detects a winner, and either prepares the next round or
// finalizes the game. Mutates the room snapshot in place; the caller commits
// it as a single transactional write.
func resolveRound(room *models.Room) (*models.RoundResults, error) {
	if room.CurrentEventID == "" {
		return nil, fmt.Errorf("%w: no event in progress", ErrEventNotFound)
	}
	event, ok := catalog.EventByID(room.CurrentEventID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, room.CurrentEventID)
	}

	cfg := room.Mode.Config()
	effects := models.RoundEffects[room.RoundType]

	results := &models.RoundResults{
		Round:             room.CurrentRound,
		CorrectRange:      event.CorrectRange,
		CorrectAnswerText: correctAnswerText(room.Mode, event),
		AnswerLabels:      answerLabels(room.Mode, event),
	}

	// Sorted order keeps resolution deterministic regardless of map layout.
	for _, id := range room.SortedPlayerIDs() {
		p := room.Players[id]

		// A nil answer never equals a valid bucket: non-submitters score
		// incorrect.
		correct := p.CurrentAnswer != nil && *p.CurrentAnswer == event.CorrectRange
		movement := effects.IncorrectMove
		if correct {
			movement = effects.CorrectMove
		}

		newPosition := p.Position + movement
		if newPosition < 0 {
			newPosition = 0
		}
		if newPosition > cfg.FinishPosition {
			newPosition = cfg.FinishPosition
		}

		p.Position = newPosition
		c := correct
		p.LastAnswerCorrect = &c

		results.Players = append(results.Players, models.RoundPlayerResult{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Answer:      p.CurrentAnswer,
			Correct:     correct,
			Movement:    movement,
			NewPosition: newPosition,
		})
	}

	// Tie-break when several players reach the finish in the same round:
	// highest resulting position wins, then lowest player id.
	var winner *models.Player
	for _, id := range room.SortedPlayerIDs() {
		p := room.Players[id]
		if p.Position < cfg.FinishPosition {
			continue
		}
		if winner == nil || p.Position > winner.Position {
			winner = p
		}
	}

	room.RoundResults = results

	if winner != nil {
		id := winner.ID
		room.WinnerID = &id
		room.Status = models.StatusFinished
		return results, nil
	}

	room.CurrentRound++
	startNewRound(room)
	return results, nil
}

func correctAnswerText(mode models.GameMode, event catalog.Event) string {
	if mode.Config().Guess {
		if event.CorrectRange >= 0 && event.CorrectRange < len(event.Choices) {
			return event.Choices[event.CorrectRange]
		}
		return ""
	}
	return models.RangeLabel(mode, event.CorrectRange)
}

func answerLabels(mode models.GameMode, event catalog.Event) []string {
	if mode.Config().Guess {
		return append([]string(nil), event.Choices...)
	}
	cfg := mode.Config()
	labels := make([]string, cfg.BucketCount)
	for i := range labels {
		labels[i] = models.RangeLabel(mode, i)
	}
	return labels
}
