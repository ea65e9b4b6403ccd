// Package catalog holds the static trivia item sets and the selection rules
// used when a round picks its question.
package catalog

import (
	"fmt"
	"math/rand"

	"timeline/models"
)

// EventsForMode returns the full item set of a mode.
func EventsForMode(mode models.GameMode) []Event {
	if events, ok := modeEvents[mode]; ok {
		return events
	}
	return globalEvents
}

// EventsByCategory filters a mode's item set by category. RANDOM is the
// wildcard and returns the full set.
func EventsByCategory(mode models.GameMode, category models.Category) []Event {
	events := EventsForMode(mode)
	if category == models.CategoryRandom {
		return events
	}
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// SelectEvent picks a uniformly random item from the mode's set, optionally
// filtered by category and excluding previously used ids. If filtering and
// exclusion leave no candidates it falls back to the mode's full set rather
// than failing, so a small catalog never stalls a round.
func SelectEvent(mode models.GameMode, category *models.Category, excludeIDs []string) Event {
	events := EventsForMode(mode)
	if category != nil && *category != models.CategoryRandom {
		events = EventsByCategory(mode, *category)
	}

	if len(excludeIDs) > 0 {
		excluded := make(map[string]bool, len(excludeIDs))
		for _, id := range excludeIDs {
			excluded[id] = true
		}
		remaining := make([]Event, 0, len(events))
		for _, e := range events {
			if !excluded[e.ID] {
				remaining = append(remaining, e)
			}
		}
		events = remaining
	}

	if len(events) == 0 {
		events = EventsForMode(mode)
	}

	return events[rand.Intn(len(events))]
}

// EventByID resolves a catalog item by id across all modes. The second return
// is false when the id is unknown.
func EventByID(id string) (Event, bool) {
	e, ok := eventsByID[id]
	return e, ok
}

// ProjectForClient strips the correct range from an event. Guess modes also
// replace the title, which would otherwise give the answer away.
func ProjectForClient(mode models.GameMode, e Event) *models.ClientEvent {
	view := &models.ClientEvent{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Choices:     append([]string(nil), e.Choices...),
	}
	if mode.Config().Guess {
		view.Title = "Guess the movie"
	}
	return view
}

// GenerateHint narrows the answer to a +/-1 neighborhood of the correct
// bucket, clamped to the mode's valid bucket range.
func GenerateHint(mode models.GameMode, correctRange int) string {
	maxBucket := mode.Config().BucketCount - 1
	lo := correctRange - 1
	if lo < 0 {
		lo = 0
	}
	hi := correctRange + 1
	if hi > maxBucket {
		hi = maxBucket
	}
	return fmt.Sprintf("The answer is somewhere between %d and %d", lo, hi)
}
