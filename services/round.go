package services

import (
	"math/rand"

	"timeline/catalog"
	"timeline/models"
)

// Weighted pool drawn from when nobody sits on a special tile. NORMAL carries
// triple weight so most rounds stay plain.
var randomRoundPool = []models.RoundType{
	models.RoundNormal,
	models.RoundNormal,
	models.RoundNormal,
	models.RoundRisk,
	models.RoundSupport,
	models.RoundCategory,
}

// determineRoundType inspects the tile under every player and resolves a
// single round type by fixed priority: RISK > CATEGORY > SUPPORT. When a
// category tile wins, its bound category is forced for the round. With no
// special tiles in play the type is drawn from the weighted pool.
func determineRoundType(room *models.Room) (models.RoundType, *models.Category) {
	var hasRisk, hasSupport bool
	var categoryTile *models.Category

	for _, id := range room.SortedPlayerIDs() {
		p := room.Players[id]
		if p.Position < 0 || p.Position >= len(room.BoardTiles) {
			continue
		}
		switch tile := room.BoardTiles[p.Position]; tile.Type {
		case models.RiskTile:
			hasRisk = true
		case models.CategoryTile:
			if categoryTile == nil {
				categoryTile = tile.Category
			}
		case models.SupportTile:
			hasSupport = true
		}
	}

	switch {
	case hasRisk:
		return models.RoundRisk, nil
	case categoryTile != nil:
		return models.RoundCategory, categoryTile
	case hasSupport:
		return models.RoundSupport, nil
	}

	return randomRoundPool[rand.Intn(len(randomRoundPool))], nil
}

// startNewRound computes the next round's fields in place: round type, the
// selected event (answer stripped), the hint for SUPPORT rounds, and cleared
// submission state for every player. Pure transform of the room snapshot.
func startNewRound(room *models.Room) {
	for _, p := range room.Players {
		p.ResetForRound()
	}

	roundType, forced := determineRoundType(room)
	room.RoundType = roundType
	room.ForcedCategory = forced

	// Reset the exclusion list once it would exhaust the mode's catalog, so
	// small catalogs keep producing rounds.
	if len(room.EventHistory) >= len(catalog.EventsForMode(room.Mode)) {
		room.EventHistory = nil
	}

	var filter *models.Category
	if roundType == models.RoundCategory && forced != nil {
		filter = forced
	}
	event := catalog.SelectEvent(room.Mode, filter, room.EventHistory)

	room.CurrentEventID = event.ID
	room.CurrentEvent = catalog.ProjectForClient(room.Mode, event)
	room.EventHistory = append(room.EventHistory, event.ID)

	if roundType == models.RoundSupport {
		hint := catalog.GenerateHint(room.Mode, event.CorrectRange)
		room.Hint = &hint
	} else {
		room.Hint = nil
	}
}
