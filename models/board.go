package models

import "math/rand"

type TileType string

const (
	NormalTile   TileType = "NORMAL_TILE"
	RiskTile     TileType = "RISK_TILE"
	CategoryTile TileType = "CATEGORY_TILE"
	SupportTile  TileType = "SUPPORT_TILE"
)

// BoardTile is one position on the track. Immutable after generation.
type BoardTile struct {
	Position int       `json:"position"`
	Type     TileType  `json:"type"`
	Category *Category `json:"category,omitempty"` // set for CATEGORY_TILE only
}

// Special tile placement is fixed: support at 3 and 12, category at 6 and 14,
// risk at 9. Boards shorter than an index simply omit that tile.
func tileTypeAt(position int) TileType {
	switch position {
	case 3, 12:
		return SupportTile
	case 6, 14:
		return CategoryTile
	case 9:
		return RiskTile
	default:
		return NormalTile
	}
}

// GenerateBoard builds the tile sequence for a board of the given size.
// Category tiles are bound to a uniformly random category from the supplied
// set at generation time and never re-rolled.
func GenerateBoard(categories []Category, boardSize int) []BoardTile {
	tiles := make([]BoardTile, 0, boardSize)
	for i := 0; i < boardSize; i++ {
		tile := BoardTile{Position: i, Type: tileTypeAt(i)}
		if tile.Type == CategoryTile && len(categories) > 0 {
			c := categories[rand.Intn(len(categories))]
			tile.Category = &c
		}
		tiles = append(tiles, tile)
	}
	return tiles
}
