package models

import "testing"

func TestGenerateBoard_Length(t *testing.T) {
	for _, mode := range []GameMode{ModeGlobal, ModeThailand, ModeScience, ModeMovies, ModeMovieGuess} {
		cfg := mode.Config()
		tiles := GenerateBoard(cfg.Categories, cfg.BoardSize)
		if len(tiles) != cfg.BoardSize {
			t.Errorf("mode %s: board length = %d, want %d", mode, len(tiles), cfg.BoardSize)
		}
	}
}

func TestGenerateBoard_SpecialTilePlacement(t *testing.T) {
	tiles := GenerateBoard(ModeGlobal.Config().Categories, BoardSize)

	want := map[int]TileType{
		3:  SupportTile,
		6:  CategoryTile,
		9:  RiskTile,
		12: SupportTile,
		14: CategoryTile,
	}

	for i, tile := range tiles {
		if tile.Position != i {
			t.Errorf("tile %d has position %d", i, tile.Position)
		}
		wantType, special := want[i]
		if !special {
			wantType = NormalTile
		}
		if tile.Type != wantType {
			t.Errorf("tile %d type = %s, want %s", i, tile.Type, wantType)
		}
	}
}

func TestGenerateBoard_CategoryTilesBound(t *testing.T) {
	categories := ModeGlobal.Config().Categories
	tiles := GenerateBoard(categories, BoardSize)

	valid := make(map[Category]bool)
	for _, c := range categories {
		valid[c] = true
	}

	for _, tile := range tiles {
		switch tile.Type {
		case CategoryTile:
			if tile.Category == nil {
				t.Errorf("category tile at %d has no category", tile.Position)
			} else if !valid[*tile.Category] {
				t.Errorf("category tile at %d bound to %s, not in mode set", tile.Position, *tile.Category)
			}
		default:
			if tile.Category != nil {
				t.Errorf("%s tile at %d should not carry a category", tile.Type, tile.Position)
			}
		}
	}
}

func TestGenerateBoard_ShortBoard(t *testing.T) {
	// MOVIE_GUESS board is 6 tiles: only the support tile at 3 fits.
	tiles := GenerateBoard(ModeMovieGuess.Config().Categories, MovieGuessBoardSize)

	if len(tiles) != MovieGuessBoardSize {
		t.Fatalf("board length = %d, want %d", len(tiles), MovieGuessBoardSize)
	}
	for _, tile := range tiles {
		want := NormalTile
		if tile.Position == 3 {
			want = SupportTile
		}
		if tile.Type != want {
			t.Errorf("tile %d type = %s, want %s", tile.Position, tile.Type, want)
		}
	}
}
