package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"timeline/models"
)

// ArchiveService persists finished games to Postgres. Live rooms never touch
// the database; only the final outcome is written, best-effort, after the
// winning reveal commits.
type ArchiveService struct {
	db *gorm.DB
}

func NewArchiveService(db *gorm.DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// RecordFinishedGame writes a GameRecord and per-player standings in one
// transaction. Recording the same room twice is a no-op.
func (s *ArchiveService) RecordFinishedGame(room *models.Room) error {
	if room.WinnerID == nil {
		return errors.New("room has no winner")
	}

	winner, ok := room.Players[*room.WinnerID]
	winnerName := ""
	if ok {
		winnerName = winner.DisplayName
	}

	record := models.GameRecord{
		RoomID:     room.ID,
		Code:       room.Code,
		Mode:       string(room.Mode),
		Rounds:     room.CurrentRound,
		WinnerID:   *room.WinnerID,
		WinnerName: winnerName,
		FinishedAt: time.Now(),
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.GameRecord
		if err := tx.Where("room_id = ?", room.ID).First(&existing).Error; err == nil {
			return nil
		}

		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		for _, id := range room.SortedPlayerIDs() {
			p := room.Players[id]
			standing := models.PlayerStanding{
				GameRecordID: record.ID,
				PlayerID:     p.ID,
				DisplayName:  p.DisplayName,
				Avatar:       p.Avatar,
				Position:     p.Position,
				Won:          p.ID == *room.WinnerID,
			}
			if err := tx.Create(&standing).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RecentGames returns the latest finished games, newest first.
func (s *ArchiveService) RecentGames(limit int) ([]models.GameRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var records []models.GameRecord
	err := s.db.Preload("Standings").
		Order("finished_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
