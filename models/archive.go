package models

import (
	"time"

	"gorm.io/gorm"
)

// GameRecord is the durable row written when a game finishes. Live rooms stay
// in the document store; only completed games are archived.
type GameRecord struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	RoomID     string         `json:"room_id" gorm:"uniqueIndex;not null"`
	Code       string         `json:"code" gorm:"not null"`
	Mode       string         `json:"mode" gorm:"not null"`
	Rounds     int            `json:"rounds" gorm:"not null"`
	WinnerID   string         `json:"winner_id" gorm:"not null"`
	WinnerName string         `json:"winner_name" gorm:"not null"`
	FinishedAt time.Time      `json:"finished_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	Standings []PlayerStanding `json:"standings,omitempty" gorm:"foreignKey:GameRecordID"`
}

// PlayerStanding is one player's final position in an archived game.
type PlayerStanding struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	GameRecordID uint      `json:"game_record_id" gorm:"not null;index"`
	PlayerID     string    `json:"player_id" gorm:"not null"`
	DisplayName  string    `json:"display_name" gorm:"not null"`
	Avatar       string    `json:"avatar" gorm:"not null"`
	Position     int       `json:"position" gorm:"not null"`
	Won          bool      `json:"won" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
}
