package db

import (
	"time"

	"gorm.io/datatypes"
)

// Room is one play session. Turn, question and vote bookkeeping lives in
// JSON list columns; the board-game variants keep their whole sub-state in
// VariantState. Version backs the conditional update in UpdateRoom.
type Room struct {
	ID      string `gorm:"primaryKey;size:36"`
	GameID  uint   `gorm:"index;not null"`
	UserID  string `gorm:"size:64;index;not null"`
	Version int64  `gorm:"not null;default:0"`

	CurrentTurn   string                      `gorm:"size:64"`
	PreviousTurns datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	PlayerOneID     string                      `gorm:"size:64"`
	PlayerTwoID     string                      `gorm:"size:64"`
	AllPairIDs      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	PreviousPairIDs datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	CurrentQuestionID   *uint
	PreviousQuestionIDs datatypes.JSONSlice[uint] `gorm:"type:jsonb"`
	Rounds              int                       `gorm:"not null;default:0"`
	CurrentRound        int                       `gorm:"not null;default:1"`

	CurrentAnswer *string                     `gorm:"size:280"`
	VotesA        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	VotesB        datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	CurrentCard       *int
	LastCard          *int
	LastPlayerID      string                   `gorm:"size:64"`
	CorrectPrediction *bool
	PreviousCards     datatypes.JSONSlice[int] `gorm:"type:jsonb"`

	PlayingTeams        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	PreviousPlayedTeams datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	VariantState datatypes.JSON `gorm:"type:jsonb"`

	GameEnded   bool `gorm:"not null;default:false;index"`
	GameEndedAt *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Players []Player `gorm:"constraint:OnDelete:CASCADE"`
}

type Player struct {
	ID        string  `gorm:"primaryKey;size:36"`
	RoomID    string  `gorm:"size:36;index;not null;uniqueIndex:idx_players_room_name"`
	Name      string  `gorm:"size:64;not null;uniqueIndex:idx_players_room_name"`
	Points    int     `gorm:"not null;default:0"`
	Drinks    int     `gorm:"not null;default:0"`
	Team      *string `gorm:"size:64"`
	Seat      int     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Game is a catalog entry. Offered games carry Published=false; the flag is
// a draft marker used inversely by the catalog listing.
type Game struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:64;uniqueIndex;not null"`
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"size:1024"`
	Published   bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Questions []Question
}

type Question struct {
	ID      uint    `gorm:"primaryKey"`
	GameID  uint    `gorm:"index;not null"`
	Text    string  `gorm:"size:1024;not null"`
	Answer  *string `gorm:"size:1024"`
	Edition *int    `gorm:"index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Transaction is the room-quota ledger for a user. The newest row decides
// whether the user may open another room.
type Transaction struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        string `gorm:"size:64;index;not null"`
	ProfileType   string `gorm:"size:32;not null"`
	AssignedRooms int    `gorm:"not null;default:0"`
	UsedRooms     int    `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}
