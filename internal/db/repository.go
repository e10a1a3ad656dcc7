package db

import (
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrGameNotFound        = errors.New("game not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPlayerNameTaken     = errors.New("player name already taken")
	ErrVersionConflict     = errors.New("room version conflict")
)

// Repo is the gorm-backed repository for rooms, players, the game catalog
// and the quota ledger.
type Repo struct {
	conn *gorm.DB
}

func NewRepo(conn *gorm.DB) *Repo {
	return &Repo{conn: conn}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
