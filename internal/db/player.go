package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

func (r *Repo) CreatePlayer(ctx context.Context, player *Player) error {
	if player == nil {
		return errors.New("player is nil")
	}
	if err := r.conn.WithContext(ctx).Create(player).Error; err != nil {
		if isUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPlayerNameTaken
		}
		return err
	}
	return nil
}

// UpdatePlayer persists score fields for one player.
func (r *Repo) UpdatePlayer(ctx context.Context, player *Player) error {
	if player == nil {
		return errors.New("player is nil")
	}
	result := r.conn.WithContext(ctx).
		Model(&Player{}).
		Where("id = ?", player.ID).
		Updates(map[string]any{
			"points": player.Points,
			"drinks": player.Drinks,
			"team":   player.Team,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// SavePlayers persists score fields for several players. Each write is its
// own statement; callers treat the sequence as best-effort.
func (r *Repo) SavePlayers(ctx context.Context, players []Player) error {
	for i := range players {
		if err := r.UpdatePlayer(ctx, &players[i]); err != nil {
			return err
		}
	}
	return nil
}
