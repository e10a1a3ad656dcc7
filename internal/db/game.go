package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GetGameByCode loads a catalog game and its full question pool.
func (r *Repo) GetGameByCode(ctx context.Context, code string) (*Game, error) {
	var game Game
	err := r.conn.WithContext(ctx).
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id ASC")
		}).
		First(&game, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *Repo) GetGameByID(ctx context.Context, id uint) (*Game, error) {
	var game Game
	err := r.conn.WithContext(ctx).
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id ASC")
		}).
		First(&game, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// ListOfferedGames returns the playable catalog. Published marks drafts, so
// offered games are the unpublished ones.
func (r *Repo) ListOfferedGames(ctx context.Context) ([]Game, error) {
	var games []Game
	err := r.conn.WithContext(ctx).
		Where("published = ?", false).
		Order("name ASC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// ListEditions returns the distinct non-null editions of a game's
// questions, ascending.
func (r *Repo) ListEditions(ctx context.Context, gameCode string) ([]int, error) {
	game, err := r.GetGameByCode(ctx, gameCode)
	if err != nil {
		return nil, err
	}
	var editions []int
	err = r.conn.WithContext(ctx).
		Model(&Question{}).
		Where("game_id = ? AND edition IS NOT NULL", game.ID).
		Distinct("edition").
		Order("edition ASC").
		Pluck("edition", &editions).Error
	if err != nil {
		return nil, err
	}
	return editions, nil
}

func (r *Repo) SaveGame(ctx context.Context, game *Game) error {
	if game == nil {
		return errors.New("game is nil")
	}
	return r.conn.WithContext(ctx).Save(game).Error
}
