package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GetRoom loads a room with its players in seat order.
func (r *Repo) GetRoom(ctx context.Context, id string) (*Room, error) {
	var room Room
	err := r.conn.WithContext(ctx).
		Preload("Players", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("seat ASC")
		}).
		First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *Repo) CreateRoom(ctx context.Context, room *Room) error {
	if room == nil {
		return errors.New("room is nil")
	}
	return r.conn.WithContext(ctx).Create(room).Error
}

// UpdateRoom persists room fields conditionally on the version the caller
// read. A concurrent writer bumps the version first and the losing update
// matches zero rows.
func (r *Repo) UpdateRoom(ctx context.Context, room *Room) error {
	if room == nil {
		return errors.New("room is nil")
	}
	readVersion := room.Version
	room.Version = readVersion + 1
	result := r.conn.WithContext(ctx).
		Model(&Room{}).
		Where("id = ? AND version = ?", room.ID, readVersion).
		Select("*").
		Omit("Players", "id", "created_at").
		Updates(room)
	if result.Error != nil {
		room.Version = readVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		room.Version = readVersion
		return ErrVersionConflict
	}
	return nil
}

// ListOpenRoomsBefore returns rooms still open whose creation time is at or
// before the cutoff.
func (r *Repo) ListOpenRoomsBefore(ctx context.Context, cutoff time.Time) ([]Room, error) {
	var rooms []Room
	err := r.conn.WithContext(ctx).
		Where("game_ended = ? AND created_at <= ?", false, cutoff).
		Order("created_at ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// CloseRoom marks a single room ended with an explicit end timestamp.
func (r *Repo) CloseRoom(ctx context.Context, id string, endedAt time.Time) error {
	result := r.conn.WithContext(ctx).
		Model(&Room{}).
		Where("id = ? AND game_ended = ?", id, false).
		Updates(map[string]any{
			"game_ended":    true,
			"game_ended_at": endedAt,
			"version":       gorm.Expr("version + 1"),
		})
	return result.Error
}
