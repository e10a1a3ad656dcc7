package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// LatestTransaction returns the newest quota ledger row for a user.
func (r *Repo) LatestTransaction(ctx context.Context, userID string) (*Transaction, error) {
	var txn Transaction
	err := r.conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *Repo) CreateTransaction(ctx context.Context, txn *Transaction) error {
	if txn == nil {
		return errors.New("transaction is nil")
	}
	return r.conn.WithContext(ctx).Create(txn).Error
}

func (r *Repo) SaveTransaction(ctx context.Context, txn *Transaction) error {
	if txn == nil {
		return errors.New("transaction is nil")
	}
	return r.conn.WithContext(ctx).Save(txn).Error
}
