package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type subscribeRepository struct {
	db *sqlx.DB
}

func NewSubscribeRepository(db *sqlx.DB) SubscribeRepository {
	return &subscribeRepository{db: db}
}

func (r *subscribeRepository) Exists(ctx context.Context, subID, subedID string) (bool, error) {
	query := `SELECT COUNT(*) FROM subscribe WHERE sub_id = $1 AND subed_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, subID, subedID)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	return count > 0, nil
}

func (r *subscribeRepository) Create(ctx context.Context, subID, subedID string) error {
	query := `INSERT INTO subscribe (sub_id, subed_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, subID, subedID)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

func (r *subscribeRepository) Delete(ctx context.Context, subID, subedID string) error {
	query := `DELETE FROM subscribe WHERE sub_id = $1 AND subed_id = $2`

	_, err := r.db.ExecContext(ctx, query, subID, subedID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	return nil
}

func (r *subscribeRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM subscribe WHERE sub_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}

	return count, nil
}

func (r *subscribeRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM subscribe WHERE subed_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	return count, nil
}

func (r *subscribeRepository) ListSubscribedIDs(ctx context.Context, subID string) ([]string, error) {
	query := `SELECT subed_id FROM subscribe WHERE sub_id = $1`

	var ids []string
	err := r.db.SelectContext(ctx, &ids, query, subID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed users: %w", err)
	}

	return ids, nil
}
