package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/models"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert writes the identity provider's metadata into profiles, keyed
// by the externally issued user id.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id, nickname, profile_image_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET nickname = EXCLUDED.nickname,
		    profile_image_url = EXCLUDED.profile_image_url
		RETURNING *
	`

	var saved models.Profile
	err := r.db.GetContext(ctx, &saved, query, profile.ID, profile.Nickname, profile.ProfileImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return &saved, nil
}

func (r *profileRepository) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT * FROM profiles WHERE id = $1`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) MarkDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	query := `UPDATE profiles SET deleted_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.ErrProfileNotFound
	}

	return nil
}

func (r *profileRepository) ClearDeleted(ctx context.Context, userID string) error {
	query := `UPDATE profiles SET deleted_at = NULL WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to restore profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.ErrProfileNotFound
	}

	return nil
}
