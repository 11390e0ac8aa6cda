package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/models"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	blog.CreatedAt = time.Now()

	query := `
		INSERT INTO blogs (id, user_id, name, description, thumbnail_url, created_at)
		VALUES (:id, :user_id, :name, :description, :thumbnail_url, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, blog)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, blogID string) (*models.Blog, error) {
	query := `SELECT * FROM blogs WHERE id = $1`

	var blog models.Blog
	err := r.db.GetContext(ctx, &blog, query, blogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return &blog, nil
}

func (r *blogRepository) GetByUserID(ctx context.Context, userID string) ([]models.Blog, error) {
	query := `
		SELECT * FROM blogs
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	var blogs []models.Blog
	err := r.db.SelectContext(ctx, &blogs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) GetTrashByUserID(ctx context.Context, userID string) ([]models.Blog, error) {
	query := `
		SELECT * FROM blogs
		WHERE user_id = $1 AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC
	`

	var blogs []models.Blog
	err := r.db.SelectContext(ctx, &blogs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trashed blogs: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) MarkDeleted(ctx context.Context, blogID string, deletedAt time.Time) error {
	query := `UPDATE blogs SET deleted_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, deletedAt, blogID)
	if err != nil {
		return fmt.Errorf("failed to soft delete blog: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.ErrBlogNotFound
	}

	return nil
}

// MarkDeletedByUserID soft-deletes every still-active blog of one user
// in a single statement. Zero affected rows is fine here: the user may
// simply own no active blogs.
func (r *blogRepository) MarkDeletedByUserID(ctx context.Context, userID string, deletedAt time.Time) error {
	query := `UPDATE blogs SET deleted_at = $1 WHERE user_id = $2 AND deleted_at IS NULL`

	_, err := r.db.ExecContext(ctx, query, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete user blogs: %w", err)
	}

	return nil
}

func (r *blogRepository) ClearDeleted(ctx context.Context, blogID string) error {
	query := `UPDATE blogs SET deleted_at = NULL WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, blogID)
	if err != nil {
		return fmt.Errorf("failed to restore blog: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.ErrBlogNotFound
	}

	return nil
}
