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

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts
		(id, blog_id, user_id, title, content, thumbnail_url, category_id, is_private, published, created_at, updated_at)
		VALUES
		(:id, :blog_id, :user_id, :title, :content, :thumbnail_url, :category_id, :is_private, :published, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// List returns every post newest-first, private ones included. Listings
// deliberately expose title and thumbnail of private posts; only the
// detail fetch is gated.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.PostListItem, error) {
	query := `
		SELECT p.id, p.title, p.content, p.thumbnail_url, p.created_at, p.blog_id,
		       b.name AS blog_name, b.thumbnail_url AS blog_thumbnail_url
		FROM posts p
		LEFT JOIN blogs b ON b.id = p.blog_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var posts []models.PostListItem
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) ListByBlogID(ctx context.Context, blogID string) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE blog_id = $1
		ORDER BY created_at DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return posts, nil
}

// ListFeed returns published posts written by any of the given users.
// Unlike the global listing, the feed filters on published.
func (r *postRepository) ListFeed(ctx context.Context, userIDs []string, limit int) ([]models.PostListItem, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT p.id, p.title, p.content, p.thumbnail_url, p.created_at, p.blog_id,
		       b.name AS blog_name, b.thumbnail_url AS blog_thumbnail_url
		FROM posts p
		LEFT JOIN blogs b ON b.id = p.blog_id
		WHERE p.user_id IN (?) AND p.published = true
		ORDER BY p.created_at DESC
		LIMIT ?
	`, userIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed query: %w", err)
	}

	query = r.db.Rebind(query)

	var posts []models.PostListItem
	err = r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			thumbnail_url = :thumbnail_url,
			is_private = :is_private,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.ErrPostNotFound
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM post_categories WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post categories: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.ErrPostNotFound
	}

	return nil
}

// ReplaceCategories swaps the post's category set: delete everything,
// then insert the new links. The caller caps the list at five.
func (r *postRepository) ReplaceCategories(ctx context.Context, postID string, categoryIDs []string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM post_categories WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to clear post categories: %w", err)
	}

	for _, categoryID := range categoryIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2)`,
			postID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to link category %s: %w", categoryID, err)
		}
	}

	return nil
}

func (r *postRepository) GetCategories(ctx context.Context, postID string) ([]models.Category, error) {
	query := `
		SELECT c.* FROM categories c
		JOIN post_categories pc ON pc.category_id = c.id
		WHERE pc.post_id = $1
		ORDER BY c.name
	`

	var categories []models.Category
	err := r.db.SelectContext(ctx, &categories, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post categories: %w", err)
	}

	return categories, nil
}
