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

// ForumListParams narrows the forum listing. Category filters on the
// "[category] " title prefix the write path stores; SearchType is one
// of title, content, title_content.
type ForumListParams struct {
	Limit      int
	Offset     int
	Category   string
	Search     string
	SearchType string
}

type forumRepository struct {
	db *sqlx.DB
}

func NewForumRepository(db *sqlx.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) List(ctx context.Context, params ForumListParams) ([]models.ForumListItem, error) {
	query := `
		SELECT f.*, b.name AS blog_name, b.thumbnail_url AS blog_thumbnail_url,
		       (SELECT COUNT(*) FROM forum_comments c WHERE c.forum_id = f.id) AS comment_count
		FROM forums f
		LEFT JOIN blogs b ON b.id = f.blog_id
	`

	var conditions []string
	var args []interface{}

	// "전체" is the all-categories tab, same as no filter.
	if params.Category != "" && params.Category != "전체" {
		args = append(args, "["+params.Category+"]%")
		conditions = append(conditions, fmt.Sprintf("f.title ILIKE $%d", len(args)))
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		switch params.SearchType {
		case "title":
			args = append(args, pattern)
			conditions = append(conditions, fmt.Sprintf("f.title ILIKE $%d", len(args)))
		case "content":
			args = append(args, pattern)
			conditions = append(conditions, fmt.Sprintf("f.description ILIKE $%d", len(args)))
		default:
			args = append(args, pattern)
			n := len(args)
			conditions = append(conditions, fmt.Sprintf("(f.title ILIKE $%d OR f.description ILIKE $%d)", n, n))
		}
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}

	args = append(args, params.Limit)
	query += fmt.Sprintf(" ORDER BY f.created_at DESC LIMIT $%d", len(args))
	args = append(args, params.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var forums []models.ForumListItem
	err := r.db.SelectContext(ctx, &forums, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list forums: %w", err)
	}

	return forums, nil
}

func (r *forumRepository) GetByID(ctx context.Context, forumID string) (*models.ForumListItem, error) {
	query := `
		SELECT f.*, b.name AS blog_name, b.thumbnail_url AS blog_thumbnail_url,
		       (SELECT COUNT(*) FROM forum_comments c WHERE c.forum_id = f.id) AS comment_count
		FROM forums f
		LEFT JOIN blogs b ON b.id = f.blog_id
		WHERE f.id = $1
	`

	var forum models.ForumListItem
	err := r.db.GetContext(ctx, &forum, query, forumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrForumNotFound
		}
		return nil, fmt.Errorf("failed to get forum post: %w", err)
	}

	return &forum, nil
}

func (r *forumRepository) Create(ctx context.Context, forum *models.Forum) error {
	if forum.ID == "" {
		forum.ID = uuid.New().String()
	}
	forum.CreatedAt = time.Now()

	query := `
		INSERT INTO forums (id, user_id, blog_id, title, description, created_at)
		VALUES (:id, :user_id, :blog_id, :title, :description, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, forum)
	if err != nil {
		return fmt.Errorf("failed to create forum post: %w", err)
	}

	return nil
}

func (r *forumRepository) Delete(ctx context.Context, forumID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM forum_comments WHERE forum_id = $1`, forumID)
	if err != nil {
		return fmt.Errorf("failed to delete forum comments: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM forums WHERE id = $1`, forumID)
	if err != nil {
		return fmt.Errorf("failed to delete forum post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.ErrForumNotFound
	}

	return nil
}

func (r *forumRepository) ListComments(ctx context.Context, forumID string) ([]models.ForumComment, error) {
	query := `
		SELECT * FROM forum_comments
		WHERE forum_id = $1
		ORDER BY created_at
	`

	var comments []models.ForumComment
	err := r.db.SelectContext(ctx, &comments, query, forumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (r *forumRepository) CreateComment(ctx context.Context, comment *models.ForumComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO forum_comments (id, forum_id, user_id, content, created_at)
		VALUES (:id, :forum_id, :user_id, :content, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *forumRepository) GetCommentByID(ctx context.Context, commentID string) (*models.ForumComment, error) {
	query := `SELECT * FROM forum_comments WHERE id = $1`

	var comment models.ForumComment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *forumRepository) DeleteComment(ctx context.Context, commentID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM forum_comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.ErrCommentNotFound
	}

	return nil
}
