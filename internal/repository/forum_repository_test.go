package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sky-Wdh/Snuggle/internal/apperr"
)

func forumListRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "blog_id", "title", "description", "created_at",
		"blog_name", "blog_thumbnail_url", "comment_count",
	}).
		AddRow("forum-1", "user-1", nil, "[잡담] hello", "first post", time.Now(), nil, nil, 3)
}

func TestForumRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewForumRepository(sqlxDB)

	ctx := context.Background()

	baseQuery := `
		SELECT f.*, b.name AS blog_name, b.thumbnail_url AS blog_thumbnail_url,
		       (SELECT COUNT(*) FROM forum_comments c WHERE c.forum_id = f.id) AS comment_count
		FROM forums f
		LEFT JOIN blogs b ON b.id = f.blog_id
	`

	t.Run("no filters", func(t *testing.T) {
		mock.ExpectQuery(baseQuery + ` ORDER BY f.created_at DESC LIMIT $1 OFFSET $2`).
			WithArgs(20, 0).
			WillReturnRows(forumListRows())

		forums, err := repo.List(ctx, ForumListParams{Limit: 20, Offset: 0})

		require.NoError(t, err)
		require.Len(t, forums, 1)
		assert.Equal(t, 3, forums[0].CommentCount)
	})

	t.Run("the all-categories tab is the same as no filter", func(t *testing.T) {
		mock.ExpectQuery(baseQuery + ` ORDER BY f.created_at DESC LIMIT $1 OFFSET $2`).
			WithArgs(20, 0).
			WillReturnRows(forumListRows())

		_, err := repo.List(ctx, ForumListParams{Limit: 20, Offset: 0, Category: "전체"})

		assert.NoError(t, err)
	})

	t.Run("category filters on the title prefix", func(t *testing.T) {
		mock.ExpectQuery(baseQuery + ` WHERE f.title ILIKE $1 ORDER BY f.created_at DESC LIMIT $2 OFFSET $3`).
			WithArgs("[잡담]%", 20, 0).
			WillReturnRows(forumListRows())

		_, err := repo.List(ctx, ForumListParams{Limit: 20, Offset: 0, Category: "잡담"})

		assert.NoError(t, err)
	})

	t.Run("default search spans title and description", func(t *testing.T) {
		mock.ExpectQuery(baseQuery + ` WHERE (f.title ILIKE $1 OR f.description ILIKE $1) ORDER BY f.created_at DESC LIMIT $2 OFFSET $3`).
			WithArgs("%hello%", 20, 0).
			WillReturnRows(forumListRows())

		_, err := repo.List(ctx, ForumListParams{Limit: 20, Offset: 0, Search: "hello"})

		assert.NoError(t, err)
	})

	t.Run("category and title search combine", func(t *testing.T) {
		mock.ExpectQuery(baseQuery + ` WHERE f.title ILIKE $1 AND f.title ILIKE $2 ORDER BY f.created_at DESC LIMIT $3 OFFSET $4`).
			WithArgs("[잡담]%", "%hello%", 20, 0).
			WillReturnRows(forumListRows())

		_, err := repo.List(ctx, ForumListParams{
			Limit:      20,
			Offset:     0,
			Category:   "잡담",
			Search:     "hello",
			SearchType: "title",
		})

		assert.NoError(t, err)
	})
}

func TestForumRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewForumRepository(sqlxDB)

	ctx := context.Background()

	query := `
		SELECT f.*, b.name AS blog_name, b.thumbnail_url AS blog_thumbnail_url,
		       (SELECT COUNT(*) FROM forum_comments c WHERE c.forum_id = f.id) AS comment_count
		FROM forums f
		LEFT JOIN blogs b ON b.id = f.blog_id
		WHERE f.id = $1
	`

	t.Run("returns the forum post with its comment count", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("forum-1").
			WillReturnRows(forumListRows())

		forum, err := repo.GetByID(ctx, "forum-1")

		require.NoError(t, err)
		assert.Equal(t, "[잡담] hello", forum.Title)
		assert.Equal(t, 3, forum.CommentCount)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		forum, err := repo.GetByID(ctx, "missing")

		assert.ErrorIs(t, err, apperr.ErrForumNotFound)
		assert.Nil(t, forum)
	})
}

func TestForumRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewForumRepository(sqlxDB)

	ctx := context.Background()

	t.Run("removes comments first, then the post", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM forum_comments WHERE forum_id = $1`).
			WithArgs("forum-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM forums WHERE id = $1`).
			WithArgs("forum-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, "forum-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means the forum post does not exist", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM forum_comments WHERE forum_id = $1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM forums WHERE id = $1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "missing")

		assert.ErrorIs(t, err, apperr.ErrForumNotFound)
	})
}
