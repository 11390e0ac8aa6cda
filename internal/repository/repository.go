package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Sky-Wdh/Snuggle/internal/models"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	MarkDeleted(ctx context.Context, userID string, deletedAt time.Time) error
	ClearDeleted(ctx context.Context, userID string) error
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, blogID string) (*models.Blog, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Blog, error)
	GetTrashByUserID(ctx context.Context, userID string) ([]models.Blog, error)
	MarkDeleted(ctx context.Context, blogID string, deletedAt time.Time) error
	MarkDeletedByUserID(ctx context.Context, userID string, deletedAt time.Time) error
	ClearDeleted(ctx context.Context, blogID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.PostListItem, error)
	ListByBlogID(ctx context.Context, blogID string) ([]models.Post, error)
	ListFeed(ctx context.Context, userIDs []string, limit int) ([]models.PostListItem, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	ReplaceCategories(ctx context.Context, postID string, categoryIDs []string) error
	GetCategories(ctx context.Context, postID string) ([]models.Category, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, categoryID string) (*models.Category, error)
}

type SubscribeRepository interface {
	Exists(ctx context.Context, subID, subedID string) (bool, error)
	Create(ctx context.Context, subID, subedID string) error
	Delete(ctx context.Context, subID, subedID string) error
	CountFollowing(ctx context.Context, userID string) (int, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
	ListSubscribedIDs(ctx context.Context, subID string) ([]string, error)
}

type ForumRepository interface {
	List(ctx context.Context, params ForumListParams) ([]models.ForumListItem, error)
	GetByID(ctx context.Context, forumID string) (*models.ForumListItem, error)
	Create(ctx context.Context, forum *models.Forum) error
	Delete(ctx context.Context, forumID string) error
	ListComments(ctx context.Context, forumID string) ([]models.ForumComment, error)
	CreateComment(ctx context.Context, comment *models.ForumComment) error
	GetCommentByID(ctx context.Context, commentID string) (*models.ForumComment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

type Repository struct {
	Profile   ProfileRepository
	Blog      BlogRepository
	Post      PostRepository
	Category  CategoryRepository
	Subscribe SubscribeRepository
	Forum     ForumRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Profile:   NewProfileRepository(db),
		Blog:      NewBlogRepository(db),
		Post:      NewPostRepository(db),
		Category:  NewCategoryRepository(db),
		Subscribe: NewSubscribeRepository(db),
		Forum:     NewForumRepository(db),
	}
}
