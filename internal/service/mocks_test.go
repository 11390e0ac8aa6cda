package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Sky-Wdh/Snuggle/internal/models"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) MarkDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

func (m *MockProfileRepository) ClearDeleted(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, blogID string) (*models.Blog, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) GetByUserID(ctx context.Context, userID string) ([]models.Blog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) GetTrashByUserID(ctx context.Context, userID string) ([]models.Blog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) MarkDeleted(ctx context.Context, blogID string, deletedAt time.Time) error {
	args := m.Called(ctx, blogID, deletedAt)
	return args.Error(0)
}

func (m *MockBlogRepository) MarkDeletedByUserID(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

func (m *MockBlogRepository) ClearDeleted(ctx context.Context, blogID string) error {
	args := m.Called(ctx, blogID)
	return args.Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]models.PostListItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostListItem), args.Error(1)
}

func (m *MockPostRepository) ListByBlogID(ctx context.Context, blogID string) ([]models.Post, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListFeed(ctx context.Context, userIDs []string, limit int) ([]models.PostListItem, error) {
	args := m.Called(ctx, userIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostListItem), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) ReplaceCategories(ctx context.Context, postID string, categoryIDs []string) error {
	args := m.Called(ctx, postID, categoryIDs)
	return args.Error(0)
}

func (m *MockPostRepository) GetCategories(ctx context.Context, postID string) ([]models.Category, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

type MockSubscribeRepository struct {
	mock.Mock
}

func (m *MockSubscribeRepository) Exists(ctx context.Context, subID, subedID string) (bool, error) {
	args := m.Called(ctx, subID, subedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscribeRepository) Create(ctx context.Context, subID, subedID string) error {
	args := m.Called(ctx, subID, subedID)
	return args.Error(0)
}

func (m *MockSubscribeRepository) Delete(ctx context.Context, subID, subedID string) error {
	args := m.Called(ctx, subID, subedID)
	return args.Error(0)
}

func (m *MockSubscribeRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockSubscribeRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockSubscribeRepository) ListSubscribedIDs(ctx context.Context, subID string) ([]string, error) {
	args := m.Called(ctx, subID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockForumRepository struct {
	mock.Mock
}

func (m *MockForumRepository) List(ctx context.Context, params repository.ForumListParams) ([]models.ForumListItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumListItem), args.Error(1)
}

func (m *MockForumRepository) GetByID(ctx context.Context, forumID string) (*models.ForumListItem, error) {
	args := m.Called(ctx, forumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumListItem), args.Error(1)
}

func (m *MockForumRepository) Create(ctx context.Context, forum *models.Forum) error {
	args := m.Called(ctx, forum)
	return args.Error(0)
}

func (m *MockForumRepository) Delete(ctx context.Context, forumID string) error {
	args := m.Called(ctx, forumID)
	return args.Error(0)
}

func (m *MockForumRepository) ListComments(ctx context.Context, forumID string) ([]models.ForumComment, error) {
	args := m.Called(ctx, forumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumComment), args.Error(1)
}

func (m *MockForumRepository) CreateComment(ctx context.Context, comment *models.ForumComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockForumRepository) GetCommentByID(ctx context.Context, commentID string) (*models.ForumComment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumComment), args.Error(1)
}

func (m *MockForumRepository) DeleteComment(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}
