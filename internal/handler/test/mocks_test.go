package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Sky-Wdh/Snuggle/internal/identity"
	"github.com/Sky-Wdh/Snuggle/internal/models"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
	"github.com/Sky-Wdh/Snuggle/internal/service"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) SyncProfile(ctx context.Context, user *identity.User) (*models.Profile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) DeleteAccount(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProfileService) RestoreAccount(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) CreateBlog(ctx context.Context, req service.CreateBlogRequest) (*models.Blog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogService) GetBlog(ctx context.Context, blogID string) (*models.Blog, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogService) GetUserBlogs(ctx context.Context, userID string) ([]models.Blog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogService) GetTrash(ctx context.Context, userID string) ([]models.Blog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogService) DeleteBlog(ctx context.Context, actorID, blogID string) error {
	args := m.Called(ctx, actorID, blogID)
	return args.Error(0)
}

func (m *MockBlogService) RestoreBlog(ctx context.Context, actorID, blogID string) (*models.Blog, error) {
	args := m.Called(ctx, actorID, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context, limit, offset int) ([]models.PostListItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostListItem), args.Error(1)
}

func (m *MockPostService) ListBlogPosts(ctx context.Context, blogID string) ([]models.Post, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) GetFeed(ctx context.Context, userID string, limit int) ([]models.PostListItem, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostListItem), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, actorID, postID string) (*service.PostDetail, error) {
	args := m.Called(ctx, actorID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostDetail), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, req service.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, actorID, postID string) error {
	args := m.Called(ctx, actorID, postID)
	return args.Error(0)
}

type MockSubscribeService struct {
	mock.Mock
}

func (m *MockSubscribeService) Toggle(ctx context.Context, subID, targetID string) (bool, error) {
	args := m.Called(ctx, subID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscribeService) Check(ctx context.Context, subID, targetID string) (bool, error) {
	args := m.Called(ctx, subID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscribeService) Counts(ctx context.Context, userID string) (*service.SubscriptionCounts, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubscriptionCounts), args.Error(1)
}

type MockForumService struct {
	mock.Mock
}

func (m *MockForumService) List(ctx context.Context, params repository.ForumListParams) ([]models.ForumListItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumListItem), args.Error(1)
}

func (m *MockForumService) Get(ctx context.Context, forumID string) (*models.ForumListItem, error) {
	args := m.Called(ctx, forumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumListItem), args.Error(1)
}

func (m *MockForumService) Create(ctx context.Context, req service.CreateForumRequest) (*models.Forum, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Forum), args.Error(1)
}

func (m *MockForumService) Delete(ctx context.Context, actorID, forumID string) error {
	args := m.Called(ctx, actorID, forumID)
	return args.Error(0)
}

func (m *MockForumService) ListComments(ctx context.Context, forumID string) ([]models.ForumComment, error) {
	args := m.Called(ctx, forumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumComment), args.Error(1)
}

func (m *MockForumService) AddComment(ctx context.Context, req service.CreateCommentRequest) (*models.ForumComment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumComment), args.Error(1)
}

func (m *MockForumService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	args := m.Called(ctx, actorID, commentID)
	return args.Error(0)
}
