package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/Sky-Wdh/Snuggle/internal/access"
	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/models"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
)

// A post links to at most five categories.
const maxPostCategories = 5

var firstImageRe = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)

type CreatePostRequest struct {
	UserID       string
	BlogID       string
	Title        string
	Content      string
	CategoryIDs  []string
	IsPrivate    *bool
	ThumbnailURL *string
}

// UpdatePostRequest carries only the fields the caller sent; nil means
// leave the current value alone. A nil CategoryIDs keeps the category
// set, an empty non-nil slice clears it.
type UpdatePostRequest struct {
	UserID       string
	PostID       string
	Title        *string
	Content      *string
	CategoryIDs  []string
	IsPrivate    *bool
	ThumbnailURL *string
}

// PostDetail is the detail-endpoint shape: the post plus its blog,
// categories and the blog owner's profile.
type PostDetail struct {
	models.Post
	Blog       *models.Blog      `json:"blog"`
	Category   *models.Category  `json:"category"`
	Categories []models.Category `json:"categories"`
	Profile    *models.Profile   `json:"profile"`
}

type PostService interface {
	ListPosts(ctx context.Context, limit, offset int) ([]models.PostListItem, error)
	ListBlogPosts(ctx context.Context, blogID string) ([]models.Post, error)
	GetFeed(ctx context.Context, userID string, limit int) ([]models.PostListItem, error)
	GetPost(ctx context.Context, actorID, postID string) (*PostDetail, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, actorID, postID string) error
}

type postService struct {
	postRepo      repository.PostRepository
	blogRepo      repository.BlogRepository
	profileRepo   repository.ProfileRepository
	categoryRepo  repository.CategoryRepository
	subscribeRepo repository.SubscribeRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	blogRepo repository.BlogRepository,
	profileRepo repository.ProfileRepository,
	categoryRepo repository.CategoryRepository,
	subscribeRepo repository.SubscribeRepository,
) PostService {
	return &postService{
		postRepo:      postRepo,
		blogRepo:      blogRepo,
		profileRepo:   profileRepo,
		categoryRepo:  categoryRepo,
		subscribeRepo: subscribeRepo,
	}
}

// extractFirstImageURL pulls the first <img src> out of the rich HTML
// content; it becomes the post thumbnail when none is given explicitly.
func extractFirstImageURL(content string) *string {
	match := firstImageRe.FindStringSubmatch(content)
	if match == nil {
		return nil
	}
	return &match[1]
}

func attachBlogSummary(items []models.PostListItem) []models.PostListItem {
	for i := range items {
		if items[i].BlogName != nil {
			items[i].Blog = &models.BlogSummary{
				Name:         *items[i].BlogName,
				ThumbnailURL: items[i].BlogThumbnailURL,
			}
		}
	}
	return items
}

func (s *postService) ListPosts(ctx context.Context, limit, offset int) ([]models.PostListItem, error) {
	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return attachBlogSummary(posts), nil
}

func (s *postService) ListBlogPosts(ctx context.Context, blogID string) ([]models.Post, error) {
	return s.postRepo.ListByBlogID(ctx, blogID)
}

func (s *postService) GetFeed(ctx context.Context, userID string, limit int) ([]models.PostListItem, error) {
	subscribedIDs, err := s.subscribeRepo.ListSubscribedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(subscribedIDs) == 0 {
		return []models.PostListItem{}, nil
	}

	posts, err := s.postRepo.ListFeed(ctx, subscribedIDs, limit)
	if err != nil {
		return nil, err
	}

	return attachBlogSummary(posts), nil
}

// GetPost is the only read path that enforces privacy. Post and blog
// misses come back as distinct not-found errors before the privacy
// check runs; a denied private read is answered after both lookups, so
// existence is never hidden (listings expose it anyway).
func (s *postService) GetPost(ctx context.Context, actorID, postID string) (*PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	blog, err := s.blogRepo.GetByID(ctx, post.BlogID)
	if err != nil {
		return nil, err
	}

	if err := access.CanReadPost(actorID, post); err != nil {
		return nil, err
	}

	detail := &PostDetail{Post: *post, Blog: blog}

	if post.CategoryID != nil {
		// Legacy single-category column; best effort.
		if category, err := s.categoryRepo.GetByID(ctx, *post.CategoryID); err == nil {
			detail.Category = category
		}
	}

	if categories, err := s.postRepo.GetCategories(ctx, postID); err == nil {
		detail.Categories = categories
	}

	if profile, err := s.profileRepo.GetByID(ctx, blog.UserID); err == nil {
		detail.Profile = profile
	}

	return detail, nil
}

func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if req.BlogID == "" || strings.TrimSpace(req.Title) == "" {
		return nil, apperr.ErrMissingFields
	}

	// Ownership goes against the blog's current owner, looked up fresh.
	blog, err := s.blogRepo.GetByID(ctx, req.BlogID)
	if err != nil {
		return nil, err
	}

	if err := access.CanWriteBlog(req.UserID, blog); err != nil {
		return nil, err
	}

	isPrivate := false
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	thumbnail := req.ThumbnailURL
	if thumbnail == nil {
		thumbnail = extractFirstImageURL(req.Content)
	}

	post := &models.Post{
		BlogID:       req.BlogID,
		UserID:       req.UserID,
		Title:        strings.TrimSpace(req.Title),
		Content:      req.Content,
		ThumbnailURL: thumbnail,
		IsPrivate:    isPrivate,
		Published:    true,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	if len(req.CategoryIDs) > 0 {
		categoryIDs := req.CategoryIDs
		if len(categoryIDs) > maxPostCategories {
			categoryIDs = categoryIDs[:maxPostCategories]
		}
		if err := s.postRepo.ReplaceCategories(ctx, post.ID, categoryIDs); err != nil {
			return nil, err
		}
	}

	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	blog, err := s.blogRepo.GetByID(ctx, post.BlogID)
	if err != nil {
		return nil, err
	}

	if err := access.CanWriteBlog(req.UserID, blog); err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		post.Content = *req.Content
		// New content means a new thumbnail unless one is sent explicitly.
		post.ThumbnailURL = extractFirstImageURL(*req.Content)
	}
	if req.ThumbnailURL != nil {
		post.ThumbnailURL = req.ThumbnailURL
	}
	if req.IsPrivate != nil {
		post.IsPrivate = *req.IsPrivate
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	if req.CategoryIDs != nil {
		categoryIDs := req.CategoryIDs
		if len(categoryIDs) > maxPostCategories {
			categoryIDs = categoryIDs[:maxPostCategories]
		}
		if err := s.postRepo.ReplaceCategories(ctx, post.ID, categoryIDs); err != nil {
			return nil, err
		}
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, actorID, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	blog, err := s.blogRepo.GetByID(ctx, post.BlogID)
	if err != nil {
		return err
	}

	if err := access.CanWriteBlog(actorID, blog); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, postID)
}
