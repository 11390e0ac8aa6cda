package service

import (
	"context"
	"strings"
	"time"

	"github.com/Sky-Wdh/Snuggle/internal/access"
	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/models"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
)

type CreateBlogRequest struct {
	UserID       string
	Name         string
	Description  *string
	ThumbnailURL *string
}

// BlogService owns the blog half of the soft-delete state machine. All
// transitions are gated on the owning account; neither direction
// cascades to posts.
type BlogService interface {
	CreateBlog(ctx context.Context, req CreateBlogRequest) (*models.Blog, error)
	GetBlog(ctx context.Context, blogID string) (*models.Blog, error)
	GetUserBlogs(ctx context.Context, userID string) ([]models.Blog, error)
	GetTrash(ctx context.Context, userID string) ([]models.Blog, error)
	DeleteBlog(ctx context.Context, actorID, blogID string) error
	RestoreBlog(ctx context.Context, actorID, blogID string) (*models.Blog, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) CreateBlog(ctx context.Context, req CreateBlogRequest) (*models.Blog, error) {
	name := strings.TrimSpace(req.Name)
	if req.UserID == "" || name == "" {
		return nil, apperr.ErrMissingFields
	}

	blog := &models.Blog{
		UserID:       req.UserID,
		Name:         name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *blogService) GetBlog(ctx context.Context, blogID string) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, blogID)
}

func (s *blogService) GetUserBlogs(ctx context.Context, userID string) ([]models.Blog, error) {
	return s.blogRepo.GetByUserID(ctx, userID)
}

func (s *blogService) GetTrash(ctx context.Context, userID string) ([]models.Blog, error) {
	return s.blogRepo.GetTrashByUserID(ctx, userID)
}

func (s *blogService) DeleteBlog(ctx context.Context, actorID, blogID string) error {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}

	if err := access.CanWriteBlog(actorID, blog); err != nil {
		return err
	}

	if blog.DeletedAt != nil {
		return apperr.ErrAlreadyDeleted
	}

	return s.blogRepo.MarkDeleted(ctx, blogID, time.Now())
}

func (s *blogService) RestoreBlog(ctx context.Context, actorID, blogID string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if err := access.CanWriteBlog(actorID, blog); err != nil {
		return nil, err
	}

	if blog.DeletedAt == nil {
		return nil, apperr.ErrNotDeleted
	}

	if err := s.blogRepo.ClearDeleted(ctx, blogID); err != nil {
		return nil, err
	}

	return s.blogRepo.GetByID(ctx, blogID)
}
