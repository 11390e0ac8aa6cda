package service

import (
	"context"
	"strings"

	"github.com/Sky-Wdh/Snuggle/internal/access"
	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/models"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
)

type CreateForumRequest struct {
	UserID      string
	BlogID      *string
	Title       string
	Description string
	Category    string
}

type CreateCommentRequest struct {
	UserID  string
	ForumID string
	Content string
}

type ForumService interface {
	List(ctx context.Context, params repository.ForumListParams) ([]models.ForumListItem, error)
	Get(ctx context.Context, forumID string) (*models.ForumListItem, error)
	Create(ctx context.Context, req CreateForumRequest) (*models.Forum, error)
	Delete(ctx context.Context, actorID, forumID string) error
	ListComments(ctx context.Context, forumID string) ([]models.ForumComment, error)
	AddComment(ctx context.Context, req CreateCommentRequest) (*models.ForumComment, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
}

type forumService struct {
	forumRepo repository.ForumRepository
}

func NewForumService(forumRepo repository.ForumRepository) ForumService {
	return &forumService{forumRepo: forumRepo}
}

func attachForumBlogSummary(items []models.ForumListItem) []models.ForumListItem {
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

func (s *forumService) List(ctx context.Context, params repository.ForumListParams) ([]models.ForumListItem, error) {
	forums, err := s.forumRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return attachForumBlogSummary(forums), nil
}

func (s *forumService) Get(ctx context.Context, forumID string) (*models.ForumListItem, error) {
	forum, err := s.forumRepo.GetByID(ctx, forumID)
	if err != nil {
		return nil, err
	}

	if forum.BlogName != nil {
		forum.Blog = &models.BlogSummary{
			Name:         *forum.BlogName,
			ThumbnailURL: forum.BlogThumbnailURL,
		}
	}

	return forum, nil
}

// Create stores the category as a "[category] " title prefix; the
// listing filter matches on the same prefix.
func (s *forumService) Create(ctx context.Context, req CreateForumRequest) (*models.Forum, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperr.ErrMissingFields
	}

	if req.Category != "" {
		title = "[" + req.Category + "] " + title
	}

	forum := &models.Forum{
		UserID:      req.UserID,
		BlogID:      req.BlogID,
		Title:       title,
		Description: req.Description,
	}

	if err := s.forumRepo.Create(ctx, forum); err != nil {
		return nil, err
	}

	return forum, nil
}

func (s *forumService) Delete(ctx context.Context, actorID, forumID string) error {
	forum, err := s.forumRepo.GetByID(ctx, forumID)
	if err != nil {
		return err
	}

	if err := access.CanWriteForum(actorID, &forum.Forum); err != nil {
		return err
	}

	return s.forumRepo.Delete(ctx, forumID)
}

func (s *forumService) ListComments(ctx context.Context, forumID string) ([]models.ForumComment, error) {
	if _, err := s.forumRepo.GetByID(ctx, forumID); err != nil {
		return nil, err
	}

	return s.forumRepo.ListComments(ctx, forumID)
}

func (s *forumService) AddComment(ctx context.Context, req CreateCommentRequest) (*models.ForumComment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperr.ErrMissingFields
	}

	if _, err := s.forumRepo.GetByID(ctx, req.ForumID); err != nil {
		return nil, err
	}

	comment := &models.ForumComment{
		ForumID: req.ForumID,
		UserID:  req.UserID,
		Content: req.Content,
	}

	if err := s.forumRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *forumService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	comment, err := s.forumRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := access.CanWriteComment(actorID, comment); err != nil {
		return err
	}

	return s.forumRepo.DeleteComment(ctx, commentID)
}
