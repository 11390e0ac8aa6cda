package service

import (
	"context"
	"log"
	"time"

	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/identity"
	"github.com/Sky-Wdh/Snuggle/internal/models"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
)

// ProfileService owns the account half of the soft-delete state
// machine: Active -> Deleted stamps deleted_at and cascades to the
// user's active blogs; Deleted -> Active clears the stamp and does NOT
// cascade back.
type ProfileService interface {
	SyncProfile(ctx context.Context, user *identity.User) (*models.Profile, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
	RestoreAccount(ctx context.Context, userID string) (*models.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	blogRepo    repository.BlogRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, blogRepo repository.BlogRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		blogRepo:    blogRepo,
	}
}

// SyncProfile copies the identity provider's display name and avatar
// into the profiles table.
func (s *profileService) SyncProfile(ctx context.Context, user *identity.User) (*models.Profile, error) {
	if user == nil || user.ID == "" {
		return nil, apperr.ErrUnauthenticated
	}

	profile := &models.Profile{ID: user.ID}

	if nickname := user.Nickname(); nickname != "" {
		profile.Nickname = &nickname
	}
	if imageURL := user.ImageURL(); imageURL != "" {
		profile.ProfileImageURL = &imageURL
	}

	return s.profileRepo.Upsert(ctx, profile)
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, userID)
}

// DeleteAccount soft-deletes the account and then, best effort, every
// active blog the user owns. A cascade failure is logged but does not
// undo the account deletion; any blogs it missed stay active until
// deleted again.
func (s *profileService) DeleteAccount(ctx context.Context, userID string) error {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if profile.DeletedAt != nil {
		return apperr.ErrAlreadyDeleted
	}

	now := time.Now()

	if err := s.profileRepo.MarkDeleted(ctx, userID, now); err != nil {
		return err
	}

	if err := s.blogRepo.MarkDeletedByUserID(ctx, userID, now); err != nil {
		log.Printf("Warning: failed to soft delete blogs for user %s: %v", userID, err)
	}

	return nil
}

// RestoreAccount clears the deletion stamp. Blogs cascaded by
// DeleteAccount stay in the trash until restored one by one.
func (s *profileService) RestoreAccount(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.DeletedAt == nil {
		return nil, apperr.ErrNotDeleted
	}

	if err := s.profileRepo.ClearDeleted(ctx, userID); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByID(ctx, userID)
}
