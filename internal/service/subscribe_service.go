package service

import (
	"context"

	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
)

type SubscriptionCounts struct {
	Following int `json:"following"`
	Followers int `json:"followers"`
}

type SubscribeService interface {
	Toggle(ctx context.Context, subID, targetID string) (bool, error)
	Check(ctx context.Context, subID, targetID string) (bool, error)
	Counts(ctx context.Context, userID string) (*SubscriptionCounts, error)
}

type subscribeService struct {
	subscribeRepo repository.SubscribeRepository
}

func NewSubscribeService(subscribeRepo repository.SubscribeRepository) SubscribeService {
	return &subscribeService{subscribeRepo: subscribeRepo}
}

// Toggle flips the directed (sub, subed) pair and reports the new
// state. Self-subscription is not rejected here.
func (s *subscribeService) Toggle(ctx context.Context, subID, targetID string) (bool, error) {
	if targetID == "" {
		return false, apperr.ErrMissingFields
	}

	exists, err := s.subscribeRepo.Exists(ctx, subID, targetID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.subscribeRepo.Delete(ctx, subID, targetID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.subscribeRepo.Create(ctx, subID, targetID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *subscribeService) Check(ctx context.Context, subID, targetID string) (bool, error) {
	return s.subscribeRepo.Exists(ctx, subID, targetID)
}

func (s *subscribeService) Counts(ctx context.Context, userID string) (*SubscriptionCounts, error) {
	following, err := s.subscribeRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.subscribeRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &SubscriptionCounts{Following: following, Followers: followers}, nil
}
