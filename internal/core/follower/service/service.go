package followerapp

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/config"
	followerEntity "yatube/internal/core/follower"
	followerPort "yatube/internal/ports/follower"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
}

func NewFollowerService(repo followerPort.FollowerRepository) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
	}
}

// FollowUser subscribes userID to authorID. Following yourself or an
// author you already follow does nothing.
func (s *FollowerService) FollowUser(ctx context.Context, userID, authorID string) error {
	if userID == authorID {
		config.Logger.Debug("Cannot follow yourself", zap.String("userID", userID))
		return nil
	}

	following, err := s.IsFollowing(ctx, userID, authorID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	f := &followerEntity.Follow{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   uuid.FromStringOrNil(userID),
		AuthorID: uuid.FromStringOrNil(authorID),
	}

	_, err = s.FollowerRepository.FollowUser(ctx, f)
	if errors.Is(err, followerPort.ErrAlreadyFollowing) {
		// lost a race with a concurrent follow of the same pair
		return nil
	}
	if err != nil {
		return err
	}
	config.Logger.Info("User followed", zap.String("userID", userID), zap.String("authorID", authorID))
	return nil
}

// UnfollowUser removes the subscription if there is one.
func (s *FollowerService) UnfollowUser(ctx context.Context, userID, authorID string) error {
	if userID == authorID {
		return nil
	}
	return s.FollowerRepository.UnfollowUser(ctx, userID, authorID)
}

func (s *FollowerService) CountFollowers(ctx context.Context, authorID string) (int64, error) {
	return s.FollowerRepository.CountFollowers(ctx, authorID)
}

func (s *FollowerService) CountFollowing(ctx context.Context, userID string) (int64, error) {
	return s.FollowerRepository.CountFollowing(ctx, userID)
}

func (s *FollowerService) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	return s.FollowerRepository.IsFollowing(ctx, userID, authorID)
}
