package follower

import (
	"context"
	"errors"

	"yatube/internal/core/follower"
)

var ErrAlreadyFollowing = errors.New("already following this author")

// FollowerRepository stores subscriptions between users.
type FollowerRepository interface {
	FollowUser(ctx context.Context, f *follower.Follow) (*follower.Follow, error)
	UnfollowUser(ctx context.Context, userID, authorID string) error
	CountFollowers(ctx context.Context, authorID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
}
