package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatube/internal/core/follower"
	followerPort "yatube/internal/ports/follower"
)

// FollowerRepositoryDatabase implements FollowerRepository on gorm.
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

func (repo *FollowerRepositoryDatabase) FollowUser(ctx context.Context, f *follower.Follow) (*follower.Follow, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(f).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, followerPort.ErrAlreadyFollowing
		}
		return nil, err
	}
	return f, nil
}

func (repo *FollowerRepositoryDatabase) UnfollowUser(ctx context.Context, userID, authorID string) error {
	return repo.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follower.Follow{}).Error
}

// CountFollowers counts the subscribers of authorID.
func (repo *FollowerRepositoryDatabase) CountFollowers(ctx context.Context, authorID string) (int64, error) {
	return repo.count(ctx, "author_id = ?", authorID)
}

// CountFollowing counts the authors userID is subscribed to.
func (repo *FollowerRepositoryDatabase) CountFollowing(ctx context.Context, userID string) (int64, error) {
	return repo.count(ctx, "user_id = ?", userID)
}

func (repo *FollowerRepositoryDatabase) count(ctx context.Context, cond string, args ...any) (int64, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&follower.Follow{}).Where(cond, args...).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&follower.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
