package database

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/core/follower"
	"yatube/internal/core/user"
	followerPort "yatube/internal/ports/follower"
)

func newFollow(u, author *user.User) *follower.Follow {
	return &follower.Follow{ID: uuid.Must(uuid.NewV4()), UserID: u.ID, AuthorID: author.ID}
}

func TestFollowerRepository_PairIsUnique(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewFollowerRepositoryDatabase(db)
	reader := mustUser(t, db, "reader")
	author := mustUser(t, db, "author")

	_, err := repo.FollowUser(ctx, newFollow(reader, author))
	require.NoError(t, err)

	_, err = repo.FollowUser(ctx, newFollow(reader, author))
	require.ErrorIs(t, err, followerPort.ErrAlreadyFollowing)

	// the reverse direction is a different pair
	_, err = repo.FollowUser(ctx, newFollow(author, reader))
	require.NoError(t, err)

	following, err := repo.IsFollowing(ctx, reader.ID.String(), author.ID.String())
	require.NoError(t, err)
	assert.True(t, following)

	followers, err := repo.CountFollowers(ctx, author.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, followers)

	followingCount, err := repo.CountFollowing(ctx, reader.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, followingCount)
}

func TestFollowerRepository_Unfollow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewFollowerRepositoryDatabase(db)
	reader := mustUser(t, db, "reader")
	author := mustUser(t, db, "author")

	require.NoError(t, repo.UnfollowUser(ctx, reader.ID.String(), author.ID.String()))

	_, err := repo.FollowUser(ctx, newFollow(reader, author))
	require.NoError(t, err)
	require.NoError(t, repo.UnfollowUser(ctx, reader.ID.String(), author.ID.String()))

	following, err := repo.IsFollowing(ctx, reader.ID.String(), author.ID.String())
	require.NoError(t, err)
	assert.False(t, following)
}
