package followerapp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/config"
	userEntity "yatube/internal/core/user"
)

func newService(t *testing.T) (*FollowerService, string, string) {
	t.Helper()
	ctx := context.Background()
	db, err := config.OpenDB(config.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "follow.db")+"?_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	users := dbadapter.NewUserRepositoryDatabase(db)
	reader, err := users.Create(ctx, &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "reader", Password: "x"})
	require.NoError(t, err)
	author, err := users.Create(ctx, &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "author", Password: "x"})
	require.NoError(t, err)

	return NewFollowerService(dbadapter.NewFollowerRepositoryDatabase(db)), reader.ID.String(), author.ID.String()
}

func TestFollowUser_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, reader, author := newService(t)

	require.NoError(t, svc.FollowUser(ctx, reader, author))
	require.NoError(t, svc.FollowUser(ctx, reader, author))

	followers, err := svc.CountFollowers(ctx, author)
	require.NoError(t, err)
	assert.EqualValues(t, 1, followers)
	following, err := svc.CountFollowing(ctx, reader)
	require.NoError(t, err)
	assert.EqualValues(t, 1, following)
}

func TestFollowUser_SelfIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, reader, _ := newService(t)

	require.NoError(t, svc.FollowUser(ctx, reader, reader))
	following, err := svc.CountFollowing(ctx, reader)
	require.NoError(t, err)
	assert.Zero(t, following)
}

func TestUnfollowUser(t *testing.T) {
	ctx := context.Background()
	svc, reader, author := newService(t)

	require.NoError(t, svc.UnfollowUser(ctx, reader, author))
	require.NoError(t, svc.FollowUser(ctx, reader, author))
	require.NoError(t, svc.UnfollowUser(ctx, reader, author))

	ok, err := svc.IsFollowing(ctx, reader, author)
	require.NoError(t, err)
	assert.False(t, ok)
}
