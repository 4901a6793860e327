package groupapp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/config"
	groupEntity "yatube/internal/core/group"
)

func newService(t *testing.T) *GroupService {
	t.Helper()
	db, err := config.OpenDB(config.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "groups.db")+"?_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return NewGroupService(dbadapter.NewGroupRepositoryDatabase(db))
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	g, err := svc.CreateGroup(ctx, "Cats", "cats", "All about cats")
	require.NoError(t, err)
	assert.Equal(t, "All about cats", g.Description)

	_, err = svc.CreateGroup(ctx, "More cats", "cats", "")
	require.ErrorIs(t, err, groupEntity.ErrSlugTaken)

	for _, slug := range []string{"", "has space", "slash/slug"} {
		_, err = svc.CreateGroup(ctx, "Title", slug, "")
		require.ErrorIs(t, err, ErrInvalidGroup, slug)
	}

	groups, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

func TestDeleteGroup(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, err := svc.CreateGroup(ctx, "Cats", "cats", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroup(ctx, "cats"))
	_, err = svc.GetBySlug(ctx, "cats")
	require.ErrorIs(t, err, groupEntity.ErrNotFound)
}
