package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"yatube/internal/config"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := config.OpenDB(config.DriverSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustUser(t *testing.T, db *gorm.DB, username string) *user.User {
	t.Helper()
	u, err := NewUserRepositoryDatabase(db).Create(context.Background(), &user.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: username,
		Password: "x",
	})
	require.NoError(t, err)
	return u
}

func mustGroup(t *testing.T, db *gorm.DB, slug string) *group.Group {
	t.Helper()
	g, err := NewGroupRepositoryDatabase(db).Create(context.Background(), &group.Group{
		ID:    uuid.Must(uuid.NewV4()),
		Title: "Group " + slug,
		Slug:  slug,
	})
	require.NoError(t, err)
	return g
}

// mustPost creates a post whose created_at is base+offset so feed order is
// deterministic.
func mustPost(t *testing.T, db *gorm.DB, author *user.User, g *group.Group, text string, offset time.Duration) *post.Post {
	t.Helper()
	p := &post.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Text:      text,
		AuthorID:  author.ID,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Add(offset),
	}
	if g != nil {
		p.GroupID = &g.ID
	}
	created, err := NewPostRepositoryDatabase(db).Create(context.Background(), p)
	require.NoError(t, err)
	return created
}
