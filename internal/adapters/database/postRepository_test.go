package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/core/post"
	postPort "yatube/internal/ports/post"
)

func TestPostRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPostRepositoryDatabase(db)
	author := mustUser(t, db, "leo")
	g := mustGroup(t, db, "cats")

	for i := 0; i < 15; i++ {
		mustPost(t, db, author, g, fmt.Sprintf("post %02d", i), time.Duration(i)*time.Minute)
	}

	n, err := repo.Count(ctx, postPort.Filter{GroupID: g.ID.String()})
	require.NoError(t, err)
	assert.EqualValues(t, 15, n)

	first, err := repo.List(ctx, postPort.Filter{GroupID: g.ID.String()}, 0, 10)
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, "post 14", first[0].Text)
	assert.Equal(t, "leo", first[0].Author.Username)
	require.NotNil(t, first[0].Group)
	assert.Equal(t, "cats", first[0].Group.Slug)

	second, err := repo.List(ctx, postPort.Filter{GroupID: g.ID.String()}, 10, 10)
	require.NoError(t, err)
	require.Len(t, second, 5)
	assert.Equal(t, "post 00", second[4].Text)
}

func TestPostRepository_Filters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPostRepositoryDatabase(db)
	follows := NewFollowerRepositoryDatabase(db)

	reader := mustUser(t, db, "reader")
	followed := mustUser(t, db, "followed")
	stranger := mustUser(t, db, "stranger")
	g := mustGroup(t, db, "news")

	mustPost(t, db, followed, g, "in group", time.Minute)
	mustPost(t, db, followed, nil, "no group", 2*time.Minute)
	mustPost(t, db, stranger, nil, "stranger", 3*time.Minute)

	_, err := follows.FollowUser(ctx, newFollow(reader, followed))
	require.NoError(t, err)

	feed, err := repo.List(ctx, postPort.Filter{FollowerID: reader.ID.String()}, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, p := range feed {
		assert.Equal(t, followed.ID, p.AuthorID)
	}

	n, err := repo.Count(ctx, postPort.Filter{FollowerID: stranger.ID.String()})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Count(ctx, postPort.Filter{AuthorID: stranger.ID.String()})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Count(ctx, postPort.Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestPostRepository_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPostRepositoryDatabase(db)
	author := mustUser(t, db, "leo")
	g := mustGroup(t, db, "cats")
	p := mustPost(t, db, author, g, "before", 0)

	p.Text = "after"
	p.GroupID = nil
	p.Image = "posts/a.gif"
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.FindByID(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	assert.Nil(t, got.GroupID)
	assert.Nil(t, got.Group)
	assert.Equal(t, "posts/a.gif", got.Image)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
}

func TestPostRepository_FindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := NewPostRepositoryDatabase(db).FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, post.ErrNotFound)
}

func TestPostRepository_EqualTimestampsPageStably(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPostRepositoryDatabase(db)
	author := mustUser(t, db, "leo")

	for i := 0; i < 4; i++ {
		mustPost(t, db, author, nil, fmt.Sprintf("same second %d", i), 0)
	}

	seen := map[string]bool{}
	for offset := 0; offset < 4; offset += 2 {
		page, err := repo.List(ctx, postPort.Filter{}, offset, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		for _, p := range page {
			assert.False(t, seen[p.ID.String()], "post %s on two pages", p.ID)
			seen[p.ID.String()] = true
		}
	}
	assert.Len(t, seen, 4)
}
