package post

import (
	"context"
	"time"

	"yatube/internal/core/paginator"
	"yatube/internal/core/post"
	groupPort "yatube/internal/ports/group"
	userPort "yatube/internal/ports/user"
)

// Filter narrows a feed. Zero fields are ignored.
type Filter struct {
	GroupID    string
	AuthorID   string
	FollowerID string // posts of authors followed by this user
}

// PostRepository stores posts and serves newest-first feeds.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	// Update writes text, group and image only; created_at never changes.
	Update(ctx context.Context, post *post.Post) error
	FindByID(ctx context.Context, id string) (*post.Post, error)
	Count(ctx context.Context, f Filter) (int64, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]*post.Post, error)
}

type PostDTO struct {
	ID        string
	Text      string
	Preview   string
	Image     string
	CreatedAt time.Time
	AuthorID  string
	Author    *userPort.UserDTO
	Group     *groupPort.GroupDTO
}

func ToDTO(p *post.Post) *PostDTO {
	dto := &PostDTO{
		ID:        p.ID.String(),
		Text:      p.Text,
		Preview:   p.String(),
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		AuthorID:  p.AuthorID.String(),
		Author:    userPort.ToDTO(&p.Author),
		Group:     groupPort.ToDTO(p.Group),
	}
	return dto
}

// PostInput carries the bound post form.
type PostInput struct {
	Text       string
	GroupID    string
	Image      string // stored media name, empty keeps the current one
	ClearImage bool
}

// PostPage is one page of a feed.
type PostPage struct {
	Page  paginator.Page
	Posts []*PostDTO
}
