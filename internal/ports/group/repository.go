package group

import (
	"context"

	"yatube/internal/core/group"
)

type GroupRepository interface {
	Create(ctx context.Context, g *group.Group) (*group.Group, error)
	FindByID(ctx context.Context, id string) (*group.Group, error)
	FindBySlug(ctx context.Context, slug string) (*group.Group, error)
	List(ctx context.Context) ([]*group.Group, error)
	// Delete removes the group and detaches its posts.
	Delete(ctx context.Context, id string) error
}

type GroupDTO struct {
	ID          string
	Title       string
	Slug        string
	Description string
}

func ToDTO(g *group.Group) *GroupDTO {
	if g == nil {
		return nil
	}
	dto := &GroupDTO{ID: g.ID.String(), Title: g.Title, Slug: g.Slug}
	if g.Description != nil {
		dto.Description = *g.Description
	}
	return dto
}
