package groupapp

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/config"
	groupEntity "yatube/internal/core/group"
	groupPort "yatube/internal/ports/group"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

var ErrInvalidGroup = errors.New("group needs a title and a slug of letters, digits, '-' or '_'")

type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	title, slug = strings.TrimSpace(title), strings.TrimSpace(slug)
	if title == "" || len(title) > 200 || len(slug) > 100 || !slugPattern.MatchString(slug) {
		return nil, ErrInvalidGroup
	}

	g := &groupEntity.Group{
		ID:    uuid.Must(uuid.NewV4()),
		Title: title,
		Slug:  slug,
	}
	if d := strings.TrimSpace(description); d != "" {
		g.Description = &d
	}

	created, err := s.GroupRepository.Create(ctx, g)
	if err != nil {
		return nil, err
	}
	config.Logger.Info("Group created", zap.String("slug", slug))
	return groupPort.ToDTO(created), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return groupPort.ToDTO(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, groupPort.ToDTO(g))
	}
	return dtos, nil
}

// DeleteGroup removes the group; its posts stay with no group.
func (s *GroupService) DeleteGroup(ctx context.Context, slug string) error {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.GroupRepository.Delete(ctx, g.ID.String()); err != nil {
		return fmt.Errorf("delete group %s: %w", slug, err)
	}
	config.Logger.Info("Group deleted", zap.String("slug", slug))
	return nil
}
