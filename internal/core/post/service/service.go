package postapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/config"
	groupEntity "yatube/internal/core/group"
	"yatube/internal/core/paginator"
	postEntity "yatube/internal/core/post"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
)

var ErrUnknownGroup = errors.New("selected group does not exist")

type PostService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	PerPage         int
}

func NewPostService(postRepo postPort.PostRepository, groupRepo groupPort.GroupRepository) *PostService {
	return &PostService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		PerPage:         paginator.PostsPerPage,
	}
}

// ValidText reports whether text has anything besides whitespace.
func ValidText(text string) bool {
	return strings.TrimSpace(text) != ""
}

// CreatePost stores a new post written by authorID.
func (s *PostService) CreatePost(ctx context.Context, authorID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	if !ValidText(in.Text) {
		return nil, postEntity.ErrEmptyText
	}

	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid authorID: %w", err)
	}

	groupID, err := s.resolveGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     in.Text,
		Image:    in.Image,
		AuthorID: aid,
		GroupID:  groupID,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	config.Logger.Info("Post created", zap.String("postID", created.ID.String()), zap.String("authorID", authorID))

	return s.GetPost(ctx, created.ID.String())
}

// UpdatePost rewrites text, group and image of a post owned by editorID.
func (s *PostService) UpdatePost(ctx context.Context, postID, editorID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	p, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID.String() != editorID {
		config.Logger.Warn("Edit attempt by non-author", zap.String("postID", postID), zap.String("userID", editorID))
		return nil, postEntity.ErrNotAuthor
	}
	if !ValidText(in.Text) {
		return nil, postEntity.ErrEmptyText
	}

	groupID, err := s.resolveGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	p.Text = in.Text
	p.GroupID = groupID
	switch {
	case in.Image != "":
		p.Image = in.Image
	case in.ClearImage:
		p.Image = ""
	}

	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	config.Logger.Info("Post updated", zap.String("postID", postID))

	return s.GetPost(ctx, postID)
}

func (s *PostService) GetPost(ctx context.Context, postID string) (*postPort.PostDTO, error) {
	p, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(p), nil
}

// ListPosts returns the requested page of the feed selected by f.
func (s *PostService) ListPosts(ctx context.Context, f postPort.Filter, rawPage string) (*postPort.PostPage, error) {
	count, err := s.PostRepository.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	page := paginator.New(count, rawPage, s.PerPage)

	posts, err := s.PostRepository.List(ctx, f, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postPort.ToDTO(p))
	}
	return &postPort.PostPage{Page: page, Posts: dtos}, nil
}

func (s *PostService) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	return s.PostRepository.Count(ctx, postPort.Filter{AuthorID: authorID})
}

func (s *PostService) findPost(ctx context.Context, postID string) (*postEntity.Post, error) {
	if _, err := uuid.FromString(postID); err != nil {
		return nil, postEntity.ErrNotFound
	}
	return s.PostRepository.FindByID(ctx, postID)
}

func (s *PostService) resolveGroup(ctx context.Context, groupID string) (*uuid.UUID, error) {
	if groupID == "" {
		return nil, nil
	}
	gid, err := uuid.FromString(groupID)
	if err != nil {
		return nil, ErrUnknownGroup
	}
	if _, err := s.GroupRepository.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, groupEntity.ErrNotFound) {
			return nil, ErrUnknownGroup
		}
		return nil, err
	}
	return &gid, nil
}
