package commentapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/config"
	commentEntity "yatube/internal/core/comment"
	postEntity "yatube/internal/core/post"
	commentPort "yatube/internal/ports/comment"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

// AddComment attaches a comment by authorID to an existing post. A missing
// post is reported before the text is checked.
func (s *CommentService) AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error) {
	pid, err := uuid.FromString(postID)
	if err != nil {
		return nil, postEntity.ErrNotFound
	}
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, commentEntity.ErrEmptyText
	}
	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid authorID: %w", err)
	}

	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		AuthorID: aid,
		PostID:   pid,
	}
	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	config.Logger.Info("Comment added", zap.String("postID", postID), zap.String("authorID", authorID))

	return &commentPort.CommentDTO{
		ID:        created.ID.String(),
		Text:      created.Text,
		CreatedAt: created.CreatedAt,
	}, nil
}

// ListComments returns the comments of a post, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, &commentPort.CommentDTO{
			ID:        c.ID.String(),
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			Author:    userPort.ToDTO(&c.Author),
		})
	}
	return dtos, nil
}
