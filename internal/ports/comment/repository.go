package comment

import (
	"context"
	"time"

	"yatube/internal/core/comment"
	userPort "yatube/internal/ports/user"
)

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	ListByPostID(ctx context.Context, postID string) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID        string
	Text      string
	CreatedAt time.Time
	Author    *userPort.UserDTO
}
