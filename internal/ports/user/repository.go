package user

import (
	"context"
	"time"

	"yatube/internal/core/user"
)

// UserRepository stores and loads users.
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	Delete(ctx context.Context, id string) error
}

type LoginResponse struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

type UserDTO struct {
	ID        string
	Username  string
	FullName  string
	FirstName string
	LastName  string
	Email     string
}

func ToDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		FullName:  u.FullName(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
