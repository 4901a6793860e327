package comment

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"

	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

var ErrEmptyText = errors.New("comment text is empty")

type Comment struct {
	ID        uuid.UUID `gorm:"primaryKey;type:char(36)"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;precision:6;index"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;index"`
	Author    user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Post      post.Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
