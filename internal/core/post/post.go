package post

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid"

	"yatube/internal/core/group"
	"yatube/internal/core/user"
)

// PreviewChars is how many runes of the text String keeps.
const PreviewChars = 15

var (
	ErrNotFound  = errors.New("post not found")
	ErrEmptyText = errors.New("post text is empty")
	ErrNotAuthor = errors.New("only the author can edit the post")
)

type Post struct {
	ID        uuid.UUID    `gorm:"primaryKey;type:char(36)"`
	Text      string       `gorm:"type:text;not null"`
	CreatedAt time.Time    `gorm:"autoCreateTime;precision:6;index"`
	Image     string       `gorm:"type:varchar(255)"`
	AuthorID  uuid.UUID    `gorm:"type:char(36);not null;index"`
	Author    user.User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID   *uuid.UUID   `gorm:"type:char(36);index"`
	Group     *group.Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}

func (p *Post) String() string {
	if utf8.RuneCountInString(p.Text) <= PreviewChars {
		return p.Text + "..."
	}
	return string([]rune(p.Text)[:PreviewChars]) + "..."
}
