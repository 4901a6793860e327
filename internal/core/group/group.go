package group

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
)

var (
	ErrNotFound  = errors.New("group not found")
	ErrSlugTaken = errors.New("group slug already taken")
)

type Group struct {
	ID          uuid.UUID `gorm:"primaryKey;type:char(36)"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
