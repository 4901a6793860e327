package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatube/internal/core/follower"
	"yatube/internal/core/post"
	postPort "yatube/internal/ports/post"
)

// PostRepositoryDatabase implements PostRepository on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	var groupID any
	if p.GroupID != nil {
		groupID = p.GroupID.String()
	}
	return repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"text":     p.Text,
			"group_id": groupID,
			"image":    p.Image,
		}).Error
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err, post.ErrNotFound)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, f postPort.Filter) (int64, error) {
	var n int64
	if err := repo.scope(ctx, f).Model(&post.Post{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, f postPort.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.scope(ctx, f).
		Preload("Author").
		Preload("Group").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) scope(ctx context.Context, f postPort.Filter) *gorm.DB {
	q := repo.db.WithContext(ctx)
	if f.GroupID != "" {
		q = q.Where("group_id = ?", f.GroupID)
	}
	if f.AuthorID != "" {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.FollowerID != "" {
		authors := repo.db.WithContext(ctx).
			Model(&follower.Follow{}).
			Select("author_id").
			Where("user_id = ?", f.FollowerID)
		q = q.Where("author_id IN (?)", authors)
	}
	return q
}
