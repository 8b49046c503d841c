package dao

import (
	"Inkwell/models"
	"context"

	"gorm.io/gorm"
)

type BlogPostDAO struct {
	Repo[models.BlogPost]
}

func NewBlogPostDAO(db *gorm.DB) *BlogPostDAO {
	return &BlogPostDAO{Repo: NewRepo[models.BlogPost](db)}
}

// GetPublished 查询已发布文章，草稿对外不可见
func (d *BlogPostDAO) GetPublished(ctx context.Context, postID uint64) (*models.BlogPost, error) {
	return d.Repo.FindByWhere(ctx, "id = ? AND status = ?", postID, models.PostStatusPublished)
}

// IsPublished 文章是否存在且已发布
func (d *BlogPostDAO) IsPublished(ctx context.Context, postID uint64) (bool, error) {
	return d.Repo.IsExist(ctx, "id = ? AND status = ?", postID, models.PostStatusPublished)
}

// ListPublished 已发布文章列表(按时间倒序)
func (d *BlogPostDAO) ListPublished(ctx context.Context, offset, limit int) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := d.Db.WithContext(ctx).
		Where("status = ?", models.PostStatusPublished).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountPublished 已发布文章总数
func (d *BlogPostDAO) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("status = ?", models.PostStatusPublished).
		Count(&count).Error
	return count, err
}

// Search 关键词匹配标题和正文，只搜已发布文章(按时间倒序)
func (d *BlogPostDAO) Search(ctx context.Context, keyword string, offset, limit int) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	like := "%" + keyword + "%"
	err := d.Db.WithContext(ctx).
		Where("(title LIKE ? OR content LIKE ?) AND status = ?", like, like, models.PostStatusPublished).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// SearchCount 关键词命中总数
func (d *BlogPostDAO) SearchCount(ctx context.Context, keyword string) (int64, error) {
	var count int64
	like := "%" + keyword + "%"
	err := d.Db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("(title LIKE ? OR content LIKE ?) AND status = ?", like, like, models.PostStatusPublished).
		Count(&count).Error
	return count, err
}
