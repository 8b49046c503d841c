package dao

import (
	"Inkwell/models"
	"context"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

// CommentOwnership 评论连同其所属文章作者，一次查询取回用于鉴权
type CommentOwnership struct {
	ID           uint64 `gorm:"column:id"`
	BlogPostID   uint64 `gorm:"column:blog_post_id"`
	UserID       int64  `gorm:"column:user_id"`        // 评论作者
	PostAuthorID int64  `gorm:"column:post_author_id"` // 文章作者
}

// GetOwnership 查询评论及其文章作者
func (d *CommentDAO) GetOwnership(ctx context.Context, commentID uint64) (*CommentOwnership, error) {
	var row CommentOwnership
	err := d.Db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.blog_post_id, comments.user_id, blog_posts.user_id AS post_author_id").
		Joins("JOIN blog_posts ON blog_posts.id = comments.blog_post_id").
		Where("comments.id = ?", commentID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByPost 获取文章的评论列表(按时间倒序)
func (d *CommentDAO) ListByPost(ctx context.Context, postID uint64, offset, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("blog_post_id = ?", postID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// CountByPost 获取文章的评论总数
func (d *CommentDAO) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("blog_post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// Delete 删除评论
func (d *CommentDAO) Delete(ctx context.Context, commentID uint64) error {
	return d.Db.WithContext(ctx).
		Delete(&models.Comment{}, "id = ?", commentID).Error
}
