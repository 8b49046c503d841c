package models

import "time"

// Comment 评论表结构
type Comment struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`                              // 评论唯一ID
	BlogPostID uint64    `gorm:"column:blog_post_id;not null;index:idx_post_id" json:"blog_post_id"` // 所属文章ID
	UserID     int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`    // 发布评论的用户ID
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`            // 评论正文
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`          // 创建时间
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`          // 更新时间
}

// TableName 指定 GORM 使用的表名
func (Comment) TableName() string {
	return "comments"
}
