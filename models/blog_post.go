package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type BlogPost struct {
	ID            uint64         `gorm:"column:id;primary_key" json:"id"`
	UserID        int64          `gorm:"column:user_id;not null;index:idx_userid_status" json:"user_id"`
	Title         string         `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Content       string         `gorm:"column:content;type:text" json:"content"`
	Excerpt       string         `gorm:"column:excerpt;type:varchar(500);not null;default:''" json:"excerpt"`
	FeaturedImage string         `gorm:"column:featured_image;type:varchar(255);not null;default:''" json:"featured_image"`
	Tags          datatypes.JSON `gorm:"column:tags;type:json" json:"tags"`
	Status        string         `gorm:"column:status;type:varchar(16);not null;default:'draft';index:idx_userid_status" json:"status"`
	CreatedAt     time.Time      `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// IsPublished 是否已发布
func (p *BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}
