package types

import (
	"time"

	"gorm.io/datatypes"
)

// PostItem 文章列表项
type PostItem struct {
	ID            uint64         `json:"id"`
	Title         string         `json:"title"`
	Excerpt       string         `json:"excerpt"`
	FeaturedImage string         `json:"featured_image"`
	Tags          datatypes.JSON `json:"tags"`
	UserID        int64          `json:"user_id"`
	CreatedAt     time.Time      `json:"created_at"`
}

// PostListResponse 文章列表(页码分页)
type PostListResponse struct {
	Posts      []*PostItem `json:"posts"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
}

// PostDetailResponse 文章详情页数据
type PostDetailResponse struct {
	ID            uint64             `json:"id"`
	Title         string             `json:"title"`
	Content       string             `json:"content"`
	FeaturedImage string             `json:"featured_image"`
	Tags          datatypes.JSON     `json:"tags"`
	UserID        int64              `json:"user_id"`
	CreatedAt     time.Time          `json:"created_at"`
	Reactions     map[string]int64   `json:"reactions"`
	UserReaction  *string            `json:"user_reaction"`
	CommentTotal  int64              `json:"comment_total"`
	Comments      []*CommentResponse `json:"comments"`
	Flashes       []FlashMessage     `json:"flashes,omitempty"`
}

// FlashMessage 重定向后展示的一次性提示
type FlashMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
