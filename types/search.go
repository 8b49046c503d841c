package types

import "time"

// SearchRequest 搜索请求参数
type SearchRequest struct {
	Q    string `form:"q"`
	Page int    `form:"page,default=1"`
}

// SearchItem 命中的文章，标题和摘要已做关键词高亮
type SearchItem struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchResponse 搜索结果页
type SearchResponse struct {
	Query      string        `json:"query"`
	Items      []*SearchItem `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}
