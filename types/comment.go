package types

import "time"

// AddCommentRequest 发表评论(表单提交)
type AddCommentRequest struct {
	BlogPostID uint64 `form:"blog_post_id" binding:"required"`
	Comment    string `form:"comment"`
	CSRFToken  string `form:"csrf_token"`
}

// DeleteCommentRequest 删除评论(表单提交)
type DeleteCommentRequest struct {
	CommentID  uint64 `form:"comment_id" binding:"required"`
	BlogPostID uint64 `form:"post_id" binding:"required"` // 用于回跳文章页
	CSRFToken  string `form:"csrf_token"`
}

// CommentResponse 评论信息
type CommentResponse struct {
	ID         uint64    `json:"id"`
	BlogPostID uint64    `json:"blog_post_id"`
	UserID     int64     `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentListResponse 评论列表(页码分页)
type CommentListResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}
