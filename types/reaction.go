package types

// ToggleReactionRequest 切换表态(表单提交)
type ToggleReactionRequest struct {
	BlogPostID   uint64 `form:"blog_post_id" binding:"required"`
	ReactionType string `form:"reaction_type" binding:"required"`
	CSRFToken    string `form:"csrf_token"`
}

// RemoveReactionRequest 取消表态(表单提交)
type RemoveReactionRequest struct {
	BlogPostID uint64 `form:"blog_post_id" binding:"required"`
	CSRFToken  string `form:"csrf_token"`
}

// ReactionActionResponse 表态操作结果
// action: added | updated | removed
type ReactionActionResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
}

// ReactionCountsResponse 表态统计
// user_reaction 为 null 表示当前用户(或匿名访客)没有表态
type ReactionCountsResponse struct {
	Success      bool             `json:"success"`
	Reactions    map[string]int64 `json:"reactions"`
	UserReaction *string          `json:"user_reaction"`
}
