package models

import "time"

// Reaction 表态记录
// 对应表 reactions
// 唯一键: blog_post_id + user_id，每个用户对每篇文章至多一条
type Reaction struct {
	ID           uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	BlogPostID   uint64    `gorm:"column:blog_post_id;not null;uniqueIndex:uk_post_user,priority:1" json:"blog_post_id"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex:uk_post_user,priority:2" json:"user_id"`
	ReactionType string    `gorm:"column:reaction_type;type:varchar(16);not null" json:"reaction_type"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Reaction) TableName() string { return "reactions" }

// 表态类型固定枚举
const (
	ReactionLike  = "like"
	ReactionLove  = "love"
	ReactionLaugh = "laugh"
	ReactionWow   = "wow"
	ReactionSad   = "sad"
	ReactionAngry = "angry"
)

var ValidReactionTypes = map[string]struct{}{
	ReactionLike:  {},
	ReactionLove:  {},
	ReactionLaugh: {},
	ReactionWow:   {},
	ReactionSad:   {},
	ReactionAngry: {},
}

// IsValidReactionType 校验表态类型
func IsValidReactionType(t string) bool {
	_, ok := ValidReactionTypes[t]
	return ok
}
