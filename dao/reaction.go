package dao

import (
	"Inkwell/models"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Toggle 结果，标记本次发生的状态迁移
const (
	ReactionAdded   = "added"
	ReactionUpdated = "updated"
	ReactionRemoved = "removed"
)

// ErrDuplicateReaction 并发写触发 uk_post_user 唯一键冲突
var ErrDuplicateReaction = errors.New("reaction already exists")

type ReactionDAO struct {
	Repo[models.Reaction]
}

func NewReactionDAO(db *gorm.DB) *ReactionDAO {
	return &ReactionDAO{Repo: NewRepo[models.Reaction](db)}
}

// GetByPostUser 查询指定用户对指定文章的表态记录
func (d *ReactionDAO) GetByPostUser(ctx context.Context, postID uint64, userID int64) (*models.Reaction, error) {
	var item models.Reaction
	err := d.Db.WithContext(ctx).Where("blog_post_id = ? AND user_id = ?", postID, userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Toggle 在一个事务中完成 查询→新增/更新/删除，返回发生的迁移
// 唯一键 uk_post_user 兜底并发下的重复插入
func (d *ReactionDAO) Toggle(ctx context.Context, postID uint64, userID int64, reactionType string) (string, error) {
	var action string
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Reaction
		err := tx.Where("blog_post_id = ? AND user_id = ?", postID, userID).Limit(1).Find(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		if err != nil {
			return err
		}

		if item.ID == 0 { // 不存在 → 新增
			now := time.Now()
			item = models.Reaction{
				BlogPostID:   postID,
				UserID:       userID,
				ReactionType: reactionType,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.Create(&item).Error; err != nil {
				if isDuplicateKey(err) {
					return ErrDuplicateReaction
				}
				return err
			}
			action = ReactionAdded
			return nil
		}

		if item.ReactionType == reactionType { // 重复同类表态 → 删除
			if err := tx.Delete(&models.Reaction{}, "id = ?", item.ID).Error; err != nil {
				return err
			}
			action = ReactionRemoved
			return nil
		}

		// 换了类型 → 原地更新
		if err := tx.Model(&models.Reaction{}).
			Where("id = ?", item.ID).
			Updates(map[string]any{
				"reaction_type": reactionType,
				"updated_at":    time.Now(),
			}).Error; err != nil {
			return err
		}
		action = ReactionUpdated
		return nil
	})
	return action, err
}

// Remove 删除表态记录，返回是否真的删掉了一条
func (d *ReactionDAO) Remove(ctx context.Context, postID uint64, userID int64) (bool, error) {
	result := d.Db.WithContext(ctx).
		Where("blog_post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Reaction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByType 按类型统计文章的表态数
func (d *ReactionDAO) CountByType(ctx context.Context, postID uint64) (map[string]int64, error) {
	type row struct {
		ReactionType string `gorm:"column:reaction_type"`
		Total        int64  `gorm:"column:total"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Reaction{}).
		Select("reaction_type, COUNT(*) AS total").
		Where("blog_post_id = ?", postID).
		Group("reaction_type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ReactionType] = r.Total
	}
	return counts, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
