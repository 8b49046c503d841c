package service

import (
	"Inkwell/dao"
	"Inkwell/dao/cache"
	"Inkwell/models"
	"Inkwell/types"
	"context"
	"errors"

	"github.com/sourcegraph/conc"
)

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	Toggle(ctx context.Context, postID uint64, userID int64, reactionType string) (string, error)
	Remove(ctx context.Context, postID uint64, userID int64) (bool, error)
	GetCounts(ctx context.Context, postID uint64, currentUserID int64) (*types.ReactionCountsResponse, error)
}

type ReactionService struct {
	ReactionDAO *dao.ReactionDAO
	PostDAO     *dao.BlogPostDAO
	Cache       *cache.ReactionCache
}

// Toggle 切换表态
// 无表态 → 新增；同类表态 → 删除；异类表态 → 原地改类型
func (s *ReactionService) Toggle(ctx context.Context, postID uint64, userID int64, reactionType string) (string, error) {
	// 1. 校验表态类型
	if !models.IsValidReactionType(reactionType) {
		return "", ErrInvalidReaction
	}

	// 2. 校验文章存在且已发布
	exist, err := s.PostDAO.IsPublished(ctx, postID)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", ErrPostNotFound
	}

	// 3. 事务内完成状态迁移，唯一键兜底并发
	action, err := s.ReactionDAO.Toggle(ctx, postID, userID, reactionType)
	if err != nil {
		if errors.Is(err, dao.ErrDuplicateReaction) {
			return "", ErrReactionConflict
		}
		return "", err
	}

	// 4. 计数缓存失效(失败不影响业务)
	s.Cache.Invalidate(ctx, postID)

	return action, nil
}

// Remove 取消表态，返回是否真的删掉了一条
func (s *ReactionService) Remove(ctx context.Context, postID uint64, userID int64) (bool, error) {
	removed, err := s.ReactionDAO.Remove(ctx, postID, userID)
	if err != nil {
		return false, err
	}
	if removed {
		s.Cache.Invalidate(ctx, postID)
	}
	return removed, nil
}

// GetCounts 按类型统计文章表态数，并带上当前用户自己的表态
func (s *ReactionService) GetCounts(ctx context.Context, postID uint64, currentUserID int64) (*types.ReactionCountsResponse, error) {
	exist, err := s.PostDAO.IsPublished(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	var (
		counts    map[string]int64
		countsErr error
		own       *models.Reaction
		ownErr    error
		wg        conc.WaitGroup
	)

	// 并发取计数和当前用户表态
	wg.Go(func() {
		counts, countsErr = s.loadCounts(ctx, postID)
	})
	wg.Go(func() {
		if currentUserID > 0 {
			own, ownErr = s.ReactionDAO.GetByPostUser(ctx, postID, currentUserID)
		}
	})
	wg.Wait()

	if countsErr != nil {
		return nil, countsErr
	}
	if ownErr != nil {
		return nil, ownErr
	}

	resp := &types.ReactionCountsResponse{
		Success:   true,
		Reactions: counts,
	}
	if own != nil {
		resp.UserReaction = &own.ReactionType
	}
	return resp, nil
}

// loadCounts 先查缓存，未命中回源数据库并回写
func (s *ReactionService) loadCounts(ctx context.Context, postID uint64) (map[string]int64, error) {
	if counts, ok := s.Cache.GetCounts(ctx, postID); ok {
		return counts, nil
	}

	counts, err := s.ReactionDAO.CountByType(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.Cache.SetCounts(ctx, postID, counts)
	return counts, nil
}
