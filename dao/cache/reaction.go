package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const ReactionCountTTL = 10 * time.Minute

// ReactionCache 表态计数缓存，hash: 类型 → 数量
// 缓存只是加速读，失败时调用方直接回源数据库
type ReactionCache struct {
	redis *redis.Client
}

func NewReactionCache(rds *redis.Client) *ReactionCache {
	return &ReactionCache{redis: rds}
}

func (c *ReactionCache) key(postID uint64) string {
	return fmt.Sprintf("reaction:count:%d", postID)
}

// GetCounts 读缓存，未命中返回 ok=false
func (c *ReactionCache) GetCounts(ctx context.Context, postID uint64) (map[string]int64, bool) {
	values, err := c.redis.HGetAll(ctx, c.key(postID)).Result()
	if err != nil || len(values) == 0 {
		return nil, false
	}

	counts := make(map[string]int64, len(values))
	for reactionType, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false
		}
		counts[reactionType] = n
	}
	return counts, true
}

// SetCounts 回写缓存
func (c *ReactionCache) SetCounts(ctx context.Context, postID uint64, counts map[string]int64) {
	key := c.key(postID)
	pipe := c.redis.Pipeline()
	pipe.Del(ctx, key)
	if len(counts) > 0 {
		fields := make(map[string]any, len(counts))
		for reactionType, n := range counts {
			fields[reactionType] = n
		}
		pipe.HSet(ctx, key, fields)
	}
	pipe.Expire(ctx, key, ReactionCountTTL)
	pipe.Exec(ctx)
}

// Invalidate 表态变更后清缓存
func (c *ReactionCache) Invalidate(ctx context.Context, postID uint64) {
	c.redis.Del(ctx, c.key(postID))
}
