package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestSessionStorage_CSRF(t *testing.T) {
	s := NewSessionStorage(newTestRedis(t))
	ctx := context.Background()

	sid, err := s.NewSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	token, err := s.IssueCSRF(ctx, sid)
	require.NoError(t, err)

	assert.True(t, s.ValidateCSRF(ctx, sid, token))
	assert.False(t, s.ValidateCSRF(ctx, sid, "wrong-token"))
	assert.False(t, s.ValidateCSRF(ctx, "other-session", token))
	assert.False(t, s.ValidateCSRF(ctx, sid, ""))

	// 重新签发后旧令牌失效
	newToken, err := s.IssueCSRF(ctx, sid)
	require.NoError(t, err)
	assert.False(t, s.ValidateCSRF(ctx, sid, token))
	assert.True(t, s.ValidateCSRF(ctx, sid, newToken))
}

func TestSessionStorage_Flash(t *testing.T) {
	s := NewSessionStorage(newTestRedis(t))
	ctx := context.Background()

	sid, err := s.NewSession(ctx)
	require.NoError(t, err)

	s.PushFlash(ctx, sid, Flash{Level: "success", Message: "评论发表成功"})
	s.PushFlash(ctx, sid, Flash{Level: "error", Message: "出错了"})

	flashes := s.PopFlashes(ctx, sid)
	require.Len(t, flashes, 2)
	assert.Equal(t, "success", flashes[0].Level)
	assert.Equal(t, "评论发表成功", flashes[0].Message)
	assert.Equal(t, "error", flashes[1].Level)

	// 取出后即清空
	assert.Empty(t, s.PopFlashes(ctx, sid))
}

func TestReactionCache(t *testing.T) {
	c := NewReactionCache(newTestRedis(t))
	ctx := context.Background()

	// 未命中
	_, ok := c.GetCounts(ctx, 1)
	assert.False(t, ok)

	counts := map[string]int64{"like": 2, "love": 1}
	c.SetCounts(ctx, 1, counts)

	got, ok := c.GetCounts(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, counts, got)

	c.Invalidate(ctx, 1)
	_, ok = c.GetCounts(ctx, 1)
	assert.False(t, ok)
}
