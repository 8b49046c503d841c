package service

import (
	"Inkwell/dao"
	"Inkwell/models"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionToggle_StateMachine(t *testing.T) {
	db := newTestDB(t)
	svc := newReactionService(t, db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	// 无表态 → 新增
	action, err := svc.Toggle(testCtx, 100, 7, models.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, dao.ReactionAdded, action)
	assert.EqualValues(t, 1, countReactions(t, db, 100, 7))

	// 异类表态 → 原地改类型，仍只有一行
	action, err = svc.Toggle(testCtx, 100, 7, models.ReactionLove)
	require.NoError(t, err)
	assert.Equal(t, dao.ReactionUpdated, action)
	assert.EqualValues(t, 1, countReactions(t, db, 100, 7))

	var item models.Reaction
	require.NoError(t, db.Where("blog_post_id = ? AND user_id = ?", 100, 7).First(&item).Error)
	assert.Equal(t, models.ReactionLove, item.ReactionType)

	// 同类表态 → 删除
	action, err = svc.Toggle(testCtx, 100, 7, models.ReactionLove)
	require.NoError(t, err)
	assert.Equal(t, dao.ReactionRemoved, action)
	assert.EqualValues(t, 0, countReactions(t, db, 100, 7))
}

func TestReactionToggle_InvalidType(t *testing.T) {
	db := newTestDB(t)
	svc := newReactionService(t, db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	_, err := svc.Toggle(testCtx, 100, 7, "thumbsup")
	assert.ErrorIs(t, err, ErrInvalidReaction)
	assert.EqualValues(t, 0, countReactions(t, db, 100, 7))
}

func TestReactionToggle_PostNotPublished(t *testing.T) {
	db := newTestDB(t)
	svc := newReactionService(t, db)
	seedPost(t, db, 100, 1, models.PostStatusDraft)

	// 草稿不可表态
	_, err := svc.Toggle(testCtx, 100, 7, models.ReactionLike)
	assert.ErrorIs(t, err, ErrPostNotFound)

	// 文章不存在
	_, err = svc.Toggle(testCtx, 999, 7, models.ReactionLike)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestReactionRemove_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newReactionService(t, db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	_, err := svc.Toggle(testCtx, 100, 7, models.ReactionWow)
	require.NoError(t, err)

	removed, err := svc.Remove(testCtx, 100, 7)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.EqualValues(t, 0, countReactions(t, db, 100, 7))

	// 再删一次，不报错但 removed=false
	removed, err = svc.Remove(testCtx, 100, 7)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestReactionGetCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newReactionService(t, db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	for _, c := range []struct {
		userID       int64
		reactionType string
	}{
		{7, models.ReactionLike},
		{8, models.ReactionLike},
		{9, models.ReactionLove},
	} {
		_, err := svc.Toggle(testCtx, 100, c.userID, c.reactionType)
		require.NoError(t, err)
	}

	// 登录用户能看到自己的表态
	resp, err := svc.GetCounts(testCtx, 100, 9)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]int64{
		models.ReactionLike: 2,
		models.ReactionLove: 1,
	}, resp.Reactions)
	require.NotNil(t, resp.UserReaction)
	assert.Equal(t, models.ReactionLove, *resp.UserReaction)

	// 未登录用户没有 user_reaction
	resp, err = svc.GetCounts(testCtx, 100, 0)
	require.NoError(t, err)
	assert.Nil(t, resp.UserReaction)

	// 没表态的用户也没有
	resp, err = svc.GetCounts(testCtx, 100, 42)
	require.NoError(t, err)
	assert.Nil(t, resp.UserReaction)
}

func TestReactionGetCounts_PostNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newReactionService(t, db)

	_, err := svc.GetCounts(testCtx, 999, 7)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestReactionGetCounts_CacheInvalidation(t *testing.T) {
	db := newTestDB(t)
	svc := newReactionService(t, db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	_, err := svc.Toggle(testCtx, 100, 7, models.ReactionLike)
	require.NoError(t, err)

	// 第一次查询写入缓存
	resp, err := svc.GetCounts(testCtx, 100, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Reactions[models.ReactionLike])

	// 写操作使缓存失效，计数跟着变
	_, err = svc.Toggle(testCtx, 100, 8, models.ReactionLike)
	require.NoError(t, err)

	resp, err = svc.GetCounts(testCtx, 100, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Reactions[models.ReactionLike])
}

// 并发切换同一 (文章, 用户) 不能出现第二行
func TestReactionToggle_Concurrent(t *testing.T) {
	db := newTestDB(t)
	svc := newReactionService(t, db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Toggle(testCtx, 100, 7, models.ReactionLike)
			if err != nil && !errors.Is(err, ErrReactionConflict) {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("toggle failed: %v", err)
	}

	assert.LessOrEqual(t, countReactions(t, db, 100, 7), int64(1))
}
