package service

import (
	"Inkwell/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countComments(t *testing.T, db *gorm.DB, postID uint64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("blog_post_id = ?", postID).Count(&count).Error)
	return count
}

func TestCommentCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	comment, err := svc.Create(testCtx, 100, 7, "  写得不错  ")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, "写得不错", comment.Content)
	assert.EqualValues(t, 1, countComments(t, db, 100))
}

func TestCommentCreate_LengthLimits(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	// 全空白
	_, err := svc.Create(testCtx, 100, 7, "   \t\n ")
	assert.ErrorIs(t, err, ErrCommentEmpty)

	// 差一个字符到下限
	_, err = svc.Create(testCtx, 100, 7, "好")
	assert.ErrorIs(t, err, ErrCommentTooShort)

	// 恰好到下限
	_, err = svc.Create(testCtx, 100, 7, "好文")
	assert.NoError(t, err)

	// 恰好到上限(按字符数，不是字节数)
	_, err = svc.Create(testCtx, 100, 8, strings.Repeat("赞", CommentMaxLength))
	assert.NoError(t, err)

	// 超出上限一个字符
	_, err = svc.Create(testCtx, 100, 9, strings.Repeat("赞", CommentMaxLength+1))
	assert.ErrorIs(t, err, ErrCommentTooLong)

	// 被拒的评论不落库
	assert.EqualValues(t, 2, countComments(t, db, 100))
}

func TestCommentCreate_PostNotPublished(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	seedPost(t, db, 100, 1, models.PostStatusDraft)

	_, err := svc.Create(testCtx, 100, 7, "写得不错")
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.Create(testCtx, 999, 7, "写得不错")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentDelete_Permission(t *testing.T) {
	const (
		postAuthor    int64 = 1
		commentAuthor int64 = 7
		stranger      int64 = 42
	)

	db := newTestDB(t)
	svc := newCommentService(db)
	seedPost(t, db, 100, postAuthor, models.PostStatusPublished)

	comment, err := svc.Create(testCtx, 100, commentAuthor, "写得不错")
	require.NoError(t, err)

	// 路人删不掉，评论还在
	err = svc.Delete(testCtx, comment.ID, stranger)
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.EqualValues(t, 1, countComments(t, db, 100))

	// 评论作者可删
	require.NoError(t, svc.Delete(testCtx, comment.ID, commentAuthor))
	assert.EqualValues(t, 0, countComments(t, db, 100))

	// 文章作者可删别人的评论
	comment, err = svc.Create(testCtx, 100, commentAuthor, "再评一条")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(testCtx, comment.ID, postAuthor))
	assert.EqualValues(t, 0, countComments(t, db, 100))
}

func TestCommentDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)

	err := svc.Delete(testCtx, 999, 7)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentList_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	seedPost(t, db, 100, 1, models.PostStatusPublished)

	total := CommentPageSize + 3
	for i := 0; i < total; i++ {
		_, err := svc.Create(testCtx, 100, int64(i+1), "评论内容")
		require.NoError(t, err)
	}

	resp, err := svc.List(testCtx, 100, 1)
	require.NoError(t, err)
	assert.EqualValues(t, total, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, resp.Comments, CommentPageSize)

	resp, err = svc.List(testCtx, 100, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Comments, 3)

	// 页码越界返回空列表，不报错
	resp, err = svc.List(testCtx, 100, 9)
	require.NoError(t, err)
	assert.Empty(t, resp.Comments)
}
