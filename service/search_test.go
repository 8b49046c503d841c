package service

import (
	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/types"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSearchService(db *gorm.DB) *SearchService {
	return &SearchService{PostDAO: dao.NewBlogPostDAO(db)}
}

func seedSearchPost(t *testing.T, db *gorm.DB, id uint64, title, content, status string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.BlogPost{
		ID:        id,
		UserID:    1,
		Title:     title,
		Content:   content,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}).Error)
}

func TestSearch_EmptyQuery(t *testing.T) {
	// 空关键词不该碰数据库，PostDAO 传 nil 做哨兵
	svc := &SearchService{PostDAO: nil}

	for _, q := range []string{"", "   ", "\t\n"} {
		resp, err := svc.Search(testCtx, types.SearchRequest{Q: q, Page: 1})
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.EqualValues(t, 0, resp.Total)
		assert.Equal(t, "", resp.Query)
	}
}

func TestSearch_MatchAndOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newSearchService(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedSearchPost(t, db, 1, "Golang 并发入门", "goroutine 基础", models.PostStatusPublished, base)
	seedSearchPost(t, db, 2, "数据库索引", "正文里提到 golang 调优", models.PostStatusPublished, base.Add(time.Hour))
	seedSearchPost(t, db, 3, "Golang 内存模型", "happens-before", models.PostStatusDraft, base.Add(2*time.Hour))
	seedSearchPost(t, db, 4, "前端漫谈", "与主题无关", models.PostStatusPublished, base.Add(3*time.Hour))

	resp, err := svc.Search(testCtx, types.SearchRequest{Q: "golang", Page: 1})
	require.NoError(t, err)

	// 草稿(3)和不相关(4)不命中，结果按时间倒序
	require.Len(t, resp.Items, 2)
	assert.EqualValues(t, 2, resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	assert.EqualValues(t, 2, resp.Items[0].ID)
	assert.EqualValues(t, 1, resp.Items[1].ID)

	// 标题命中时做高亮
	assert.Contains(t, resp.Items[1].Title, "<mark>Golang</mark>")
}

func TestSearch_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := newSearchService(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	total := SearchPageSize + 2
	for i := 0; i < total; i++ {
		seedSearchPost(t, db, uint64(i+1), fmt.Sprintf("缓存实践 %d", i+1), "正文",
			models.PostStatusPublished, base.Add(time.Duration(i)*time.Minute))
	}

	resp, err := svc.Search(testCtx, types.SearchRequest{Q: "缓存", Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, total, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, resp.Items, SearchPageSize)

	resp, err = svc.Search(testCtx, types.SearchRequest{Q: "缓存", Page: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)

	// 页码越界返回空列表，不报错
	resp, err = svc.Search(testCtx, types.SearchRequest{Q: "缓存", Page: 9})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.EqualValues(t, total, resp.Total)
}

func TestSearch_NoMatch(t *testing.T) {
	db := newTestDB(t)
	svc := newSearchService(db)
	seedSearchPost(t, db, 1, "随笔", "正文", models.PostStatusPublished, time.Now())

	resp, err := svc.Search(testCtx, types.SearchRequest{Q: "不存在的关键词", Page: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.EqualValues(t, 0, resp.Total)
	assert.Equal(t, 0, resp.TotalPages)
}
