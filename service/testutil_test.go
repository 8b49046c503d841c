package service

import (
	"Inkwell/dao"
	"Inkwell/dao/cache"
	"Inkwell/models"
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:inkwell_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 单连接，避免 sqlite 写锁竞争
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Users{},
		&models.BlogPost{},
		&models.Comment{},
		&models.Reaction{},
	))
	return db
}

func newTestCache(t *testing.T) *cache.ReactionCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return cache.NewReactionCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func seedPost(t *testing.T, db *gorm.DB, id uint64, authorID int64, status string) *models.BlogPost {
	t.Helper()
	post := &models.BlogPost{
		ID:        id,
		UserID:    authorID,
		Title:     fmt.Sprintf("post %d", id),
		Content:   "some content",
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func countReactions(t *testing.T, db *gorm.DB, postID uint64, userID int64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Reaction{}).
		Where("blog_post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error)
	return count
}

func newReactionService(t *testing.T, db *gorm.DB) *ReactionService {
	t.Helper()
	return &ReactionService{
		ReactionDAO: dao.NewReactionDAO(db),
		PostDAO:     dao.NewBlogPostDAO(db),
		Cache:       newTestCache(t),
	}
}

func newCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		CommentDAO: dao.NewCommentDAO(db),
		PostDAO:    dao.NewBlogPostDAO(db),
	}
}

var testCtx = context.Background()
