package cache

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const SessionTTL = 24 * time.Hour

// Flash 一次性提示消息，随重定向展示后即销毁
type Flash struct {
	Level   string `json:"level"` // success | error
	Message string `json:"message"`
}

// SessionStorage 会话存储: CSRF 令牌 + flash 消息
type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(rds *redis.Client) *SessionStorage {
	return &SessionStorage{redis: rds}
}

func (s *SessionStorage) sessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

func (s *SessionStorage) flashKey(sid string) string {
	return fmt.Sprintf("session:flash:%s", sid)
}

// NewSession 分配会话ID
func (s *SessionStorage) NewSession(ctx context.Context) (string, error) {
	sid := uuid.NewString()
	err := s.redis.HSet(ctx, s.sessionKey(sid), "created_at", time.Now().Unix()).Err()
	if err != nil {
		return "", err
	}
	s.redis.Expire(ctx, s.sessionKey(sid), SessionTTL)
	return sid, nil
}

// IssueCSRF 为会话签发 CSRF 令牌，重复签发覆盖旧值
func (s *SessionStorage) IssueCSRF(ctx context.Context, sid string) (string, error) {
	token := uuid.NewString()
	err := s.redis.HSet(ctx, s.sessionKey(sid), "csrf_token", token).Err()
	if err != nil {
		return "", err
	}
	s.redis.Expire(ctx, s.sessionKey(sid), SessionTTL)
	return token, nil
}

// ValidateCSRF 校验会话的 CSRF 令牌
func (s *SessionStorage) ValidateCSRF(ctx context.Context, sid string, token string) bool {
	if sid == "" || token == "" {
		return false
	}
	stored, err := s.redis.HGet(ctx, s.sessionKey(sid), "csrf_token").Result()
	if err != nil || stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}

// PushFlash 追加一条 flash 消息
func (s *SessionStorage) PushFlash(ctx context.Context, sid string, flash Flash) {
	data, err := json.Marshal(flash)
	if err != nil {
		return
	}
	key := s.flashKey(sid)
	pipe := s.redis.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, SessionTTL)
	pipe.Exec(ctx)
}

// PopFlashes 取出并清空会话的全部 flash 消息
func (s *SessionStorage) PopFlashes(ctx context.Context, sid string) []Flash {
	key := s.flashKey(sid)

	pipe := s.redis.TxPipeline()
	itemsCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil
	}

	items := itemsCmd.Val()
	flashes := make([]Flash, 0, len(items))
	for _, item := range items {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err == nil {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
