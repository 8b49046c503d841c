package handler

import (
	"Inkwell/config"
	"Inkwell/dao/cache"
	"Inkwell/middleware"
	"Inkwell/pkg/context"
	"Inkwell/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 24 * 60 * 60

type Session struct {
	Config   *config.Config
	Sessions *cache.SessionStorage
}

func (s *Session) RegisterRouter(r gin.IRouter) {
	session := r.Group("/v1/session")
	session.GET("/csrf", context.Wrap(s.IssueCSRF)) // 签发 CSRF 令牌
}

// IssueCSRF 为当前会话签发 CSRF 令牌，没有会话时先建会话
func (s *Session) IssueCSRF(c *gin.Context) error {
	sid, err := c.Cookie(middleware.SessionCookie)
	if err != nil || sid == "" {
		sid, err = s.Sessions.NewSession(c.Request.Context())
		if err != nil {
			return response.NewError(http.StatusInternalServerError, "发生错误，请稍后重试")
		}
		c.SetCookie(middleware.SessionCookie, sid, sessionMaxAge, "/", "", false, true)
	}

	token, err := s.Sessions.IssueCSRF(c.Request.Context(), sid)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "发生错误，请稍后重试")
	}

	response.Success(c, gin.H{"csrf_token": token})
	return nil
}
