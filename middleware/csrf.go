package middleware

import (
	"net/http"

	"Inkwell/dao/cache"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "sid"

// CSRF 校验表单里的 csrf_token 是否与会话中签发的一致
// failJSON 为 true 时返回 JSON 错误，否则回跳来源页并带上 flash
func CSRF(sessions *cache.SessionStorage, failJSON bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := c.Cookie(SessionCookie)
		token := c.PostForm("csrf_token")

		if sessions.ValidateCSRF(c.Request.Context(), sid, token) {
			c.Next()
			return
		}

		if failJSON {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "无效的请求令牌",
			})
			return
		}

		if sid != "" {
			sessions.PushFlash(c.Request.Context(), sid, cache.Flash{
				Level:   "error",
				Message: "无效的请求令牌，请刷新页面重试",
			})
		}
		target := c.Request.Referer()
		if target == "" {
			target = "/"
		}
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}
