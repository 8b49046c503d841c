package handler

import (
	"Inkwell/config"
	"Inkwell/dao/cache"
	"Inkwell/middleware"
	"Inkwell/pkg/context"
	"Inkwell/pkg/log"
	"Inkwell/service"
	"Inkwell/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReactionsHandler 表态接口，全部返回 JSON
type ReactionsHandler struct {
	Config          *config.Config
	ReactionService service.IReactionService
	Sessions        *cache.SessionStorage
}

func (rh *ReactionsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(rh.Config.Jwt.Secret))
	optional := middleware.OptionalAuth([]byte(rh.Config.Jwt.Secret))
	csrf := middleware.CSRF(rh.Sessions, true)

	reactions := r.Group("/v1/reactions")
	reactions.POST("/toggle", authorize, csrf, context.Wrap(rh.Toggle)) // 切换表态
	reactions.POST("/remove", authorize, csrf, context.Wrap(rh.Remove)) // 取消表态
	reactions.GET("/counts/:post_id", optional, context.Wrap(rh.GetCounts))
}

// Toggle 切换表态
func (rh *ReactionsHandler) Toggle(c *gin.Context) error {
	var req types.ToggleReactionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ReactionActionResponse{
			Success: false,
			Message: "请求参数错误",
		})
		return nil
	}

	userIDval, err := context.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, types.ReactionActionResponse{
			Success: false,
			Message: "未登录",
		})
		return nil
	}

	action, err := rh.ReactionService.Toggle(c.Request.Context(), req.BlogPostID, userIDval, req.ReactionType)
	if err != nil {
		rh.fail(c, err)
		return nil
	}

	c.JSON(http.StatusOK, types.ReactionActionResponse{
		Success: true,
		Action:  action,
	})
	return nil
}

// Remove 取消表态
// 删掉了记录和本来就没有记录是两种返回，前端依赖 action 字段区分
func (rh *ReactionsHandler) Remove(c *gin.Context) error {
	var req types.RemoveReactionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ReactionActionResponse{
			Success: false,
			Message: "请求参数错误",
		})
		return nil
	}

	userIDval, err := context.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, types.ReactionActionResponse{
			Success: false,
			Message: "未登录",
		})
		return nil
	}

	removed, err := rh.ReactionService.Remove(c.Request.Context(), req.BlogPostID, userIDval)
	if err != nil {
		rh.fail(c, err)
		return nil
	}

	if !removed {
		c.JSON(http.StatusOK, types.ReactionActionResponse{
			Success: false,
			Message: "没有可取消的表态",
		})
		return nil
	}

	c.JSON(http.StatusOK, types.ReactionActionResponse{
		Success: true,
		Action:  "removed",
	})
	return nil
}

// GetCounts 获取表态统计，匿名也可访问
func (rh *ReactionsHandler) GetCounts(c *gin.Context) error {
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, types.ReactionActionResponse{
			Success: false,
			Message: "post_id参数错误",
		})
		return nil
	}

	currentUserID := int64(0)
	if userIDval, err := context.GetUserID(c); err == nil {
		currentUserID = userIDval
	}

	result, err := rh.ReactionService.GetCounts(c.Request.Context(), postID, currentUserID)
	if err != nil {
		rh.fail(c, err)
		return nil
	}

	c.JSON(http.StatusOK, result)
	return nil
}

// fail 业务错误原样返回，存储错误记日志后只给通用提示
func (rh *ReactionsHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidReaction):
		c.JSON(http.StatusBadRequest, types.ReactionActionResponse{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, types.ReactionActionResponse{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrReactionConflict):
		c.JSON(http.StatusConflict, types.ReactionActionResponse{Success: false, Message: err.Error()})
	default:
		log.L.Error("reaction operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ReactionActionResponse{
			Success: false,
			Message: "发生错误，请稍后重试",
		})
	}
}
