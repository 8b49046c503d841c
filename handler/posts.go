package handler

import (
	"Inkwell/config"
	"Inkwell/dao/cache"
	"Inkwell/middleware"
	"Inkwell/pkg/context"
	"Inkwell/pkg/log"
	"Inkwell/pkg/response"
	"Inkwell/service"
	"Inkwell/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostsHandler struct {
	Config      *config.Config
	PostService service.IPostService
	Sessions    *cache.SessionStorage
}

func (ph *PostsHandler) RegisterRouter(r gin.IRouter) {
	optional := middleware.OptionalAuth([]byte(ph.Config.Jwt.Secret))

	posts := r.Group("/v1/posts")
	posts.GET("", context.Wrap(ph.ListPosts))
	posts.GET("/:post_id", optional, context.Wrap(ph.GetPost))
}

// ListPosts 已发布文章列表(页码分页)
func (ph *PostsHandler) ListPosts(c *gin.Context) error {
	page := 1
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	result, err := ph.PostService.List(c.Request.Context(), page)
	if err != nil {
		log.L.Error("list posts failed", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "发生错误，请稍后重试")
	}

	response.Success(c, result)
	return nil
}

// GetPost 文章详情
// 评论提交后 302 回跳到这里，把会话里积攒的 flash 一并带出
func (ph *PostsHandler) GetPost(c *gin.Context) error {
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil || postID == 0 {
		return response.NewError(http.StatusBadRequest, "post_id参数错误")
	}

	currentUserID := int64(0)
	if userIDval, err := context.GetUserID(c); err == nil {
		currentUserID = userIDval
	}

	result, err := ph.PostService.Get(c.Request.Context(), postID, currentUserID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			return response.NewError(http.StatusNotFound, err.Error())
		}
		log.L.Error("get post failed", zap.Uint64("post_id", postID), zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "发生错误，请稍后重试")
	}

	if sid, _ := c.Cookie(middleware.SessionCookie); sid != "" {
		for _, f := range ph.Sessions.PopFlashes(c.Request.Context(), sid) {
			result.Flashes = append(result.Flashes, types.FlashMessage{
				Level:   f.Level,
				Message: f.Message,
			})
		}
	}

	response.Success(c, result)
	return nil
}
