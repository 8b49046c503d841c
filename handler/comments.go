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
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommentsHandler 评论接口
// 写操作是表单提交，结果通过 302 回跳文章页 + flash 消息呈现
type CommentsHandler struct {
	Config         *config.Config
	CommentService service.ICommentService
	Sessions       *cache.SessionStorage
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(ch.Config.Jwt.Secret))
	csrf := middleware.CSRF(ch.Sessions, false)

	comments := r.Group("/v1/comments")
	comments.POST("/add", authorize, csrf, context.Wrap(ch.AddComment))       // 发表评论
	comments.POST("/delete", authorize, csrf, context.Wrap(ch.DeleteComment)) // 删除评论
	comments.GET("/list/:post_id", context.Wrap(ch.ListComments))
}

// AddComment 发表评论
func (ch *CommentsHandler) AddComment(c *gin.Context) error {
	var req types.AddCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		ch.redirectWithFlash(c, "/", "error", "请求参数错误")
		return nil
	}

	userIDval, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postURL := fmt.Sprintf("/posts/%d", req.BlogPostID)

	_, err = ch.CommentService.Create(c.Request.Context(), req.BlogPostID, userIDval, req.Comment)
	if err != nil {
		ch.redirectWithFlash(c, postURL, "error", userMessage(err))
		return nil
	}

	ch.redirectWithFlash(c, postURL, "success", "评论发表成功")
	return nil
}

// DeleteComment 删除评论
func (ch *CommentsHandler) DeleteComment(c *gin.Context) error {
	var req types.DeleteCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		ch.redirectWithFlash(c, "/", "error", "请求参数错误")
		return nil
	}

	userIDval, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postURL := fmt.Sprintf("/posts/%d", req.BlogPostID)

	if err := ch.CommentService.Delete(c.Request.Context(), req.CommentID, userIDval); err != nil {
		ch.redirectWithFlash(c, postURL, "error", userMessage(err))
		return nil
	}

	ch.redirectWithFlash(c, postURL, "success", "评论已删除")
	return nil
}

// ListComments 获取评论列表(页码分页)
func (ch *CommentsHandler) ListComments(c *gin.Context) error {
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil || postID == 0 {
		return response.NewError(http.StatusBadRequest, "post_id参数错误")
	}

	page := 1
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	result, err := ch.CommentService.List(c.Request.Context(), postID, page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "获取评论失败")
	}

	response.Success(c, result)
	return nil
}

// redirectWithFlash 写入 flash 消息并 302 回跳
func (ch *CommentsHandler) redirectWithFlash(c *gin.Context, target, level, message string) {
	sid, _ := c.Cookie(middleware.SessionCookie)
	if sid != "" {
		ch.Sessions.PushFlash(c.Request.Context(), sid, cache.Flash{
			Level:   level,
			Message: message,
		})
	}
	c.Redirect(http.StatusFound, target)
}

// userMessage 业务错误原样展示，存储错误只给通用提示
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrCommentEmpty),
		errors.Is(err, service.ErrCommentTooShort),
		errors.Is(err, service.ErrCommentTooLong),
		errors.Is(err, service.ErrNotAllowed):
		return err.Error()
	default:
		log.L.Error("comment operation failed", zap.Error(err))
		return "发生错误，请稍后重试"
	}
}
