package service

import "errors"

// 业务错误，handler 层据此决定响应形态
var (
	ErrPostNotFound     = errors.New("文章不存在或未发布")
	ErrCommentNotFound  = errors.New("评论不存在")
	ErrCommentEmpty     = errors.New("评论内容不能为空")
	ErrCommentTooShort  = errors.New("评论内容太短")
	ErrCommentTooLong   = errors.New("评论内容不能超过1000个字符")
	ErrInvalidReaction  = errors.New("不支持的表态类型")
	ErrNotAllowed       = errors.New("无权删除该评论")
	ErrReactionConflict = errors.New("操作太频繁,请稍后重试")
	ErrUserExist        = errors.New("账号已存在")
	ErrUserNotFound     = errors.New("登录账号不存在")
	ErrPasswordWrong    = errors.New("登录密码填写错误")
)
