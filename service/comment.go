package service

import (
	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/snowflake"
	"Inkwell/types"
	"context"
	"strings"
	"time"
)

const (
	CommentMinLength = 2
	CommentMaxLength = 1000

	CommentPageSize = 20
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, postID uint64, userID int64, content string) (*models.Comment, error)
	Delete(ctx context.Context, commentID uint64, userID int64) error
	List(ctx context.Context, postID uint64, page int) (*types.CommentListResponse, error)
}

type CommentService struct {
	CommentDAO *dao.CommentDAO
	PostDAO    *dao.BlogPostDAO
}

// Create 发表评论
func (s *CommentService) Create(ctx context.Context, postID uint64, userID int64, content string) (*models.Comment, error) {
	// 1. 校验文章存在且已发布
	exist, err := s.PostDAO.IsPublished(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	// 2. 校验评论长度
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrCommentEmpty
	}
	length := len([]rune(content))
	if length < CommentMinLength {
		return nil, ErrCommentTooShort
	}
	if length > CommentMaxLength {
		return nil, ErrCommentTooLong
	}

	// 3. 落库
	now := time.Now()
	comment := &models.Comment{
		ID:         uint64(snowflake.GenID()),
		BlogPostID: postID,
		UserID:     userID,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete 删除评论
// 评论作者和文章作者都有权删除，其他人一律拒绝
func (s *CommentService) Delete(ctx context.Context, commentID uint64, userID int64) error {
	// 1. 一次查询取回评论作者和文章作者
	ownership, err := s.CommentDAO.GetOwnership(ctx, commentID)
	if err != nil {
		if dao.IsNotFound(err) {
			return ErrCommentNotFound
		}
		return err
	}

	// 2. 权限检查
	if userID != ownership.UserID && userID != ownership.PostAuthorID {
		return ErrNotAllowed
	}

	// 3. 删除
	return s.CommentDAO.Delete(ctx, commentID)
}

// List 获取文章评论列表(页码分页，按时间倒序)
func (s *CommentService) List(ctx context.Context, postID uint64, page int) (*types.CommentListResponse, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.CommentDAO.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * CommentPageSize
	comments, err := s.CommentDAO.ListByPost(ctx, postID, offset, CommentPageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*types.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, &types.CommentResponse{
			ID:         comment.ID,
			BlogPostID: comment.BlogPostID,
			UserID:     comment.UserID,
			Content:    comment.Content,
			CreatedAt:  comment.CreatedAt,
		})
	}

	return &types.CommentListResponse{
		Comments:   result,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, CommentPageSize),
	}, nil
}

// totalPages 向上取整
func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
