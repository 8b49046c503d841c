package service

import (
	"Inkwell/dao"
	"Inkwell/pkg/utils"
	"Inkwell/types"
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	PostPageSize       = 10
	PostExcerptLen     = 200
	PostDetailComments = 5
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	List(ctx context.Context, page int) (*types.PostListResponse, error)
	Get(ctx context.Context, postID uint64, currentUserID int64) (*types.PostDetailResponse, error)
}

type PostService struct {
	PostDAO     *dao.BlogPostDAO
	CommentDAO  *dao.CommentDAO
	ReactionSvc IReactionService
}

// List 已发布文章列表(页码分页，按时间倒序)
func (s *PostService) List(ctx context.Context, page int) (*types.PostListResponse, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.PostDAO.CountPublished(ctx)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * PostPageSize
	posts, err := s.PostDAO.ListPublished(ctx, offset, PostPageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*types.PostItem, 0, len(posts))
	for _, post := range posts {
		excerpt := post.Excerpt
		if excerpt == "" {
			excerpt = utils.Excerpt(post.Content, PostExcerptLen)
		}
		items = append(items, &types.PostItem{
			ID:            post.ID,
			Title:         post.Title,
			Excerpt:       excerpt,
			FeaturedImage: post.FeaturedImage,
			Tags:          post.Tags,
			UserID:        post.UserID,
			CreatedAt:     post.CreatedAt,
		})
	}

	return &types.PostListResponse{
		Posts:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, PostPageSize),
	}, nil
}

// Get 文章详情，带表态统计和最新几条评论
func (s *PostService) Get(ctx context.Context, postID uint64, currentUserID int64) (*types.PostDetailResponse, error) {
	post, err := s.PostDAO.GetPublished(ctx, postID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	resp := &types.PostDetailResponse{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		FeaturedImage: post.FeaturedImage,
		Tags:          post.Tags,
		UserID:        post.UserID,
		CreatedAt:     post.CreatedAt,
	}

	var g errgroup.Group

	g.Go(func() error {
		counts, err := s.ReactionSvc.GetCounts(ctx, postID, currentUserID)
		if err != nil {
			return err
		}
		resp.Reactions = counts.Reactions
		resp.UserReaction = counts.UserReaction
		return nil
	})

	g.Go(func() error {
		total, err := s.CommentDAO.CountByPost(ctx, postID)
		if err != nil {
			return err
		}
		resp.CommentTotal = total
		return nil
	})

	g.Go(func() error {
		comments, err := s.CommentDAO.ListByPost(ctx, postID, 0, PostDetailComments)
		if err != nil {
			return err
		}
		resp.Comments = make([]*types.CommentResponse, 0, len(comments))
		for _, comment := range comments {
			resp.Comments = append(resp.Comments, &types.CommentResponse{
				ID:         comment.ID,
				BlogPostID: comment.BlogPostID,
				UserID:     comment.UserID,
				Content:    comment.Content,
				CreatedAt:  comment.CreatedAt,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resp, nil
}
