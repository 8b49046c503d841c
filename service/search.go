package service

import (
	"Inkwell/dao"
	"Inkwell/pkg/utils"
	"Inkwell/types"
	"context"
	"strings"
)

const (
	SearchPageSize   = 10
	SearchExcerptLen = 200
)

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	Search(ctx context.Context, req types.SearchRequest) (*types.SearchResponse, error)
}

type SearchService struct {
	PostDAO *dao.BlogPostDAO
}

// Search 关键词搜索已发布文章(页码分页，按时间倒序)
// 空关键词直接返回空结果，不查库；页码越界返回空列表，不报错
func (s *SearchService) Search(ctx context.Context, req types.SearchRequest) (*types.SearchResponse, error) {
	keyword := strings.TrimSpace(req.Q)
	page := req.Page
	if page < 1 {
		page = 1
	}

	resp := &types.SearchResponse{
		Query:    keyword,
		Items:    make([]*types.SearchItem, 0),
		Page:     page,
		PageSize: SearchPageSize,
	}

	if keyword == "" {
		return resp, nil
	}

	total, err := s.PostDAO.SearchCount(ctx, keyword)
	if err != nil {
		return nil, err
	}
	resp.Total = total
	resp.TotalPages = totalPages(total, SearchPageSize)

	if total == 0 {
		return resp, nil
	}

	offset := (page - 1) * SearchPageSize
	posts, err := s.PostDAO.Search(ctx, keyword, offset, SearchPageSize)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		excerpt := post.Excerpt
		if excerpt == "" {
			excerpt = utils.Excerpt(post.Content, SearchExcerptLen)
		}
		resp.Items = append(resp.Items, &types.SearchItem{
			ID:        post.ID,
			Title:     utils.Highlight(post.Title, keyword),
			Excerpt:   utils.Highlight(excerpt, keyword),
			UserID:    post.UserID,
			CreatedAt: post.CreatedAt,
		})
	}

	return resp, nil
}
