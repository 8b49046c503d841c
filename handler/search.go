package handler

import (
	"Inkwell/config"
	"Inkwell/pkg/context"
	"Inkwell/pkg/log"
	"Inkwell/pkg/response"
	"Inkwell/service"
	"Inkwell/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	Config        *config.Config
	SearchService service.ISearchService
}

func (s *SearchHandler) RegisterRouter(r gin.IRouter) {
	search := r.Group("/v1/search")
	search.GET("", context.Wrap(s.Search))
}

// Search 关键词搜索已发布文章
// 空关键词不报错，返回空结果页
func (s *SearchHandler) Search(c *gin.Context) error {
	var req types.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := s.SearchService.Search(c.Request.Context(), req)
	if err != nil {
		log.L.Error("search failed", zap.String("q", req.Q), zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "发生错误，请稍后重试")
	}

	response.Success(c, result)
	return nil
}
