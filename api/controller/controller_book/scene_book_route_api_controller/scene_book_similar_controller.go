package scene_book_route_api_controller

import (
	"net/http"
	"strconv"

	"github.com/cgbookstore/go-backend-clean-architecture/api/controller"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
	"github.com/gin-gonic/gin"
)

type SimilarController struct {
	SimilarUsecase scene_book_route_interface.SimilarRouteRepository
}

func NewSimilarController(repo scene_book_route_interface.SimilarRouteRepository) *SimilarController {
	return &SimilarController{
		SimilarUsecase: repo,
	}
}

// GetSimilarBooks 相似书籍查询（不要求登录）
// GET /books/similar?book_id=xxx&limit=5
func (c *SimilarController) GetSimilarBooks(ctx *gin.Context) {
	bookId := ctx.Query("book_id")
	if bookId == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "book_id参数是必需的")
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须是正数")
		return
	}

	results, err := c.SimilarUsecase.GetSimilarBooks(ctx.Request.Context(), bookId, limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	if results == nil {
		results = []scene_book_route_models.RecommendationResult{}
	}

	controller.SuccessResponse(ctx, "similar_books", results, len(results))
}
