package scene_book_route_api_controller

import (
	"net/http"
	"strconv"

	"github.com/cgbookstore/go-backend-clean-architecture/api/controller"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
	"github.com/gin-gonic/gin"
)

// 推荐数量默认值与上限
const (
	defaultRecommendLimit = 10
	maxRecommendLimit     = 50
)

type RecommendController struct {
	RecommendUsecase scene_book_route_interface.RecommendRouteRepository
}

func NewRecommendController(repo scene_book_route_interface.RecommendRouteRepository) *RecommendController {
	return &RecommendController{
		RecommendUsecase: repo,
	}
}

// requestUserId 认证中间件注入的用户ID
func requestUserId(ctx *gin.Context) string {
	return ctx.GetString("x-user-id")
}

// GetRecommendations 个性化推荐
// GET /recommendations?algorithm=hybrid&limit=10
func (c *RecommendController) GetRecommendations(ctx *gin.Context) {
	params := struct {
		Algorithm string `form:"algorithm"`
		Limit     string `form:"limit"`
	}{
		Algorithm: ctx.DefaultQuery("algorithm", scene_book_route_models.AlgorithmHybrid),
		Limit:     ctx.DefaultQuery("limit", strconv.Itoa(defaultRecommendLimit)),
	}

	userId := requestUserId(ctx)
	if userId == "" {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "缺少用户身份")
		return
	}

	switch params.Algorithm {
	case scene_book_route_models.AlgorithmHybrid,
		scene_book_route_models.AlgorithmCollaborative,
		scene_book_route_models.AlgorithmContent:
	default:
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ALGORITHM", "algorithm参数必须是hybrid、collaborative或content")
		return
	}

	// 验证limit参数
	limit, err := strconv.Atoi(params.Limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须是数字")
		return
	}
	if limit <= 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须大于0")
		return
	}
	if limit > maxRecommendLimit {
		limit = maxRecommendLimit
	}

	results, err := c.RecommendUsecase.Recommend(ctx.Request.Context(), userId, params.Algorithm, limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	if results == nil {
		results = []scene_book_route_models.RecommendationResult{}
	}

	ctx.JSON(http.StatusOK, scene_book_route_models.RecommendationResponse{
		Algorithm:       params.Algorithm,
		Count:           len(results),
		Recommendations: results,
	})
}

// GetSimilarUsers 相似用户查询
// GET /recommendations/similar_users?min_common_books=2&limit=10
func (c *RecommendController) GetSimilarUsers(ctx *gin.Context) {
	userId := requestUserId(ctx)
	if userId == "" {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "缺少用户身份")
		return
	}

	minCommon, err := strconv.Atoi(ctx.DefaultQuery("min_common_books", "2"))
	if err != nil || minCommon <= 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "min_common_books参数必须是正数")
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须是正数")
		return
	}

	users, err := c.RecommendUsecase.FindSimilarUsers(ctx.Request.Context(), userId, minCommon, limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	if users == nil {
		users = []scene_book_route_models.SimilarUser{}
	}

	controller.SuccessResponse(ctx, "similar_users", users, len(users))
}
