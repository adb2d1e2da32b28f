package scene_book_route_api_controller

import (
	"net/http"
	"strconv"

	"github.com/cgbookstore/go-backend-clean-architecture/api/controller"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_interface"
	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	PreferenceUsecase scene_book_route_interface.PreferenceRouteRepository
}

func NewPreferenceController(repo scene_book_route_interface.PreferenceRouteRepository) *PreferenceController {
	return &PreferenceController{
		PreferenceUsecase: repo,
	}
}

// GetPreferenceProfile 用户偏好画像
// GET /preference/profile
func (c *PreferenceController) GetPreferenceProfile(ctx *gin.Context) {
	userId := requestUserId(ctx)
	if userId == "" {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "缺少用户身份")
		return
	}

	profile, err := c.PreferenceUsecase.GetPreferenceProfile(ctx.Request.Context(), userId)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "profile", profile, profile.TotalBooks)
}

// GetTopGenres 偏好体裁榜单
// GET /preference/genres?limit=5
func (c *PreferenceController) GetTopGenres(ctx *gin.Context) {
	userId := requestUserId(ctx)
	if userId == "" {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "缺少用户身份")
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须是正数")
		return
	}

	genres, err := c.PreferenceUsecase.GetTopGenres(ctx.Request.Context(), userId, limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "genres", genres, len(genres))
}

// GetTopAuthors 偏好作者榜单
// GET /preference/authors?limit=5
func (c *PreferenceController) GetTopAuthors(ctx *gin.Context) {
	userId := requestUserId(ctx)
	if userId == "" {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "缺少用户身份")
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须是正数")
		return
	}

	authors, err := c.PreferenceUsecase.GetTopAuthors(ctx.Request.Context(), userId, limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "authors", authors, len(authors))
}

// ScoreBook 按偏好画像给单本书打分
// GET /preference/score?book_id=xxx
func (c *PreferenceController) ScoreBook(ctx *gin.Context) {
	userId := requestUserId(ctx)
	if userId == "" {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "缺少用户身份")
		return
	}

	bookId := ctx.Query("book_id")
	if bookId == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "book_id参数是必需的")
		return
	}

	score, reasons, err := c.PreferenceUsecase.ScoreBookByPreference(ctx.Request.Context(), userId, bookId)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	if reasons == nil {
		reasons = []string{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"book_id": bookId,
		"score":   score,
		"reasons": reasons,
	})
}
