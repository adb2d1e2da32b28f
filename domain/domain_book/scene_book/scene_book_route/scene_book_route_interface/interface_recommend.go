package scene_book_route_interface

import (
	"context"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
)

// RecommendRouteRepository 推荐引擎对Web层暴露的唯一契约
type RecommendRouteRepository interface {
	// Recommend 生成个性化推荐，algorithm ∈ {hybrid, collaborative, content}
	Recommend(ctx context.Context, userId string, algorithm string, n int) ([]scene_book_route_models.RecommendationResult, error)

	// FindSimilarUsers 查找行为相似的用户（按共同书籍数降序）
	FindSimilarUsers(ctx context.Context, userId string, minCommonBooks int, limit int) ([]scene_book_route_models.SimilarUser, error)
}
