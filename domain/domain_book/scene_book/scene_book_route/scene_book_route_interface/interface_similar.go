package scene_book_route_interface

import (
	"context"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
)

// SimilarRouteRepository 相似书籍查询（相似度矩阵的只读出口）
type SimilarRouteRepository interface {
	GetSimilarBooks(ctx context.Context, bookId string, n int) ([]scene_book_route_models.RecommendationResult, error)
}
