package scene_book_route_interface

import (
	"context"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
)

// PreferenceRouteRepository 偏好分析契约
// 纯读操作；实现允许在单次请求生命周期内缓存加权书单
type PreferenceRouteRepository interface {
	GetWeightedBooks(ctx context.Context, userId string) ([]scene_book_route_models.WeightedBookItem, error)
	GetTopGenres(ctx context.Context, userId string, n int) ([]scene_book_route_models.WeightRank, error)
	GetTopAuthors(ctx context.Context, userId string, n int) ([]scene_book_route_models.WeightRank, error)
	GetPreferenceProfile(ctx context.Context, userId string) (*scene_book_route_models.PreferenceProfile, error)
	ScoreBookByPreference(ctx context.Context, userId string, bookId string) (float64, []string, error)
}
