package scene_book_recommend_usecase

import (
	"context"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
)

// preferenceSession 单次推荐请求内的偏好分析会话
// 加权书单与榜单在会话内只计算一次，各算法成分共用同一份结果，
// 避免同一请求反复拉取书架记录和书籍元数据
// 只在单个请求的生命周期内使用，不做并发保护
type preferenceSession struct {
	bookRepository scene_book_db_interface.BookDBRepository
	entries        []scene_book_db_models.ShelfEntryMetadata

	weighted     []scene_book_route_models.WeightedBookItem
	weightedDone bool
	genres       map[int][]scene_book_route_models.WeightRank
	authors      map[int][]scene_book_route_models.WeightRank
}

func newPreferenceSession(
	bookRepository scene_book_db_interface.BookDBRepository,
	entries []scene_book_db_models.ShelfEntryMetadata,
) *preferenceSession {
	return &preferenceSession{
		bookRepository: bookRepository,
		entries:        entries,
		genres:         make(map[int][]scene_book_route_models.WeightRank),
		authors:        make(map[int][]scene_book_route_models.WeightRank),
	}
}

func (ps *preferenceSession) GetWeightedBooks(
	ctx context.Context,
) ([]scene_book_route_models.WeightedBookItem, error) {
	if ps.weightedDone {
		return ps.weighted, nil
	}

	items, err := assembleWeightedBooks(ctx, ps.bookRepository, ps.entries)
	if err != nil {
		return nil, err
	}

	ps.weighted = items
	ps.weightedDone = true
	return items, nil
}

func (ps *preferenceSession) GetTopGenres(
	ctx context.Context,
	n int,
) ([]scene_book_route_models.WeightRank, error) {
	if ranks, ok := ps.genres[n]; ok {
		return ranks, nil
	}

	items, err := ps.GetWeightedBooks(ctx)
	if err != nil {
		return nil, err
	}

	ranks := rankByField(items, n, func(b *scene_book_db_models.BookMetadata) string {
		return b.Category
	})
	ps.genres[n] = ranks
	return ranks, nil
}

func (ps *preferenceSession) GetTopAuthors(
	ctx context.Context,
	n int,
) ([]scene_book_route_models.WeightRank, error) {
	if ranks, ok := ps.authors[n]; ok {
		return ranks, nil
	}

	items, err := ps.GetWeightedBooks(ctx)
	if err != nil {
		return nil, err
	}

	ranks := rankByField(items, n, func(b *scene_book_db_models.BookMetadata) string {
		return b.Author
	})
	ps.authors[n] = ranks
	return ranks, nil
}
