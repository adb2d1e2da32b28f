package scene_book_recommend_usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
)

type similarBooksUsecase struct {
	bookRepository       scene_book_db_interface.BookDBRepository
	similarityRepository scene_book_db_interface.SimilarityDBRepository
	contextTimeout       time.Duration
}

func NewSimilarBooksUsecase(
	bookRepository scene_book_db_interface.BookDBRepository,
	similarityRepository scene_book_db_interface.SimilarityDBRepository,
	timeout time.Duration,
) scene_book_route_interface.SimilarRouteRepository {
	return &similarBooksUsecase{
		bookRepository:       bookRepository,
		similarityRepository: similarityRepository,
		contextTimeout:       timeout,
	}
}

// GetSimilarBooks 查询与指定书籍最相似的n本书
// 分数是相似度矩阵的原始值，不做归一化；超量抓取为封面过滤留余量
func (su *similarBooksUsecase) GetSimilarBooks(
	ctx context.Context,
	bookId string,
	n int,
) ([]scene_book_route_models.RecommendationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	if _, err := su.bookRepository.GetByID(ctx, bookId); err != nil {
		return nil, fmt.Errorf("书籍不存在: %w", err)
	}

	similar, err := su.similarityRepository.FindSimilarBooks(ctx, bookId, n*2)
	if err != nil {
		return nil, fmt.Errorf("查询相似书籍失败: %w", err)
	}
	if len(similar) == 0 {
		return nil, nil
	}

	bookIds := make([]string, 0, len(similar))
	for _, s := range similar {
		bookIds = append(bookIds, s.BookID)
	}
	books, err := su.bookRepository.GetByIDs(ctx, bookIds)
	if err != nil {
		return nil, err
	}
	bookById := make(map[string]int, len(books))
	for i, b := range books {
		bookById[b.ID.Hex()] = i
	}

	results := make([]scene_book_route_models.RecommendationResult, 0, n)
	for _, s := range similar {
		idx, ok := bookById[s.BookID]
		if !ok || !books[idx].HasValidCover() {
			continue
		}
		results = append(results, scene_book_route_models.RecommendationResult{
			Book:   books[idx],
			Score:  s.Score,
			Reason: fmt.Sprintf("内容相似度%.0f%%", s.Score*100),
		})
		if len(results) >= n {
			break
		}
	}

	return results, nil
}
