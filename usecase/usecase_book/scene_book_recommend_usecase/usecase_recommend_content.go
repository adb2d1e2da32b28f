package scene_book_recommend_usecase

import (
	"context"
	"fmt"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
)

// contentSimilarLimit 按书架权重决定每本源书取多少相似书
// 收藏(0.5)取20本，已读(0.3)取13本，在读(0.15)取9本，想读(0.05)取6本
func contentSimilarLimit(weight float64) int {
	return 5 + int(weight*30)
}

// recommendContentBased 内容相似推荐："和你书架上的书相似的书"
// 每本源书从预计算相似度矩阵取相似候选，相似度按源书所在书架的权重折算后累加，
// 多本源书共同指向的候选自然获得更高累计分
func (ru *recommendUsecase) recommendContentBased(
	ctx context.Context,
	n int,
	exclude map[string]struct{},
	pref *preferenceSession,
) ([]scene_book_route_models.RecommendationResult, error) {
	weighted, err := pref.GetWeightedBooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(weighted) == 0 {
		return nil, nil
	}

	type accumulated struct {
		score   float64
		sources []scene_book_route_models.ScoreSource
	}

	acc := make(map[string]*accumulated)
	order := make([]string, 0)

	for _, item := range weighted {
		sourceId := item.Book.ID.Hex()

		similar, err := ru.similarityRepository.FindSimilarBooks(ctx, sourceId, contentSimilarLimit(item.Weight))
		if err != nil {
			return nil, fmt.Errorf("查询相似书籍失败: %w", err)
		}

		for _, sim := range similar {
			if _, skip := exclude[sim.BookID]; skip {
				continue
			}

			a, ok := acc[sim.BookID]
			if !ok {
				a = &accumulated{}
				acc[sim.BookID] = a
				order = append(order, sim.BookID)
			}

			contribution := sim.Score * item.Weight
			a.score += contribution
			a.sources = append(a.sources, scene_book_route_models.ScoreSource{
				SourceBookID: sourceId,
				SourceTitle:  item.Book.Title,
				ShelfType:    item.ShelfType,
				Weight:       item.Weight,
				Contribution: contribution,
			})
		}
	}

	if len(order) == 0 {
		return nil, nil
	}

	bookById, err := ru.fetchBookMap(ctx, order)
	if err != nil {
		return nil, err
	}

	results := make([]scene_book_route_models.RecommendationResult, 0, len(order))
	for _, bookId := range order {
		book, ok := bookById[bookId]
		if !ok {
			continue
		}

		a := acc[bookId]
		top := a.sources[0]
		for _, s := range a.sources {
			if s.Contribution > top.Contribution {
				top = s
			}
		}

		results = append(results, scene_book_route_models.RecommendationResult{
			Book:    book,
			Score:   a.score,
			Reason:  fmt.Sprintf("与《%s》相似（%s书架，权重%.0f%%）", top.SourceTitle, shelfDisplayNames[top.ShelfType], top.Weight*100),
			Sources: a.sources,
		})
	}

	results = filterValidCovers(results)
	sortByScoreDesc(results)
	results = truncateResults(results, n)
	normalizeScores(results)

	return results, nil
}
