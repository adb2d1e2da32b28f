package scene_book_recommend_usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_util"
)

// 趋势成分参考的偏好体裁数
const trendingGenreTopN = 3

// recommendHybrid 混合推荐：协同过滤60% + 内容相似30% + 偏好体裁趋势10%
// 子算法按n*3超量取数，合并去重后统一截断归一化
// 书架为空的用户没有任何偏好信号，直接走纯趋势路径
func (ru *recommendUsecase) recommendHybrid(
	ctx context.Context,
	userId string,
	n int,
	exclude map[string]struct{},
	pref *preferenceSession,
) ([]scene_book_route_models.RecommendationResult, error) {
	weighted, err := pref.GetWeightedBooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(weighted) == 0 {
		return ru.trendingOnly(ctx, n, exclude)
	}

	topGenres, err := pref.GetTopGenres(ctx, trendingGenreTopN)
	if err != nil {
		return nil, err
	}

	collabRecs, err := ru.recommendCollaborative(ctx, userId, n*hybridFanOut, exclude, pref)
	if err != nil {
		return nil, err
	}
	contentRecs, err := ru.recommendContentBased(ctx, n*hybridFanOut, exclude, pref)
	if err != nil {
		return nil, err
	}

	combined := make(map[string]*scene_book_route_models.RecommendationResult)
	order := make([]string, 0, len(collabRecs)+len(contentRecs))

	for _, rec := range collabRecs {
		bookId := rec.Book.ID.Hex()
		combined[bookId] = &scene_book_route_models.RecommendationResult{
			Book:   rec.Book,
			Score:  rec.Score * hybridCollabWeight,
			Reason: rec.Reason,
		}
		order = append(order, bookId)
	}

	for _, rec := range contentRecs {
		bookId := rec.Book.ID.Hex()
		if existing, ok := combined[bookId]; ok {
			existing.Score += rec.Score * hybridContentWeight
			existing.Sources = rec.Sources
			continue
		}
		combined[bookId] = &scene_book_route_models.RecommendationResult{
			Book:    rec.Book,
			Score:   rec.Score * hybridContentWeight,
			Reason:  rec.Reason,
			Sources: rec.Sources,
		}
		order = append(order, bookId)
	}

	// 趋势成分：偏好体裁内近期交互量最高的书
	trendingBooks, err := ru.trendingInGenres(ctx, topGenres, n, exclude)
	if err != nil {
		return nil, err
	}
	for _, book := range trendingBooks {
		bookId := book.ID.Hex()
		if existing, ok := combined[bookId]; ok {
			existing.Score += hybridTrendingWeight
			continue
		}
		combined[bookId] = &scene_book_route_models.RecommendationResult{
			Book:   book,
			Score:  hybridTrendingWeight,
			Reason: fmt.Sprintf("体裁「%s」近期热门", book.Category),
		}
		order = append(order, bookId)
	}

	results := make([]scene_book_route_models.RecommendationResult, 0, len(order))
	for _, bookId := range order {
		results = append(results, *combined[bookId])
	}

	// 合并后的结果再过一遍排除集和封面门槛
	results = filterExcluded(results, exclude)
	results = filterValidCovers(results)
	sortByScoreDesc(results)
	results = truncateResults(results, n)
	normalizeScores(results)

	return results, nil
}

// trendingInGenres 时间窗口内偏好体裁的热门书，榜单为空时不做体裁过滤
func (ru *recommendUsecase) trendingInGenres(
	ctx context.Context,
	topGenres []scene_book_route_models.WeightRank,
	n int,
	exclude map[string]struct{},
) ([]scene_book_db_models.BookMetadata, error) {
	since := time.Now().Add(-trendingWindow)

	trending, err := ru.interactionRepository.GetTrendingBooks(ctx, since, n*hybridFanOut)
	if err != nil {
		return nil, fmt.Errorf("查询趋势书籍失败: %w", err)
	}

	bookIds := make([]string, 0, len(trending))
	for _, t := range trending {
		if _, skip := exclude[t.BookID]; skip {
			continue
		}
		bookIds = append(bookIds, t.BookID)
	}
	bookById, err := ru.fetchBookMap(ctx, bookIds)
	if err != nil {
		return nil, err
	}

	genreKeys := make(map[string]struct{}, len(topGenres))
	for _, g := range topGenres {
		genreKeys[domain_util.MatchKey(g.Key)] = struct{}{}
	}

	books := make([]scene_book_db_models.BookMetadata, 0, n)
	for _, bookId := range bookIds {
		book, ok := bookById[bookId]
		if !ok || !book.HasValidCover() {
			continue
		}
		if len(genreKeys) > 0 {
			if _, match := genreKeys[domain_util.MatchKey(book.Category)]; !match {
				continue
			}
		}
		books = append(books, book)
		if len(books) >= n {
			break
		}
	}

	return books, nil
}

// trendingOnly 空书架路径：无任何偏好信号，按窗口内交互量归一化打分
func (ru *recommendUsecase) trendingOnly(
	ctx context.Context,
	n int,
	exclude map[string]struct{},
) ([]scene_book_route_models.RecommendationResult, error) {
	since := time.Now().Add(-trendingWindow)

	trending, err := ru.interactionRepository.GetTrendingBooks(ctx, since, n*hybridFanOut)
	if err != nil {
		return nil, fmt.Errorf("查询趋势书籍失败: %w", err)
	}
	if len(trending) == 0 {
		return nil, nil
	}

	maxCount := trending[0].Count
	for _, t := range trending {
		if t.Count > maxCount {
			maxCount = t.Count
		}
	}

	bookIds := make([]string, 0, len(trending))
	for _, t := range trending {
		if _, skip := exclude[t.BookID]; skip {
			continue
		}
		bookIds = append(bookIds, t.BookID)
	}
	bookById, err := ru.fetchBookMap(ctx, bookIds)
	if err != nil {
		return nil, err
	}

	results := make([]scene_book_route_models.RecommendationResult, 0, len(trending))
	for _, t := range trending {
		book, ok := bookById[t.BookID]
		if !ok {
			continue
		}
		results = append(results, scene_book_route_models.RecommendationResult{
			Book:   book,
			Score:  float64(t.Count) / float64(maxCount),
			Reason: "近期热门书籍",
		})
	}

	results = filterValidCovers(results)
	sortByScoreDesc(results)
	results = truncateResults(results, n)
	normalizeScores(results)

	return results, nil
}
