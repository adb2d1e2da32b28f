package scene_book_recommend_usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
)

// 热门降级的超量抓取倍数
const popularFetchMultiplier = 3

// recommendCollaborative 协同过滤："读过你收藏书籍的人还读了什么"
// 流程：
// 1. 以优先层级书籍（收藏+已读）为锚点找相似用户
// 2. 聚合相似用户的高置信度交互书籍，排除用户书架上的一切书籍
// 3. 按交互人数归一化打分，再叠加偏好体裁/作者加成
// 4. 封面过滤后不足n本时渐进扩大抓取量重试
// 冷启动（无相似用户）降级为全站热门
func (ru *recommendUsecase) recommendCollaborative(
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

	similarUsers, err := ru.findSimilarUserIds(ctx, userId, weighted)
	if err != nil {
		return nil, err
	}
	if len(similarUsers) == 0 {
		log.Printf("用户[%s]无相似用户，降级为全站热门", userId)
		return ru.popularFallback(ctx, n, exclude)
	}

	topGenres, err := pref.GetTopGenres(ctx, boostTopN)
	if err != nil {
		return nil, err
	}
	topAuthors, err := pref.GetTopAuthors(ctx, boostTopN)
	if err != nil {
		return nil, err
	}

	excluded := excludeKeys(exclude)

	var results []scene_book_route_models.RecommendationResult
	multiplier := fetchMultiplierStart

	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		candidates, err := ru.interactionRepository.GetBooksOfUsers(
			ctx,
			similarUsers,
			scene_book_db_models.HighConfidenceInteractionTypes,
			excluded,
			n*multiplier,
		)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			break
		}

		maxCount := candidates[0].Count
		for _, c := range candidates {
			if c.Count > maxCount {
				maxCount = c.Count
			}
		}

		bookIds := make([]string, 0, len(candidates))
		for _, c := range candidates {
			bookIds = append(bookIds, c.BookID)
		}
		bookById, err := ru.fetchBookMap(ctx, bookIds)
		if err != nil {
			return nil, err
		}

		results = results[:0]
		for _, c := range candidates {
			book, ok := bookById[c.BookID]
			if !ok {
				continue
			}

			base := float64(c.Count) / float64(maxCount)
			boost, boostReasons := ru.preferenceBoost(&book, topGenres, topAuthors)

			score := base + boost
			if score > 1.0 {
				score = 1.0
			}

			reason := fmt.Sprintf("%d位相似用户也读过", c.Count)
			if len(boostReasons) > 0 {
				reason += fmt.Sprintf("；加成: %s (+%.0f%%)", strings.Join(boostReasons, "、"), boost*100)
			}

			results = append(results, scene_book_route_models.RecommendationResult{
				Book:   book,
				Score:  score,
				Reason: reason,
			})
		}

		results = filterValidCovers(results)
		if len(results) >= n {
			break
		}

		multiplier += fetchMultiplierStep
		log.Printf("协同过滤第%d轮仅得到%d本有效封面书籍（需要%d本），扩大抓取量重试", attempt+1, len(results), n)
	}

	sortByScoreDesc(results)
	results = truncateResults(results, n)
	normalizeScores(results)

	return results, nil
}

// findSimilarUserIds 查找相似用户ID列表，加权书单不足最小共同数时直接视为冷启动
func (ru *recommendUsecase) findSimilarUserIds(
	ctx context.Context,
	userId string,
	weighted []scene_book_route_models.WeightedBookItem,
) ([]string, error) {
	if len(weighted) < defaultMinCommonBooks {
		return nil, nil
	}

	overlaps, err := ru.interactionRepository.GetOverlappingUsers(
		ctx,
		userId,
		priorityBookIds(weighted),
		scene_book_db_models.HighConfidenceInteractionTypes,
		defaultMinCommonBooks,
		defaultSimilarUserLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("查找相似用户失败: %w", err)
	}

	ids := make([]string, 0, len(overlaps))
	for _, o := range overlaps {
		ids = append(ids, o.UserID)
	}
	return ids, nil
}

// preferenceBoost 偏好加成：候选书命中top体裁/作者榜单时按排名线性衰减加分
func (ru *recommendUsecase) preferenceBoost(
	book *scene_book_db_models.BookMetadata,
	topGenres []scene_book_route_models.WeightRank,
	topAuthors []scene_book_route_models.WeightRank,
) (float64, []string) {
	boost := 0.0
	var reasons []string

	if rank := matchRank(topGenres, book.Category); rank > 0 {
		boost += rankDecayScore(maxRankScore, rank, len(topGenres))
		reasons = append(reasons, fmt.Sprintf("偏好体裁#%d", rank))
	}
	if rank := matchRank(topAuthors, book.Author); rank > 0 {
		boost += rankDecayScore(maxRankScore, rank, len(topAuthors))
		reasons = append(reasons, fmt.Sprintf("偏好作者#%d", rank))
	}

	return boost, reasons
}

// popularFallback 冷启动降级：全站交互量最高的书，排除集约束依然生效
func (ru *recommendUsecase) popularFallback(
	ctx context.Context,
	n int,
	exclude map[string]struct{},
) ([]scene_book_route_models.RecommendationResult, error) {
	popular, err := ru.interactionRepository.GetPopularBooks(ctx, n*popularFetchMultiplier)
	if err != nil {
		return nil, fmt.Errorf("查询热门书籍失败: %w", err)
	}
	if len(popular) == 0 {
		return nil, nil
	}

	maxCount := popular[0].Count
	for _, p := range popular {
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}

	bookIds := make([]string, 0, len(popular))
	for _, p := range popular {
		if _, skip := exclude[p.BookID]; skip {
			continue
		}
		bookIds = append(bookIds, p.BookID)
	}
	bookById, err := ru.fetchBookMap(ctx, bookIds)
	if err != nil {
		return nil, err
	}

	results := make([]scene_book_route_models.RecommendationResult, 0, len(bookIds))
	for _, p := range popular {
		book, ok := bookById[p.BookID]
		if !ok {
			continue
		}
		results = append(results, scene_book_route_models.RecommendationResult{
			Book:   book,
			Score:  float64(p.Count) / float64(maxCount),
			Reason: "全站热门书籍",
		})
	}

	results = filterValidCovers(results)
	sortByScoreDesc(results)
	results = truncateResults(results, n)
	normalizeScores(results)

	return results, nil
}
