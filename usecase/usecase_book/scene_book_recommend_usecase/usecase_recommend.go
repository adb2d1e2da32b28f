package scene_book_recommend_usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_util"
)

// 推荐引擎参数
const (
	// 协同过滤
	defaultMinCommonBooks   = 2                                         // 相似用户最少共同书籍数
	defaultSimilarUserLimit = 10                                        // 相似用户上限
	priorityShelfWeight     = scene_book_route_models.ShelfWeightRead   // 优先层级阈值：收藏+已读
	fetchMultiplierStart    = 4                                         // 候选抓取初始倍数
	fetchMultiplierStep     = 2                                         // 每轮扩大抓取的增量
	maxFetchAttempts        = 3                                         // 渐进扩大抓取的最大轮数

	// 偏好加成
	maxRankScore       = 0.3 // 榜单命中的最高加成
	favoriteMatchBonus = 0.2 // 与收藏同作者/同体裁的加成
	boostTopN          = 3   // 协同加成参考的榜单长度

	// 混合组合
	hybridCollabWeight   = 0.6
	hybridContentWeight  = 0.3
	hybridTrendingWeight = 0.1
	hybridFanOut         = 3 // 子算法按n*3超量取数，为过滤和去重留余量

	// 趋势窗口
	trendingWindow = 7 * 24 * time.Hour
)

type recommendUsecase struct {
	shelfRepository       scene_book_db_interface.ShelfDBRepository
	bookRepository        scene_book_db_interface.BookDBRepository
	interactionRepository scene_book_db_interface.InteractionDBRepository
	similarityRepository  scene_book_db_interface.SimilarityDBRepository
	cache                 scene_book_route_interface.CacheRepository
	cacheTTL              time.Duration
	contextTimeout        time.Duration
}

func NewRecommendUsecase(
	shelfRepository scene_book_db_interface.ShelfDBRepository,
	bookRepository scene_book_db_interface.BookDBRepository,
	interactionRepository scene_book_db_interface.InteractionDBRepository,
	similarityRepository scene_book_db_interface.SimilarityDBRepository,
	cache scene_book_route_interface.CacheRepository,
	cacheTTL time.Duration,
	timeout time.Duration,
) scene_book_route_interface.RecommendRouteRepository {
	return &recommendUsecase{
		shelfRepository:       shelfRepository,
		bookRepository:        bookRepository,
		interactionRepository: interactionRepository,
		similarityRepository:  similarityRepository,
		cache:                 cache,
		cacheTTL:              cacheTTL,
		contextTimeout:        timeout,
	}
}

// Recommend 推荐入口：查缓存 -> 分发算法 -> 回填缓存
// 缓存键必须携带书架状态指纹，保证上架/下架后旧缓存立即失效
// 缓存未命中只是hit=false，走到错误分支的都是基础设施故障，照常上抛
func (ru *recommendUsecase) Recommend(
	ctx context.Context,
	userId string,
	algorithm string,
	n int,
) ([]scene_book_route_models.RecommendationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	if userId == "" {
		return nil, fmt.Errorf("user_id参数是必需的")
	}
	if n <= 0 {
		return nil, fmt.Errorf("参数n必须为正数")
	}

	entries, err := ru.shelfRepository.GetUserShelfEntries(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("获取用户书架失败: %w", err)
	}

	cacheKey := recommendCacheKey(userId, algorithm, n, entries)

	var cached []scene_book_route_models.RecommendationResult
	hit, err := ru.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		return nil, fmt.Errorf("读取推荐缓存失败: %w", err)
	}
	if hit {
		return cached, nil
	}

	exclude := shelfExclusionSet(entries)
	pref := newPreferenceSession(ru.bookRepository, entries)

	var results []scene_book_route_models.RecommendationResult
	switch algorithm {
	case scene_book_route_models.AlgorithmHybrid:
		results, err = ru.recommendHybrid(ctx, userId, n, exclude, pref)
	case scene_book_route_models.AlgorithmCollaborative:
		results, err = ru.recommendCollaborative(ctx, userId, n, exclude, pref)
	case scene_book_route_models.AlgorithmContent:
		results, err = ru.recommendContentBased(ctx, n, exclude, pref)
	default:
		return nil, fmt.Errorf("不支持的推荐算法: %s", algorithm)
	}
	if err != nil {
		return nil, err
	}

	if err := ru.cache.Set(ctx, cacheKey, results, ru.cacheTTL); err != nil {
		return nil, fmt.Errorf("写入推荐缓存失败: %w", err)
	}

	return results, nil
}

// FindSimilarUsers 基于优先层级书籍（收藏+已读）查找行为相似的用户
func (ru *recommendUsecase) FindSimilarUsers(
	ctx context.Context,
	userId string,
	minCommonBooks int,
	limit int,
) ([]scene_book_route_models.SimilarUser, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	if userId == "" {
		return nil, fmt.Errorf("user_id参数是必需的")
	}
	if minCommonBooks <= 0 {
		minCommonBooks = defaultMinCommonBooks
	}
	if limit <= 0 {
		limit = defaultSimilarUserLimit
	}

	entries, err := ru.shelfRepository.GetUserShelfEntries(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("获取用户书架失败: %w", err)
	}

	weighted, err := newPreferenceSession(ru.bookRepository, entries).GetWeightedBooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(weighted) < minCommonBooks {
		return nil, nil
	}

	overlaps, err := ru.interactionRepository.GetOverlappingUsers(
		ctx,
		userId,
		priorityBookIds(weighted),
		scene_book_db_models.HighConfidenceInteractionTypes,
		minCommonBooks,
		limit,
	)
	if err != nil {
		return nil, err
	}

	users := make([]scene_book_route_models.SimilarUser, 0, len(overlaps))
	for _, o := range overlaps {
		users = append(users, scene_book_route_models.SimilarUser{
			UserID:      o.UserID,
			CommonBooks: o.CommonBooks,
		})
	}

	return users, nil
}

// ============== 共享辅助 ==============

// recommendCacheKey 缓存键: rec:<算法>:<用户>:<数量>:<书架指纹>
func recommendCacheKey(
	userId string,
	algorithm string,
	n int,
	entries []scene_book_db_models.ShelfEntryMetadata,
) string {
	pairs := make([]domain_util.ShelfStatePair, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, domain_util.ShelfStatePair{
			BookID:    e.BookID,
			ShelfType: e.ShelfType,
		})
	}
	return fmt.Sprintf("rec:%s:%s:%d:%s", algorithm, userId, n, domain_util.ShelfFingerprint(pairs))
}

// shelfExclusionSet 排除集：用户任何书架上的书（含弃读）一律不得出现在推荐结果中
func shelfExclusionSet(entries []scene_book_db_models.ShelfEntryMetadata) map[string]struct{} {
	exclude := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		exclude[e.BookID] = struct{}{}
	}
	return exclude
}

func excludeKeys(exclude map[string]struct{}) []string {
	keys := make([]string, 0, len(exclude))
	for k := range exclude {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// priorityBookIds 优先层级书籍：权重>=0.30（收藏+已读）；全部不满足时回退到整个加权书单
func priorityBookIds(weighted []scene_book_route_models.WeightedBookItem) []string {
	ids := make([]string, 0, len(weighted))
	for _, item := range weighted {
		if item.Weight >= priorityShelfWeight {
			ids = append(ids, item.Book.ID.Hex())
		}
	}
	if len(ids) == 0 {
		for _, item := range weighted {
			ids = append(ids, item.Book.ID.Hex())
		}
	}
	return ids
}

// fetchBookMap 批量拉元数据并按ID索引
func (ru *recommendUsecase) fetchBookMap(
	ctx context.Context,
	bookIds []string,
) (map[string]scene_book_db_models.BookMetadata, error) {
	books, err := ru.bookRepository.GetByIDs(ctx, bookIds)
	if err != nil {
		return nil, err
	}
	byId := make(map[string]scene_book_db_models.BookMetadata, len(books))
	for _, b := range books {
		byId[b.ID.Hex()] = b
	}
	return byId, nil
}

// filterExcluded 从结果中去掉排除集内的书
func filterExcluded(
	results []scene_book_route_models.RecommendationResult,
	exclude map[string]struct{},
) []scene_book_route_models.RecommendationResult {
	filtered := results[:0]
	for _, r := range results {
		if _, skip := exclude[r.Book.ID.Hex()]; skip {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// filterValidCovers 封面无效的书不进结果集
func filterValidCovers(
	results []scene_book_route_models.RecommendationResult,
) []scene_book_route_models.RecommendationResult {
	filtered := results[:0]
	for _, r := range results {
		if r.Book.HasValidCover() {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// sortByScoreDesc 按分数降序，同分按书籍ID排序保证可复现
func sortByScoreDesc(results []scene_book_route_models.RecommendationResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Book.ID.Hex() < results[j].Book.ID.Hex()
		}
		return results[i].Score > results[j].Score
	})
}

// normalizeScores 最大值归一化：非空结果集的最高分恒为1.0
func normalizeScores(results []scene_book_route_models.RecommendationResult) {
	if len(results) == 0 {
		return
	}
	max := 0.0
	for _, r := range results {
		if r.Score > max {
			max = r.Score
		}
	}
	if max <= 0 {
		return
	}
	for i := range results {
		results[i].Score = results[i].Score / max
		if results[i].Score > 1.0 {
			results[i].Score = 1.0
		}
	}
}

func truncateResults(
	results []scene_book_route_models.RecommendationResult,
	n int,
) []scene_book_route_models.RecommendationResult {
	if len(results) > n {
		return results[:n]
	}
	return results
}
