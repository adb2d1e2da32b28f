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

// 偏好画像取top数量
const profileTopN = 5

// 书架类型的展示名
var shelfDisplayNames = map[string]string{
	scene_book_db_models.ShelfTypeFavorites: "收藏",
	scene_book_db_models.ShelfTypeRead:      "已读",
	scene_book_db_models.ShelfTypeReading:   "在读",
	scene_book_db_models.ShelfTypeToRead:    "想读",
	scene_book_db_models.ShelfTypeAbandoned: "弃读",
	scene_book_db_models.ShelfTypeCustom:    "自定义书架",
}

type preferenceUsecase struct {
	shelfRepository scene_book_db_interface.ShelfDBRepository
	bookRepository  scene_book_db_interface.BookDBRepository
	contextTimeout  time.Duration
}

func NewPreferenceUsecase(
	shelfRepository scene_book_db_interface.ShelfDBRepository,
	bookRepository scene_book_db_interface.BookDBRepository,
	timeout time.Duration,
) scene_book_route_interface.PreferenceRouteRepository {
	return &preferenceUsecase{
		shelfRepository: shelfRepository,
		bookRepository:  bookRepository,
		contextTimeout:  timeout,
	}
}

// buildWeightedBooks 拉取书架记录并构建加权书单
func (pu *preferenceUsecase) buildWeightedBooks(
	ctx context.Context,
	userId string,
) ([]scene_book_route_models.WeightedBookItem, error) {
	entries, err := pu.shelfRepository.GetUserShelfEntries(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("获取用户书架失败: %w", err)
	}

	return assembleWeightedBooks(ctx, pu.bookRepository, entries)
}

// assembleWeightedBooks 从书架记录构建加权书单，后续所有偏好分析都从这份数据派生
// 规则：
// 1. 同一本书出现在多个书架时取最高权重的那条
// 2. 弃读（权重0）不进入加权书单，仅用于排除
// 3. 缺失元数据的书籍直接跳过
// 4. 结果按权重降序，同权重保持书架记录的时间序
func assembleWeightedBooks(
	ctx context.Context,
	bookRepository scene_book_db_interface.BookDBRepository,
	entries []scene_book_db_models.ShelfEntryMetadata,
) ([]scene_book_route_models.WeightedBookItem, error) {
	type shelfPick struct {
		weight    float64
		shelfType string
		shelfName string
	}

	picks := make(map[string]shelfPick)
	order := make([]string, 0, len(entries))

	for _, entry := range entries {
		weight, err := scene_book_route_models.ShelfWeight(entry.ShelfType)
		if err != nil {
			return nil, err
		}

		existing, seen := picks[entry.BookID]
		if !seen {
			order = append(order, entry.BookID)
		}
		if !seen || weight > existing.weight {
			picks[entry.BookID] = shelfPick{
				weight:    weight,
				shelfType: entry.ShelfType,
				shelfName: entry.ShelfName,
			}
		}
	}

	weightedIds := make([]string, 0, len(order))
	for _, bookId := range order {
		if picks[bookId].weight > 0 {
			weightedIds = append(weightedIds, bookId)
		}
	}
	if len(weightedIds) == 0 {
		return nil, nil
	}

	books, err := bookRepository.GetByIDs(ctx, weightedIds)
	if err != nil {
		return nil, fmt.Errorf("获取书架书籍元数据失败: %w", err)
	}

	bookById := make(map[string]scene_book_db_models.BookMetadata, len(books))
	for _, book := range books {
		bookById[book.ID.Hex()] = book
	}

	items := make([]scene_book_route_models.WeightedBookItem, 0, len(weightedIds))
	for _, bookId := range weightedIds {
		book, ok := bookById[bookId]
		if !ok {
			continue
		}
		pick := picks[bookId]

		display := shelfDisplayNames[pick.shelfType]
		if pick.shelfType == scene_book_db_models.ShelfTypeCustom && pick.shelfName != "" {
			display = pick.shelfName
		}

		items = append(items, scene_book_route_models.WeightedBookItem{
			Book:      book,
			Weight:    pick.weight,
			ShelfType: pick.shelfType,
			Reason:    fmt.Sprintf("基于「%s」书架（%.0f%%影响力）", display, pick.weight*100),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Weight > items[j].Weight
	})

	return items, nil
}

func (pu *preferenceUsecase) GetWeightedBooks(
	ctx context.Context,
	userId string,
) ([]scene_book_route_models.WeightedBookItem, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	return pu.buildWeightedBooks(ctx, userId)
}

// rankByField 按字段累计权重并取top-k
// 键用MatchKey归一化（忽略大小写和变音符号），展示用首次出现的原始写法
func rankByField(
	items []scene_book_route_models.WeightedBookItem,
	k int,
	field func(*scene_book_db_models.BookMetadata) string,
) []scene_book_route_models.WeightRank {
	type bucket struct {
		display string
		weight  float64
		count   int
	}

	buckets := make(map[string]*bucket)
	for i := range items {
		value := field(&items[i].Book)
		if value == "" {
			continue
		}

		key := domain_util.MatchKey(value)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{display: value}
			buckets[key] = b
		}
		b.weight += items[i].Weight
		b.count++
	}

	keys := make([]domain_util.WeightedKey, 0, len(buckets))
	for _, b := range buckets {
		keys = append(keys, domain_util.WeightedKey{
			Key:    b.display,
			Weight: b.weight,
			Count:  b.count,
		})
	}

	top := domain_util.TopKByWeight(keys, k)
	ranks := make([]scene_book_route_models.WeightRank, 0, len(top))
	for _, t := range top {
		ranks = append(ranks, scene_book_route_models.WeightRank{
			Key:    t.Key,
			Weight: t.Weight,
			Count:  t.Count,
		})
	}

	return ranks
}

func (pu *preferenceUsecase) GetTopGenres(
	ctx context.Context,
	userId string,
	n int,
) ([]scene_book_route_models.WeightRank, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	items, err := pu.buildWeightedBooks(ctx, userId)
	if err != nil {
		return nil, err
	}

	return rankByField(items, n, func(b *scene_book_db_models.BookMetadata) string {
		return b.Category
	}), nil
}

func (pu *preferenceUsecase) GetTopAuthors(
	ctx context.Context,
	userId string,
	n int,
) ([]scene_book_route_models.WeightRank, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	items, err := pu.buildWeightedBooks(ctx, userId)
	if err != nil {
		return nil, err
	}

	return rankByField(items, n, func(b *scene_book_db_models.BookMetadata) string {
		return b.Author
	}), nil
}

func (pu *preferenceUsecase) GetPreferenceProfile(
	ctx context.Context,
	userId string,
) (*scene_book_route_models.PreferenceProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	items, err := pu.buildWeightedBooks(ctx, userId)
	if err != nil {
		return nil, err
	}

	totalWeight := 0.0
	distribution := make(map[string]int)
	for _, item := range items {
		totalWeight += item.Weight
		distribution[item.ShelfType]++
	}

	return &scene_book_route_models.PreferenceProfile{
		TopGenres: rankByField(items, profileTopN, func(b *scene_book_db_models.BookMetadata) string {
			return b.Category
		}),
		TopAuthors: rankByField(items, profileTopN, func(b *scene_book_db_models.BookMetadata) string {
			return b.Author
		}),
		TotalBooks:        len(items),
		TotalWeight:       totalWeight,
		ShelfDistribution: distribution,
	}, nil
}

// ScoreBookByPreference 按偏好画像给单本书打分
// 评分项：
// - 作者在top5偏好作者中：最高+0.3，按排名衰减
// - 体裁在top5偏好体裁中：最高+0.3，按排名衰减
// - 与某本收藏同作者：+0.2
// - 与某本收藏同体裁：+0.2
// 总分封顶1.0
func (pu *preferenceUsecase) ScoreBookByPreference(
	ctx context.Context,
	userId string,
	bookId string,
) (float64, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	if bookId == "" {
		return 0, nil, fmt.Errorf("book_id参数是必需的")
	}

	book, err := pu.bookRepository.GetByID(ctx, bookId)
	if err != nil {
		return 0, nil, fmt.Errorf("书籍不存在: %w", err)
	}

	items, err := pu.buildWeightedBooks(ctx, userId)
	if err != nil {
		return 0, nil, err
	}

	topGenres := rankByField(items, profileTopN, func(b *scene_book_db_models.BookMetadata) string {
		return b.Category
	})
	topAuthors := rankByField(items, profileTopN, func(b *scene_book_db_models.BookMetadata) string {
		return b.Author
	})

	score := 0.0
	var reasons []string

	if rank := matchRank(topAuthors, book.Author); rank > 0 {
		score += rankDecayScore(maxRankScore, rank, len(topAuthors))
		reasons = append(reasons, fmt.Sprintf("偏好作者#%d", rank))
	}

	if rank := matchRank(topGenres, book.Category); rank > 0 {
		score += rankDecayScore(maxRankScore, rank, len(topGenres))
		reasons = append(reasons, fmt.Sprintf("偏好体裁#%d", rank))
	}

	bookAuthor := domain_util.MatchKey(book.Author)
	bookGenre := domain_util.MatchKey(book.Category)

	for _, item := range items {
		if item.ShelfType != scene_book_db_models.ShelfTypeFavorites {
			continue
		}
		if bookAuthor != "" && domain_util.MatchKey(item.Book.Author) == bookAuthor {
			score += favoriteMatchBonus
			reasons = append(reasons, fmt.Sprintf("与收藏《%s》同作者", item.Book.Title))
			break
		}
	}

	for _, item := range items {
		if item.ShelfType != scene_book_db_models.ShelfTypeFavorites {
			continue
		}
		if bookGenre != "" && domain_util.MatchKey(item.Book.Category) == bookGenre {
			score += favoriteMatchBonus
			reasons = append(reasons, fmt.Sprintf("与收藏《%s》同体裁", item.Book.Title))
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}

	return score, reasons, nil
}

// matchRank 返回value在榜单中的排名（1起），不在榜单返回0
func matchRank(ranks []scene_book_route_models.WeightRank, value string) int {
	if value == "" {
		return 0
	}
	key := domain_util.MatchKey(value)
	for i, r := range ranks {
		if domain_util.MatchKey(r.Key) == key {
			return i + 1
		}
	}
	return 0
}

// rankDecayScore 排名线性衰减：第1名得满分max，之后每名递减max/size
func rankDecayScore(max float64, rank int, size int) float64 {
	if size <= 0 {
		return 0
	}
	return max * (1.0 - float64(rank-1)/float64(size))
}
