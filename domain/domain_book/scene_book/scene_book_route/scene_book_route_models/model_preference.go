package scene_book_route_models

import (
	"fmt"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
)

// 书架权重层级
// 收藏 > 已读 > 在读 > 自定义 > 想读；弃读永远是排除项，不参与任何加权
// 各权重表示独立的置信度，不要求相加等于1.0
const (
	ShelfWeightFavorites = 0.50
	ShelfWeightRead      = 0.30
	ShelfWeightReading   = 0.15
	ShelfWeightCustom    = 0.10
	ShelfWeightToRead    = 0.05
	ShelfWeightAbandoned = 0.0
)

var shelfWeights = map[string]float64{
	scene_book_db_models.ShelfTypeFavorites: ShelfWeightFavorites,
	scene_book_db_models.ShelfTypeRead:      ShelfWeightRead,
	scene_book_db_models.ShelfTypeReading:   ShelfWeightReading,
	scene_book_db_models.ShelfTypeToRead:    ShelfWeightToRead,
	scene_book_db_models.ShelfTypeCustom:    ShelfWeightCustom,
	scene_book_db_models.ShelfTypeAbandoned: ShelfWeightAbandoned,
}

// ShelfWeight 书架类型到权重的封闭映射，未知类型显式报错
func ShelfWeight(shelfType string) (float64, error) {
	weight, ok := shelfWeights[shelfType]
	if !ok {
		return 0, fmt.Errorf("未知的书架类型: %s", shelfType)
	}
	return weight, nil
}

// WeightedBookItem 偏好分析的基本输出单元，每次分析重新生成，不落库
type WeightedBookItem struct {
	Book      scene_book_db_models.BookMetadata `json:"book"`
	Weight    float64                           `json:"weight"`
	ShelfType string                            `json:"shelf_type"`
	Reason    string                            `json:"reason"`
}

// WeightRank 按累计权重排名的体裁/作者条目
type WeightRank struct {
	Key    string  `json:"key"`    // 体裁名或作者名
	Weight float64 `json:"weight"` // 累计权重（非计数）
	Count  int     `json:"count"`  // 涉及书籍数
}

// PreferenceProfile 用户偏好画像
type PreferenceProfile struct {
	TopGenres         []WeightRank   `json:"top_genres"`
	TopAuthors        []WeightRank   `json:"top_authors"`
	TotalBooks        int            `json:"total_books"`
	TotalWeight       float64        `json:"total_weight"`
	ShelfDistribution map[string]int `json:"shelf_distribution"`
}
