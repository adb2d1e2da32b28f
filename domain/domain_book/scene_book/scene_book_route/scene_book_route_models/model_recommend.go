package scene_book_route_models

import (
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
)

// 推荐算法变体
const (
	AlgorithmHybrid        = "hybrid"
	AlgorithmCollaborative = "collaborative"
	AlgorithmContent       = "content"
)

// ScoreSource 推荐结果的贡献来源（内容相似推荐的溯源信息）
type ScoreSource struct {
	SourceBookID string  `json:"source_book_id"` // 贡献来源书籍ID
	SourceTitle  string  `json:"source_title"`   // 贡献来源书名
	ShelfType    string  `json:"shelf_type"`     // 来源书籍所在书架
	Weight       float64 `json:"weight"`         // 书架权重
	Contribution float64 `json:"contribution"`   // 对总分的贡献值
}

// RecommendationResult 推荐结果
// 结果集非空时，归一化后最高分恒等于1.0
type RecommendationResult struct {
	Book    scene_book_db_models.BookMetadata `json:"book"`
	Score   float64                           `json:"score"`   // 综合推荐分数（0.0-1.0）
	Reason  string                            `json:"reason"`  // 推荐理由
	Sources []ScoreSource                     `json:"sources"` // 贡献来源
}

// SimilarUser 与目标用户行为重叠的用户
type SimilarUser struct {
	UserID      string `json:"user_id"`
	CommonBooks int    `json:"common_books"`
}

// RecommendationResponse 推荐接口的响应体
type RecommendationResponse struct {
	Algorithm       string                 `json:"algorithm"`
	Count           int                    `json:"count"`
	Recommendations []RecommendationResult `json:"recommendations"`
}
