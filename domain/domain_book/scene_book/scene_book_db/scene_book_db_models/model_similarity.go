package scene_book_db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookSimilarityMetadata 预计算的书籍相似度矩阵
// 由外部的内容相似度任务写入（标题/简介/分类的文本相似度），核心算法只读
type BookSimilarityMetadata struct {
	ID        primitive.ObjectID `bson:"_id"`
	BookA     string             `bson:"book_a"`     // 源书籍ID
	BookB     string             `bson:"book_b"`     // 相似书籍ID
	Score     float64            `bson:"score"`      // 相似度分数（0.0-1.0，已归一化）
	Method    string             `bson:"method"`     // 计算方法: content, collaborative, hybrid
	UpdatedAt time.Time          `bson:"updated_at"` // 矩阵最后更新时间
}

// SimilarBookItem 相似度查询的返回单元
type SimilarBookItem struct {
	BookID string  `bson:"book_b"` // 相似书籍ID
	Score  float64 `bson:"score"`  // 相似度分数
}
