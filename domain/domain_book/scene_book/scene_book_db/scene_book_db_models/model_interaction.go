package scene_book_db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 交互类型
const (
	InteractionTypeView      = "view"      // 浏览
	InteractionTypeClick     = "click"     // 点击
	InteractionTypeWishlist  = "wishlist"  // 加入心愿单
	InteractionTypeReading   = "reading"   // 开始阅读
	InteractionTypeRead      = "read"      // 已读
	InteractionTypeCompleted = "completed" // 读完
	InteractionTypeReview    = "review"    // 评价
	InteractionTypeShare     = "share"     // 分享
)

// HighConfidenceInteractionTypes 协同过滤只采信高置信度的行为信号
var HighConfidenceInteractionTypes = []string{
	InteractionTypeRead,
	InteractionTypeCompleted,
}

// InteractionMetadata 用户与书籍的交互记录，仅追加，核心算法绝不修改
type InteractionMetadata struct {
	ID              primitive.ObjectID `bson:"_id"`              // 文档唯一标识符
	UserID          string             `bson:"user_id"`          // 用户唯一标识符
	BookID          string             `bson:"book_id"`          // 书籍唯一标识符
	InteractionType string             `bson:"interaction_type"` // 交互类型
	Rating          int                `bson:"rating"`           // 评分（1-5，0表示未评分）
	Duration        int                `bson:"duration"`         // 交互时长（秒）
	CreatedAt       time.Time          `bson:"created_at"`
}

// UserOverlap 与目标用户存在共同书籍的候选用户（聚合结果）
type UserOverlap struct {
	UserID      string `bson:"_id"`          // 候选用户
	CommonBooks int    `bson:"common_books"` // 共同书籍数
}

// BookEngagement 按书籍分组的交互计数（聚合结果）
type BookEngagement struct {
	BookID string `bson:"_id"`   // 书籍唯一标识符
	Count  int    `bson:"count"` // 交互次数
}
