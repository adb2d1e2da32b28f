package scene_book_db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 书架类型（封闭枚举，未知类型必须显式报错而不是静默按0权重处理）
const (
	ShelfTypeFavorites = "favorites" // 收藏
	ShelfTypeRead      = "read"      // 已读
	ShelfTypeReading   = "reading"   // 在读
	ShelfTypeToRead    = "to_read"   // 想读
	ShelfTypeAbandoned = "abandoned" // 弃读，仅用于排除
	ShelfTypeCustom    = "custom"    // 自定义书架
)

type ShelfEntryMetadata struct {
	ID        primitive.ObjectID `bson:"_id"`        // 文档唯一标识符
	UserID    string             `bson:"user_id"`    // 用户唯一标识符
	BookID    string             `bson:"book_id"`    // 书籍唯一标识符
	ShelfType string             `bson:"shelf_type"` // 书架类型
	ShelfName string             `bson:"shelf_name"` // 自定义书架名称（shelf_type=custom时有效）
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
