package scene_book_db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookMetadata struct {
	ID          primitive.ObjectID `bson:"_id"`          // 文档唯一标识符
	Title       string             `bson:"title"`        // 书名
	Author      string             `bson:"author"`       // 作者（展示用字符串）
	Category    string             `bson:"category"`     // 分类/体裁（如："Fantasia"、"Romance"）
	Description string             `bson:"description"`  // 简介，内容相似度的文本来源之一
	Publisher   string             `bson:"publisher"`    // 出版社
	ISBN        string             `bson:"isbn"`         // ISBN编号
	PageCount   int                `bson:"page_count"`   // 页数
	CoverURL    string             `bson:"cover_url"`    // 封面图片地址
	CoverValid  bool               `bson:"cover_valid"`  // 封面是否可展示（展示门槛，非排序因素）
	PublishedAt time.Time          `bson:"published_at"` // 出版日期
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// HasValidCover 没有可展示封面的书绝不能出现在最终推荐结果中
func (b *BookMetadata) HasValidCover() bool {
	return b.CoverValid && b.CoverURL != ""
}
