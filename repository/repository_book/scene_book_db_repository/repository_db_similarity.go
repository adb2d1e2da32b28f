package scene_book_db_repository

import (
	"context"
	"fmt"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/cgbookstore/go-backend-clean-architecture/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type similarityRepository struct {
	db         mongo.Database
	collection string
}

func NewSimilarityRepository(db mongo.Database, collection string) scene_book_db_interface.SimilarityDBRepository {
	return &similarityRepository{
		db:         db,
		collection: collection,
	}
}

// FindSimilarBooks 查询预计算相似度矩阵中与bookId最相似的n本书
// 矩阵由离线任务维护，这里只读，查不到视为空结果而不是错误
func (r *similarityRepository) FindSimilarBooks(
	ctx context.Context,
	bookId string,
	n int,
) ([]scene_book_db_models.SimilarBookItem, error) {
	if bookId == "" {
		return nil, fmt.Errorf("book_id参数是必需的")
	}
	if n <= 0 {
		return nil, nil
	}

	coll := r.db.Collection(r.collection)

	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}}).
		SetLimit(int64(n))
	cursor, err := coll.Find(ctx, bson.M{"book_a": bookId}, opts)
	if err != nil {
		return nil, fmt.Errorf("查询相似书籍失败: %w", err)
	}
	defer cursor.Close(ctx)

	var items []scene_book_db_models.SimilarBookItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("解析相似书籍数据失败: %w", err)
	}

	return items, nil
}
