package scene_book_db_repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/cgbookstore/go-backend-clean-architecture/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type interactionRepository struct {
	db         mongo.Database
	collection string
}

func NewInteractionRepository(db mongo.Database, collection string) scene_book_db_interface.InteractionDBRepository {
	return &interactionRepository{
		db:         db,
		collection: collection,
	}
}

// GetOverlappingUsers 相似用户聚合：
// 1. 过滤出对目标书籍集合产生过高置信度交互的记录（排除自己）
// 2. 按用户分组统计共同书籍数
// 3. 过滤低于最小共同书籍阈值的用户，按共同数降序截断
func (r *interactionRepository) GetOverlappingUsers(
	ctx context.Context,
	excludeUserId string,
	bookIds []string,
	interactionTypes []string,
	minCommonBooks int,
	limit int,
) ([]scene_book_db_models.UserOverlap, error) {
	if len(bookIds) == 0 {
		return nil, nil
	}

	coll := r.db.Collection(r.collection)

	pipeline := bson.A{
		bson.M{"$match": bson.M{
			"user_id":          bson.M{"$ne": excludeUserId},
			"book_id":          bson.M{"$in": bookIds},
			"interaction_type": bson.M{"$in": interactionTypes},
		}},
		// 同一用户对同一本书的重复交互只算一次
		bson.M{"$group": bson.M{
			"_id": bson.M{"user_id": "$user_id", "book_id": "$book_id"},
		}},
		bson.M{"$group": bson.M{
			"_id":          "$_id.user_id",
			"common_books": bson.M{"$sum": 1},
		}},
		bson.M{"$match": bson.M{
			"common_books": bson.M{"$gte": minCommonBooks},
		}},
		bson.M{"$sort": bson.M{"common_books": -1}},
		bson.M{"$limit": limit},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("相似用户聚合查询失败: %w", err)
	}
	defer cursor.Close(ctx)

	var overlaps []scene_book_db_models.UserOverlap
	if err := cursor.All(ctx, &overlaps); err != nil {
		return nil, fmt.Errorf("解析相似用户数据失败: %w", err)
	}

	return overlaps, nil
}

// GetBooksOfUsers 聚合相似用户读过的书，排除目标用户已知书籍，按交互人数降序
func (r *interactionRepository) GetBooksOfUsers(
	ctx context.Context,
	userIds []string,
	interactionTypes []string,
	excludeBookIds []string,
	limit int,
) ([]scene_book_db_models.BookEngagement, error) {
	if len(userIds) == 0 {
		return nil, nil
	}

	coll := r.db.Collection(r.collection)

	match := bson.M{
		"user_id":          bson.M{"$in": userIds},
		"interaction_type": bson.M{"$in": interactionTypes},
	}
	if len(excludeBookIds) > 0 {
		match["book_id"] = bson.M{"$nin": excludeBookIds}
	}

	pipeline := bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id": bson.M{"user_id": "$user_id", "book_id": "$book_id"},
		}},
		bson.M{"$group": bson.M{
			"_id":   "$_id.book_id",
			"count": bson.M{"$sum": 1},
		}},
		bson.M{"$sort": bson.M{"count": -1}},
		bson.M{"$limit": limit},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("候选书籍聚合查询失败: %w", err)
	}
	defer cursor.Close(ctx)

	var books []scene_book_db_models.BookEngagement
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("解析候选书籍数据失败: %w", err)
	}

	return books, nil
}

// GetPopularBooks 全局热门：不限时间窗口，按总交互量降序
func (r *interactionRepository) GetPopularBooks(
	ctx context.Context,
	limit int,
) ([]scene_book_db_models.BookEngagement, error) {
	coll := r.db.Collection(r.collection)

	pipeline := bson.A{
		bson.M{"$group": bson.M{
			"_id":   "$book_id",
			"count": bson.M{"$sum": 1},
		}},
		bson.M{"$sort": bson.M{"count": -1}},
		bson.M{"$limit": limit},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("热门书籍聚合查询失败: %w", err)
	}
	defer cursor.Close(ctx)

	var books []scene_book_db_models.BookEngagement
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("解析热门书籍数据失败: %w", err)
	}

	return books, nil
}

// GetTrendingBooks 时间窗口内的趋势书籍，窗口外的交互不参与计数
func (r *interactionRepository) GetTrendingBooks(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]scene_book_db_models.BookEngagement, error) {
	coll := r.db.Collection(r.collection)

	pipeline := bson.A{
		bson.M{"$match": bson.M{
			"created_at": bson.M{"$gte": since},
		}},
		bson.M{"$group": bson.M{
			"_id":   "$book_id",
			"count": bson.M{"$sum": 1},
		}},
		bson.M{"$sort": bson.M{"count": -1}},
		bson.M{"$limit": limit},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("趋势书籍聚合查询失败: %w", err)
	}
	defer cursor.Close(ctx)

	var books []scene_book_db_models.BookEngagement
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("解析趋势书籍数据失败: %w", err)
	}

	return books, nil
}
