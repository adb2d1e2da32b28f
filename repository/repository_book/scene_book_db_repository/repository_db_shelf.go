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

type shelfRepository struct {
	db         mongo.Database
	collection string
}

func NewShelfRepository(db mongo.Database, collection string) scene_book_db_interface.ShelfDBRepository {
	return &shelfRepository{
		db:         db,
		collection: collection,
	}
}

func (r *shelfRepository) GetUserShelfEntries(
	ctx context.Context,
	userId string,
) ([]scene_book_db_models.ShelfEntryMetadata, error) {
	if userId == "" {
		return nil, fmt.Errorf("user_id参数是必需的")
	}

	coll := r.db.Collection(r.collection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, fmt.Errorf("查询书架数据失败: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []scene_book_db_models.ShelfEntryMetadata
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("解析书架数据失败: %w", err)
	}

	return entries, nil
}
