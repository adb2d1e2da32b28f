package scene_book_db_repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_interface"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/cgbookstore/go-backend-clean-architecture/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookRepository struct {
	db         mongo.Database
	collection string
}

func NewBookRepository(db mongo.Database, collection string) scene_book_db_interface.BookDBRepository {
	return &bookRepository{
		db:         db,
		collection: collection,
	}
}

func (r *bookRepository) createIDFilter(bookId string) (bson.M, error) {
	objID, err := primitive.ObjectIDFromHex(bookId)
	if err != nil {
		return nil, errors.New("invalid book_id format")
	}
	return bson.M{"_id": objID}, nil
}

func (r *bookRepository) GetByID(
	ctx context.Context,
	bookId string,
) (*scene_book_db_models.BookMetadata, error) {
	filter, err := r.createIDFilter(bookId)
	if err != nil {
		return nil, err
	}

	coll := r.db.Collection(r.collection)

	var book scene_book_db_models.BookMetadata
	if err := coll.FindOne(ctx, filter).Decode(&book); err != nil {
		return nil, fmt.Errorf("查询书籍失败: %w", err)
	}

	return &book, nil
}

func (r *bookRepository) GetByIDs(
	ctx context.Context,
	bookIds []string,
) ([]scene_book_db_models.BookMetadata, error) {
	if len(bookIds) == 0 {
		return nil, nil
	}

	objIDs := make([]primitive.ObjectID, 0, len(bookIds))
	for _, id := range bookIds {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			// 跳过非法ID，不让单条脏数据拖垮整批查询
			continue
		}
		objIDs = append(objIDs, objID)
	}

	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return nil, fmt.Errorf("批量查询书籍失败: %w", err)
	}
	defer cursor.Close(ctx)

	var books []scene_book_db_models.BookMetadata
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("解析书籍数据失败: %w", err)
	}

	return books, nil
}
