package mongo

import (
	"context"
	"log"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shelf Collection
	shelfCollection := db.Collection(domain.CollectionBookSceneShelf)
	createIndex(ctx, shelfCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id")
	createIndex(ctx, shelfCollection, bson.D{{Key: "book_id", Value: 1}}, "book_id")
	createIndex(ctx, shelfCollection, bson.D{{Key: "shelf_type", Value: 1}}, "shelf_type")
	// 复合索引优化
	createIndex(ctx, shelfCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "book_id", Value: 1},
		{Key: "shelf_type", Value: 1}}, "user_book_shelf_compound")

	// Interaction Collection
	interactionCollection := db.Collection(domain.CollectionBookSceneInteraction)
	createIndex(ctx, interactionCollection, bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}, "user_date")
	createIndex(ctx, interactionCollection, bson.D{{Key: "book_id", Value: 1}, {Key: "created_at", Value: -1}}, "book_date")
	createIndex(ctx, interactionCollection, bson.D{{Key: "interaction_type", Value: 1}}, "interaction_type")
	// 趋势窗口查询走created_at降序
	createIndex(ctx, interactionCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at")
	// 复合索引优化
	createIndex(ctx, interactionCollection, bson.D{
		{Key: "book_id", Value: 1},
		{Key: "interaction_type", Value: 1}}, "book_type_compound")
	createIndex(ctx, interactionCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "interaction_type", Value: 1}}, "user_type_compound")

	// Book Collection
	bookCollection := db.Collection(domain.CollectionBookSceneBook)
	createTextIndex(ctx, bookCollection, bson.D{{Key: "title", Value: "text"}, {Key: "author", Value: "text"}, {Key: "description", Value: "text"}}, "book_text_search")
	createIndex(ctx, bookCollection, bson.D{{Key: "category", Value: 1}}, "category")
	createIndex(ctx, bookCollection, bson.D{{Key: "author", Value: 1}}, "author")
	createIndex(ctx, bookCollection, bson.D{{Key: "cover_valid", Value: 1}}, "cover_valid")
	createIndex(ctx, bookCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at")

	// Similarity Collection
	similarityCollection := db.Collection(domain.CollectionBookSceneSimilarity)
	createIndex(ctx, similarityCollection, bson.D{
		{Key: "book_a", Value: 1},
		{Key: "score", Value: -1}}, "book_a_score_compound")
}

func createIndex(ctx context.Context, coll Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}

	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		log.Printf("创建索引失败 [%s]: %v", name, err)
	}
}

func createTextIndex(ctx context.Context, coll Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetDefaultLanguage("portuguese"),
	}

	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		log.Printf("创建文本索引失败 [%s]: %v", name, err)
	}
}
