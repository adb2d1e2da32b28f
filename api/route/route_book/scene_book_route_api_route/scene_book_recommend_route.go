package scene_book_route_api_route

import (
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/cgbookstore/go-backend-clean-architecture/api/controller/controller_book/scene_book_route_api_controller"
	"github.com/cgbookstore/go-backend-clean-architecture/domain"
	"github.com/cgbookstore/go-backend-clean-architecture/mongo"
	"github.com/cgbookstore/go-backend-clean-architecture/repository/repository_book/scene_book_db_repository"
	"github.com/cgbookstore/go-backend-clean-architecture/repository/repository_cache"
	"github.com/cgbookstore/go-backend-clean-architecture/usecase/usecase_book/scene_book_recommend_usecase"
	"github.com/gin-gonic/gin"
)

// NewRecommendRouter 个性化推荐与偏好分析路由（挂在认证组下）
func NewRecommendRouter(
	timeout time.Duration,
	cacheTTL time.Duration,
	db mongo.Database,
	cacheDB *badger.DB,
	group *gin.RouterGroup,
) {
	// 初始化repository
	shelfRepo := scene_book_db_repository.NewShelfRepository(db, domain.CollectionBookSceneShelf)
	bookRepo := scene_book_db_repository.NewBookRepository(db, domain.CollectionBookSceneBook)
	interactionRepo := scene_book_db_repository.NewInteractionRepository(db, domain.CollectionBookSceneInteraction)
	similarityRepo := scene_book_db_repository.NewSimilarityRepository(db, domain.CollectionBookSceneSimilarity)
	cacheRepo := repository_cache.NewBadgerCacheRepository(cacheDB)

	// 初始化usecase
	preferenceUsecase := scene_book_recommend_usecase.NewPreferenceUsecase(shelfRepo, bookRepo, timeout)
	recommendUsecase := scene_book_recommend_usecase.NewRecommendUsecase(
		shelfRepo, bookRepo, interactionRepo, similarityRepo,
		cacheRepo, cacheTTL, timeout,
	)

	// 初始化controller
	recommendCtrl := scene_book_route_api_controller.NewRecommendController(recommendUsecase)
	preferenceCtrl := scene_book_route_api_controller.NewPreferenceController(preferenceUsecase)

	// 注册路由
	recommendGroup := group.Group("/recommendations")
	{
		// 个性化推荐
		// GET /recommendations?algorithm=hybrid&limit=10
		recommendGroup.GET("", recommendCtrl.GetRecommendations)

		// 相似用户
		// GET /recommendations/similar_users?min_common_books=2&limit=10
		recommendGroup.GET("/similar_users", recommendCtrl.GetSimilarUsers)
	}

	preferenceGroup := group.Group("/preference")
	{
		// 偏好画像
		// GET /preference/profile
		preferenceGroup.GET("/profile", preferenceCtrl.GetPreferenceProfile)

		// 偏好体裁/作者榜单
		// GET /preference/genres?limit=5
		preferenceGroup.GET("/genres", preferenceCtrl.GetTopGenres)
		// GET /preference/authors?limit=5
		preferenceGroup.GET("/authors", preferenceCtrl.GetTopAuthors)

		// 单本书偏好评分
		// GET /preference/score?book_id=xxx
		preferenceGroup.GET("/score", preferenceCtrl.ScoreBook)
	}
}

// NewSimilarBooksRouter 相似书籍路由（公开组）
func NewSimilarBooksRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	bookRepo := scene_book_db_repository.NewBookRepository(db, domain.CollectionBookSceneBook)
	similarityRepo := scene_book_db_repository.NewSimilarityRepository(db, domain.CollectionBookSceneSimilarity)

	similarUsecase := scene_book_recommend_usecase.NewSimilarBooksUsecase(bookRepo, similarityRepo, timeout)
	similarCtrl := scene_book_route_api_controller.NewSimilarController(similarUsecase)

	// GET /books/similar?book_id=xxx&limit=5
	group.GET("/books/similar", similarCtrl.GetSimilarBooks)
}
