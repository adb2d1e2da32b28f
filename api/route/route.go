package route

import (
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/api/middleware"
	"github.com/cgbookstore/go-backend-clean-architecture/api/route/route_book/scene_book_route_api_route"
	"github.com/cgbookstore/go-backend-clean-architecture/bootstrap"
	"github.com/cgbookstore/go-backend-clean-architecture/mongo"
	"github.com/gin-gonic/gin"
)

func Setup(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	app bootstrap.Application,
	gin *gin.Engine,
) {
	cacheTTL := time.Duration(env.CacheTTLMinutes) * time.Minute

	publicRouter := gin.Group("/api/v1")
	// 相似书籍查询不要求登录
	scene_book_route_api_route.NewSimilarBooksRouter(timeout, db, publicRouter)

	protectedRouter := gin.Group("/api/v1")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	scene_book_route_api_route.NewRecommendRouter(timeout, cacheTTL, db, app.CacheDB, protectedRouter)
}
