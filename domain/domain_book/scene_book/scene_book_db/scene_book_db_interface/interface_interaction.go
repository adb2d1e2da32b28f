package scene_book_db_interface

import (
	"context"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
)

type InteractionDBRepository interface {
	// GetOverlappingUsers 查找与bookIds存在指定类型交互的其他用户，按共同书籍数降序
	GetOverlappingUsers(
		ctx context.Context,
		excludeUserId string,
		bookIds []string,
		interactionTypes []string,
		minCommonBooks int,
		limit int,
	) ([]scene_book_db_models.UserOverlap, error)

	// GetBooksOfUsers 查找userIds交互过的书籍（排除excludeBookIds），按交互人数降序
	GetBooksOfUsers(
		ctx context.Context,
		userIds []string,
		interactionTypes []string,
		excludeBookIds []string,
		limit int,
	) ([]scene_book_db_models.BookEngagement, error)

	// GetPopularBooks 全局热门书籍（冷启动降级用）
	GetPopularBooks(ctx context.Context, limit int) ([]scene_book_db_models.BookEngagement, error)

	// GetTrendingBooks 时间窗口内交互量最高的书籍
	GetTrendingBooks(ctx context.Context, since time.Time, limit int) ([]scene_book_db_models.BookEngagement, error)
}
