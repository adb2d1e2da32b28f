package scene_book_db_interface

import (
	"context"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
)

// SimilarityDBRepository 预计算相似度矩阵的只读入口（外部能力）
type SimilarityDBRepository interface {
	FindSimilarBooks(ctx context.Context, bookId string, n int) ([]scene_book_db_models.SimilarBookItem, error)
}
