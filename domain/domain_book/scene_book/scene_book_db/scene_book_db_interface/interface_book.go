package scene_book_db_interface

import (
	"context"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
)

type BookDBRepository interface {
	GetByID(ctx context.Context, bookId string) (*scene_book_db_models.BookMetadata, error)
	GetByIDs(ctx context.Context, bookIds []string) ([]scene_book_db_models.BookMetadata, error)
}
