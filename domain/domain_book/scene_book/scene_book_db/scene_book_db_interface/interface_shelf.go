package scene_book_db_interface

import (
	"context"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
)

type ShelfDBRepository interface {
	GetUserShelfEntries(ctx context.Context, userId string) ([]scene_book_db_models.ShelfEntryMetadata, error)
}
