package scene_book_recommend_usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ============== 测试辅助 ==============

// oid 生成确定性的ObjectID，末字节为序号
func oid(n byte) primitive.ObjectID {
	var raw [12]byte
	raw[11] = n
	return primitive.ObjectID(raw)
}

func oidHex(n byte) string {
	return oid(n).Hex()
}

func mkBook(n byte, title, author, category string, coverValid bool) scene_book_db_models.BookMetadata {
	return scene_book_db_models.BookMetadata{
		ID:         oid(n),
		Title:      title,
		Author:     author,
		Category:   category,
		CoverURL:   "https://covers.example.com/" + title,
		CoverValid: coverValid,
	}
}

func mkShelfEntry(userId string, bookN byte, shelfType string) scene_book_db_models.ShelfEntryMetadata {
	return scene_book_db_models.ShelfEntryMetadata{
		ID:        primitive.NewObjectID(),
		UserID:    userId,
		BookID:    oidHex(bookN),
		ShelfType: shelfType,
	}
}

// ============== 仓储桩 ==============

type fakeShelfRepo struct {
	entries []scene_book_db_models.ShelfEntryMetadata
	err     error
	calls   int
}

func (f *fakeShelfRepo) GetUserShelfEntries(
	_ context.Context,
	userId string,
) ([]scene_book_db_models.ShelfEntryMetadata, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []scene_book_db_models.ShelfEntryMetadata
	for _, e := range f.entries {
		if e.UserID == userId {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeBookRepo struct {
	books         map[string]scene_book_db_models.BookMetadata
	getByIDsCalls int
}

func newFakeBookRepo(books ...scene_book_db_models.BookMetadata) *fakeBookRepo {
	m := make(map[string]scene_book_db_models.BookMetadata, len(books))
	for _, b := range books {
		m[b.ID.Hex()] = b
	}
	return &fakeBookRepo{books: m}
}

func (f *fakeBookRepo) GetByID(
	_ context.Context,
	bookId string,
) (*scene_book_db_models.BookMetadata, error) {
	b, ok := f.books[bookId]
	if !ok {
		return nil, fmt.Errorf("mongo: no documents in result")
	}
	return &b, nil
}

func (f *fakeBookRepo) GetByIDs(
	_ context.Context,
	bookIds []string,
) ([]scene_book_db_models.BookMetadata, error) {
	f.getByIDsCalls++
	var out []scene_book_db_models.BookMetadata
	for _, id := range bookIds {
		if b, ok := f.books[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

type booksOfUsersCall struct {
	userIds        []string
	excludeBookIds []string
	limit          int
}

type fakeInteractionRepo struct {
	overlaps []scene_book_db_models.UserOverlap
	books    []scene_book_db_models.BookEngagement
	popular  []scene_book_db_models.BookEngagement
	trending []scene_book_db_models.BookEngagement

	overlapCalls      int
	booksOfUsersCalls []booksOfUsersCall
	popularCalls      int
	trendingCalls     int
}

func (f *fakeInteractionRepo) GetOverlappingUsers(
	_ context.Context,
	_ string,
	_ []string,
	_ []string,
	minCommonBooks int,
	limit int,
) ([]scene_book_db_models.UserOverlap, error) {
	f.overlapCalls++
	var out []scene_book_db_models.UserOverlap
	for _, o := range f.overlaps {
		if o.CommonBooks >= minCommonBooks {
			out = append(out, o)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) GetBooksOfUsers(
	_ context.Context,
	userIds []string,
	_ []string,
	excludeBookIds []string,
	limit int,
) ([]scene_book_db_models.BookEngagement, error) {
	f.booksOfUsersCalls = append(f.booksOfUsersCalls, booksOfUsersCall{
		userIds:        userIds,
		excludeBookIds: excludeBookIds,
		limit:          limit,
	})

	excluded := make(map[string]struct{}, len(excludeBookIds))
	for _, id := range excludeBookIds {
		excluded[id] = struct{}{}
	}

	var out []scene_book_db_models.BookEngagement
	for _, b := range f.books {
		if _, skip := excluded[b.BookID]; skip {
			continue
		}
		out = append(out, b)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) GetPopularBooks(
	_ context.Context,
	limit int,
) ([]scene_book_db_models.BookEngagement, error) {
	f.popularCalls++
	if len(f.popular) > limit {
		return f.popular[:limit], nil
	}
	return f.popular, nil
}

func (f *fakeInteractionRepo) GetTrendingBooks(
	_ context.Context,
	_ time.Time,
	limit int,
) ([]scene_book_db_models.BookEngagement, error) {
	f.trendingCalls++
	if len(f.trending) > limit {
		return f.trending[:limit], nil
	}
	return f.trending, nil
}

type fakeSimilarityRepo struct {
	similar map[string][]scene_book_db_models.SimilarBookItem
	calls   map[string][]int // bookId -> 每次请求的n
}

func newFakeSimilarityRepo() *fakeSimilarityRepo {
	return &fakeSimilarityRepo{
		similar: make(map[string][]scene_book_db_models.SimilarBookItem),
		calls:   make(map[string][]int),
	}
}

func (f *fakeSimilarityRepo) FindSimilarBooks(
	_ context.Context,
	bookId string,
	n int,
) ([]scene_book_db_models.SimilarBookItem, error) {
	f.calls[bookId] = append(f.calls[bookId], n)
	items := f.similar[bookId]
	if len(items) > n {
		return items[:n], nil
	}
	return items, nil
}

type fakeCacheRepo struct {
	store  map[string][]byte
	gets   []string
	sets   []string
	getErr error
	setErr error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: make(map[string][]byte)}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, value interface{}) (bool, error) {
	f.gets = append(f.gets, key)
	if f.getErr != nil {
		return false, f.getErr
	}
	raw, ok := f.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, value); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.sets = append(f.sets, key)
	f.store[key] = raw
	return nil
}

func (f *fakeCacheRepo) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}
