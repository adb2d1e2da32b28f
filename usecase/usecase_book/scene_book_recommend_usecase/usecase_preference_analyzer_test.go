package scene_book_recommend_usecase

import (
	"context"
	"testing"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserId = "u1"

// 标准测试书库：4本加权书 + 1本弃读
func preferenceFixture() (*fakeShelfRepo, *fakeBookRepo) {
	shelfRepo := &fakeShelfRepo{
		entries: []scene_book_db_models.ShelfEntryMetadata{
			mkShelfEntry(testUserId, 1, scene_book_db_models.ShelfTypeFavorites),
			// 同一本书同时在已读书架，去重后应保留收藏权重
			mkShelfEntry(testUserId, 1, scene_book_db_models.ShelfTypeRead),
			mkShelfEntry(testUserId, 2, scene_book_db_models.ShelfTypeRead),
			mkShelfEntry(testUserId, 3, scene_book_db_models.ShelfTypeReading),
			mkShelfEntry(testUserId, 4, scene_book_db_models.ShelfTypeToRead),
			mkShelfEntry(testUserId, 5, scene_book_db_models.ShelfTypeAbandoned),
		},
	}

	bookRepo := newFakeBookRepo(
		mkBook(1, "Ensaio Sobre a Cegueira", "José Saramago", "Ficção", true),
		mkBook(2, "Memorial do Convento", "José Saramago", "História", true),
		mkBook(3, "Dom Casmurro", "Machado de Assis", "Romance", true),
		mkBook(4, "Mensagem", "Fernando Pessoa", "Poesia", true),
		mkBook(5, "Livro Abandonado", "Autor Qualquer", "Terror", true),
	)

	return shelfRepo, bookRepo
}

func TestGetWeightedBooks_WeightsAndDedup(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	uc := NewPreferenceUsecase(shelfRepo, bookRepo, time.Second)

	items, err := uc.GetWeightedBooks(context.Background(), testUserId)
	require.NoError(t, err)
	require.Len(t, items, 4)

	// 按权重降序
	assert.Equal(t, oidHex(1), items[0].Book.ID.Hex())
	assert.Equal(t, 0.50, items[0].Weight)
	assert.Equal(t, scene_book_db_models.ShelfTypeFavorites, items[0].ShelfType)

	assert.Equal(t, 0.30, items[1].Weight)
	assert.Equal(t, 0.15, items[2].Weight)
	assert.Equal(t, 0.05, items[3].Weight)

	// 弃读不在加权书单内
	for _, item := range items {
		assert.NotEqual(t, oidHex(5), item.Book.ID.Hex())
	}
}

func TestGetWeightedBooks_UnknownShelfType(t *testing.T) {
	shelfRepo := &fakeShelfRepo{
		entries: []scene_book_db_models.ShelfEntryMetadata{
			mkShelfEntry(testUserId, 1, "bizarre"),
		},
	}
	uc := NewPreferenceUsecase(shelfRepo, newFakeBookRepo(), time.Second)

	_, err := uc.GetWeightedBooks(context.Background(), testUserId)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "未知的书架类型")
}

func TestGetWeightedBooks_EmptyShelf(t *testing.T) {
	uc := NewPreferenceUsecase(&fakeShelfRepo{}, newFakeBookRepo(), time.Second)

	items, err := uc.GetWeightedBooks(context.Background(), testUserId)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetTopAuthors_AccumulatesWeight(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	uc := NewPreferenceUsecase(shelfRepo, bookRepo, time.Second)

	authors, err := uc.GetTopAuthors(context.Background(), testUserId, 3)
	require.NoError(t, err)
	require.Len(t, authors, 3)

	// Saramago: 0.5（收藏）+ 0.3（已读）= 0.8
	assert.Equal(t, "José Saramago", authors[0].Key)
	assert.InDelta(t, 0.80, authors[0].Weight, 1e-9)
	assert.Equal(t, 2, authors[0].Count)

	assert.Equal(t, "Machado de Assis", authors[1].Key)
	assert.InDelta(t, 0.15, authors[1].Weight, 1e-9)
}

func TestGetTopGenres_Order(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	uc := NewPreferenceUsecase(shelfRepo, bookRepo, time.Second)

	genres, err := uc.GetTopGenres(context.Background(), testUserId, 5)
	require.NoError(t, err)
	require.Len(t, genres, 4)

	assert.Equal(t, "Ficção", genres[0].Key)
	assert.InDelta(t, 0.50, genres[0].Weight, 1e-9)
	assert.Equal(t, "História", genres[1].Key)
	assert.Equal(t, "Romance", genres[2].Key)
	assert.Equal(t, "Poesia", genres[3].Key)
}

func TestGetPreferenceProfile(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	uc := NewPreferenceUsecase(shelfRepo, bookRepo, time.Second)

	profile, err := uc.GetPreferenceProfile(context.Background(), testUserId)
	require.NoError(t, err)

	assert.Equal(t, 4, profile.TotalBooks)
	assert.InDelta(t, 1.0, profile.TotalWeight, 1e-9)
	assert.Equal(t, 1, profile.ShelfDistribution[scene_book_db_models.ShelfTypeFavorites])
	assert.Equal(t, 1, profile.ShelfDistribution[scene_book_db_models.ShelfTypeRead])
	assert.NotContains(t, profile.ShelfDistribution, scene_book_db_models.ShelfTypeAbandoned)
	require.NotEmpty(t, profile.TopGenres)
	assert.Equal(t, "Ficção", profile.TopGenres[0].Key)
}

func TestScoreBookByPreference_FullMatchCapsAtOne(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	// 候选书：与收藏同作者同体裁，且作者/体裁均为榜首
	candidate := mkBook(9, "O Homem Duplicado", "José Saramago", "Ficção", true)
	bookRepo.books[candidate.ID.Hex()] = candidate

	uc := NewPreferenceUsecase(shelfRepo, bookRepo, time.Second)

	score, reasons, err := uc.ScoreBookByPreference(context.Background(), testUserId, candidate.ID.Hex())
	require.NoError(t, err)

	// 0.3（作者#1）+ 0.3（体裁#1）+ 0.2（收藏同作者）+ 0.2（收藏同体裁）封顶1.0
	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Contains(t, reasons, "偏好作者#1")
	assert.Contains(t, reasons, "偏好体裁#1")
}

func TestScoreBookByPreference_NoMatch(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	candidate := mkBook(9, "Livro Desconhecido", "Autor Novo", "Culinária", true)
	bookRepo.books[candidate.ID.Hex()] = candidate

	uc := NewPreferenceUsecase(shelfRepo, bookRepo, time.Second)

	score, reasons, err := uc.ScoreBookByPreference(context.Background(), testUserId, candidate.ID.Hex())
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestScoreBookByPreference_AccentInsensitiveMatch(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	// 无变音符号的写法也要命中榜单
	candidate := mkBook(9, "Claraboia", "JOSE SARAMAGO", "FICCAO", true)
	bookRepo.books[candidate.ID.Hex()] = candidate

	uc := NewPreferenceUsecase(shelfRepo, bookRepo, time.Second)

	score, _, err := uc.ScoreBookByPreference(context.Background(), testUserId, candidate.ID.Hex())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScoreBookByPreference_UnknownBook(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	uc := NewPreferenceUsecase(shelfRepo, bookRepo, time.Second)

	_, _, err := uc.ScoreBookByPreference(context.Background(), testUserId, oidHex(99))
	require.Error(t, err)
}
