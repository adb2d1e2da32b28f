package scene_book_recommend_usecase

import (
	"context"
	"testing"

	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_db/scene_book_db_models"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 空书架用户走纯趋势路径，不得触发热门降级
func TestHybrid_EmptyShelfReturnsTrendingOnly(t *testing.T) {
	shelfRepo := &fakeShelfRepo{}
	bookRepo := newFakeBookRepo(
		mkBook(50, "Em Alta A", "Autor A", "Ficção", true),
		mkBook(51, "Em Alta B", "Autor B", "Romance", true),
	)

	interactionRepo := &fakeInteractionRepo{
		trending: []scene_book_db_models.BookEngagement{
			{BookID: oidHex(50), Count: 10},
			{BookID: oidHex(51), Count: 5},
		},
	}

	uc := newRecommendFixture(shelfRepo, bookRepo, interactionRepo, newFakeSimilarityRepo(), newFakeCacheRepo())

	results, err := uc.Recommend(context.Background(), "u_cold", scene_book_route_models.AlgorithmHybrid, 5)
	require.NoError(t, err)

	assert.Zero(t, interactionRepo.popularCalls)
	assert.Equal(t, 1, interactionRepo.trendingCalls)

	require.Len(t, results, 2)
	assert.Equal(t, "近期热门书籍", results[0].Reason)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.InDelta(t, 0.5, results[1].Score, 1e-9)
}

func TestHybrid_CombinesCollaborativeAndContent(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	bookRepo.books[oidHex(60)] = mkBook(60, "Candidato Colab", "Autor C", "Culinária", true)
	bookRepo.books[oidHex(61)] = mkBook(61, "Candidato Conteúdo", "Autor D", "Terror", true)

	interactionRepo := &fakeInteractionRepo{
		overlaps: []scene_book_db_models.UserOverlap{{UserID: "u2", CommonBooks: 2}},
		books: []scene_book_db_models.BookEngagement{
			{BookID: oidHex(60), Count: 4},
		},
	}

	similarityRepo := newFakeSimilarityRepo()
	similarityRepo.similar[oidHex(1)] = []scene_book_db_models.SimilarBookItem{
		{BookID: oidHex(60), Score: 0.8},
		{BookID: oidHex(61), Score: 0.6},
	}

	uc := newRecommendFixture(shelfRepo, bookRepo, interactionRepo, similarityRepo, newFakeCacheRepo())

	results, err := uc.Recommend(context.Background(), testUserId, scene_book_route_models.AlgorithmHybrid, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// book60同时来自两个成分: 0.6*1.0 + 0.3*1.0 = 0.9，归一化为1.0
	assert.Equal(t, oidHex(60), results[0].Book.ID.Hex())
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	// 内容成分的溯源信息要保留下来
	assert.NotEmpty(t, results[0].Sources)

	// book61只来自内容成分: 0.3*0.75 = 0.225，归一化为0.25
	assert.Equal(t, oidHex(61), results[1].Book.ID.Hex())
	assert.InDelta(t, 0.25, results[1].Score, 1e-9)
}

func TestHybrid_TrendingLimitedToFavoriteGenres(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	bookRepo.books[oidHex(70)] = mkBook(70, "Tendência Ficção", "Autor E", "Ficção", true)
	bookRepo.books[oidHex(71)] = mkBook(71, "Tendência Culinária", "Autor F", "Culinária", true)

	interactionRepo := &fakeInteractionRepo{
		trending: []scene_book_db_models.BookEngagement{
			{BookID: oidHex(70), Count: 8},
			{BookID: oidHex(71), Count: 7},
		},
	}

	uc := newRecommendFixture(shelfRepo, bookRepo, interactionRepo, newFakeSimilarityRepo(), newFakeCacheRepo())

	results, err := uc.Recommend(context.Background(), testUserId, scene_book_route_models.AlgorithmHybrid, 5)
	require.NoError(t, err)

	// 只有偏好体裁内的趋势书进入结果
	require.Len(t, results, 1)
	assert.Equal(t, oidHex(70), results[0].Book.ID.Hex())
	assert.Contains(t, results[0].Reason, "近期热门")
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestHybrid_CacheHitAndFingerprintInvalidation(t *testing.T) {
	shelfRepo, bookRepo := preferenceFixture()
	bookRepo.books[oidHex(60)] = mkBook(60, "Candidato", "Autor C", "Culinária", true)

	interactionRepo := &fakeInteractionRepo{
		overlaps: []scene_book_db_models.UserOverlap{{UserID: "u2", CommonBooks: 2}},
		books: []scene_book_db_models.BookEngagement{
			{BookID: oidHex(60), Count: 4},
		},
	}
	cache := newFakeCacheRepo()

	uc := newRecommendFixture(shelfRepo, bookRepo, interactionRepo, newFakeSimilarityRepo(), cache)

	first, err := uc.Recommend(context.Background(), testUserId, scene_book_route_models.AlgorithmHybrid, 5)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	require.Len(t, cache.sets, 1)
	assert.Contains(t, cache.sets[0], "rec:hybrid:"+testUserId+":5:")

	// 第二次请求命中缓存，不再触发聚合查询
	callsAfterFirst := len(interactionRepo.booksOfUsersCalls)
	second, err := uc.Recommend(context.Background(), testUserId, scene_book_route_models.AlgorithmHybrid, 5)
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, len(interactionRepo.booksOfUsersCalls))
	assert.Equal(t, first[0].Book.ID.Hex(), second[0].Book.ID.Hex())

	// 书架变化后指纹变化，旧缓存失效
	shelfRepo.entries = append(shelfRepo.entries, mkShelfEntry(testUserId, 6, scene_book_db_models.ShelfTypeToRead))
	bookRepo.books[oidHex(6)] = mkBook(6, "Livro Novo", "Autor Novo", "Ensaios", true)

	_, err = uc.Recommend(context.Background(), testUserId, scene_book_route_models.AlgorithmHybrid, 5)
	require.NoError(t, err)
	assert.Greater(t, len(interactionRepo.booksOfUsersCalls), callsAfterFirst)
	require.Len(t, cache.sets, 2)
	assert.NotEqual(t, cache.sets[0], cache.sets[1])
}
