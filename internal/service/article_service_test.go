// internal/service/article_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBArticle() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func articleTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.PageLimit = 20
	cfg.App.FeaturedLimit = 5
	return cfg
}

func Test_articleService_ListArticles(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()
	cfg := articleTestConfig()

	sampleArticles := []*model.Article{
		{ArticleID: uuid.New(), Title: "消費税率の改定を閣議決定", PublishedAt: time.Now()},
	}

	tests := []struct {
		name           string
		limit          int
		offset         int
		expectedLimit  int
		expectedOffset int
	}{
		{
			name:           "正常系: 指定したlimitとoffsetをそのまま使う",
			limit:          5,
			offset:         10,
			expectedLimit:  5,
			expectedOffset: 10,
		},
		{
			name:           "正常系: limit未指定はデフォルト値で補う",
			limit:          0,
			offset:         0,
			expectedLimit:  20,
			expectedOffset: 0,
		},
		{
			name:           "正常系: 上限を超えるlimitは切り詰める",
			limit:          250,
			offset:         0,
			expectedLimit:  config.MaxPageLimit,
			expectedOffset: 0,
		},
		{
			name:           "正常系: 負のoffsetは0に丸める",
			limit:          10,
			offset:         -3,
			expectedLimit:  10,
			expectedOffset: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockArticleRepo := new(mocks.ArticleRepository)
			svc := NewArticleService(db, mockArticleRepo, new(mocks.TopicRepository), cfg)

			mockArticleRepo.On("FindAll", mock.Anything, mock.AnythingOfType("*gorm.DB"), tc.expectedLimit, tc.expectedOffset).
				Return(sampleArticles, nil).Once()

			articles, err := svc.ListArticles(ctx, tc.limit, tc.offset)

			require.NoError(t, err)
			assert.Equal(t, sampleArticles, articles)
			mockArticleRepo.AssertExpectations(t)
		})
	}

	t.Run("異常系: リポジトリのエラーは内部エラーで返す", func(t *testing.T) {
		mockArticleRepo := new(mocks.ArticleRepository)
		svc := NewArticleService(db, mockArticleRepo, new(mocks.TopicRepository), cfg)

		mockArticleRepo.On("FindAll", mock.Anything, mock.AnythingOfType("*gorm.DB"), 20, 0).
			Return(nil, assert.AnError).Once()

		articles, err := svc.ListArticles(ctx, 0, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, articles)
	})
}

func Test_articleService_ListFeaturedArticles(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()
	cfg := articleTestConfig()

	t.Run("正常系: 注目記事は設定された件数で取得する", func(t *testing.T) {
		mockArticleRepo := new(mocks.ArticleRepository)
		svc := NewArticleService(db, mockArticleRepo, new(mocks.TopicRepository), cfg)

		expected := []*model.Article{
			{ArticleID: uuid.New(), Title: "年金制度改革の要点", IsFeatured: true, PublishedAt: time.Now()},
		}
		mockArticleRepo.On("FindFeatured", mock.Anything, mock.AnythingOfType("*gorm.DB"), 5).
			Return(expected, nil).Once()

		articles, err := svc.ListFeaturedArticles(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, articles)
		mockArticleRepo.AssertExpectations(t)
	})
}
