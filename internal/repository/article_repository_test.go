// internal/repository/article_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"exam_prep_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupArticleRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:articlerepo?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Article{}, &model.ArticleTopic{}))
	require.NoError(t, db.Exec("DELETE FROM article_topics").Error)
	require.NoError(t, db.Exec("DELETE FROM articles").Error)
	return db
}

func newTestArticle(title string, publishedAt time.Time, featured bool) *model.Article {
	return &model.Article{
		ArticleID:   uuid.New(),
		Title:       title,
		Content:     "本文",
		Summary:     "要約",
		PublishedAt: publishedAt,
		ReadTime:    5,
		IsFeatured:  featured,
	}
}

func TestGormArticleRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := setupArticleRepoDB(t)
	repo := NewGormArticleRepository()

	now := time.Now()
	// 登録順と公開日時の順序をずらして公開日時順を確認する
	oldest := newTestArticle("選挙制度の仕組み", now.Add(-72*time.Hour), false)
	newest := newTestArticle("日銀が金利を据え置き", now.Add(-24*time.Hour), false)
	middle := newTestArticle("国会で予算案可決", now.Add(-48*time.Hour), false)
	for _, a := range []*model.Article{oldest, newest, middle} {
		require.NoError(t, repo.Create(ctx, db, a))
	}

	t.Run("正常系: 公開日時の降順で返す", func(t *testing.T) {
		articles, err := repo.FindAll(ctx, db, 10, 0)

		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.Equal(t, newest.ArticleID, articles[0].ArticleID)
		assert.Equal(t, middle.ArticleID, articles[1].ArticleID)
		assert.Equal(t, oldest.ArticleID, articles[2].ArticleID)
	})

	t.Run("正常系: limitで件数を絞る", func(t *testing.T) {
		articles, err := repo.FindAll(ctx, db, 2, 0)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, newest.ArticleID, articles[0].ArticleID)
		assert.Equal(t, middle.ArticleID, articles[1].ArticleID)
	})

	t.Run("正常系: offsetで先頭を読み飛ばす", func(t *testing.T) {
		articles, err := repo.FindAll(ctx, db, 2, 2)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, oldest.ArticleID, articles[0].ArticleID)
	})
}

func TestGormArticleRepository_FindFeatured(t *testing.T) {
	ctx := context.Background()
	db := setupArticleRepoDB(t)
	repo := NewGormArticleRepository()

	now := time.Now()
	featuredOld := newTestArticle("憲法改正論議の現在地", now.Add(-48*time.Hour), true)
	featuredNew := newTestArticle("子育て支援策が拡充", now.Add(-12*time.Hour), true)
	plain := newTestArticle("地方選挙の結果まとめ", now, false)
	for _, a := range []*model.Article{featuredOld, featuredNew, plain} {
		require.NoError(t, repo.Create(ctx, db, a))
	}

	articles, err := repo.FindFeatured(ctx, db, 5)

	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, featuredNew.ArticleID, articles[0].ArticleID)
	assert.Equal(t, featuredOld.ArticleID, articles[1].ArticleID)
}

func TestGormArticleRepository_FindByTopic(t *testing.T) {
	ctx := context.Background()
	db := setupArticleRepoDB(t)
	repo := NewGormArticleRepository()

	now := time.Now()
	topicID := uuid.New()
	linkedOld := newTestArticle("為替相場の基礎知識", now.Add(-48*time.Hour), false)
	linkedNew := newTestArticle("貿易収支が黒字に転換", now.Add(-6*time.Hour), false)
	unlinked := newTestArticle("裁判員制度の課題", now, false)
	for _, a := range []*model.Article{linkedOld, linkedNew, unlinked} {
		require.NoError(t, repo.Create(ctx, db, a))
	}
	for _, a := range []*model.Article{linkedOld, linkedNew} {
		link := &model.ArticleTopic{ArticleTopicID: uuid.New(), ArticleID: a.ArticleID, TopicID: topicID}
		require.NoError(t, repo.LinkTopic(ctx, db, link))
	}

	articles, err := repo.FindByTopic(ctx, db, topicID)

	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, linkedNew.ArticleID, articles[0].ArticleID)
	assert.Equal(t, linkedOld.ArticleID, articles[1].ArticleID)
}
