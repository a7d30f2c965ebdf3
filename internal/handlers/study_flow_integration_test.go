//go:build integration

// internal/handlers/study_flow_integration_test.go
//
// PostgreSQLコンテナを立てて学習セッションとブックマークのフローを通しで検証する。
// 一意制約違反 (23505) のフォールバックやSQL側での加算はSQLiteでは再現できないため、
// このテストだけは実際のPostgreSQLに対して実行する。
// 実行: go test -tags integration ./internal/handlers/
package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"exam_prep_keep/internal/handlers"
	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository"
	"exam_prep_keep/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	integDB     *gorm.DB
	integLogger *slog.Logger
)

func TestMain(m *testing.M) {
	integLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(integLogger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=exam_prep_keep",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=exam_prep_keep sslmode=disable TimeZone=Asia/Tokyo",
		resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		var errRetry error
		integDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := integDB.DB()
		if errRetry != nil {
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource after connection retry failed: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	integLogger.Info("Connected to test PostgreSQL container",
		slog.String("container_id_short", resource.Container.ID[:12]),
	)

	if err := repository.Migrate(integDB); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func newIntegRouter() *chi.Mux {
	progressRepo := repository.NewGormProgressRepository()
	topicRepo := repository.NewGormTopicRepository()
	userRepo := repository.NewGormUserRepository()
	activityRepo := repository.NewGormActivityRepository()
	bookmarkRepo := repository.NewGormBookmarkRepository()

	progressService := service.NewProgressService(integDB, progressRepo, topicRepo, userRepo, activityRepo)
	bookmarkService := service.NewBookmarkService(integDB, bookmarkRepo, activityRepo)

	progressHandler := handlers.NewProgressHandler(progressService, integLogger)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService, integLogger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.DevUserContextMiddleware)
			r.Put("/progress/{topic_id}", progressHandler.PutTopicProgress)
			r.Post("/progress/{topic_id}/session", progressHandler.PostStudySession)
			r.Get("/progress/{topic_id}", progressHandler.GetTopicProgress)
			r.Post("/bookmarks", bookmarkHandler.PostBookmark)
			r.Get("/bookmarks", bookmarkHandler.GetBookmarks)
		})
	})
	return r
}

func seedIntegUser(t *testing.T) *model.User {
	t.Helper()
	user := &model.User{
		UserID:       uuid.New(),
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "dummy",
		IsActive:     true,
	}
	require.NoError(t, integDB.Create(user).Error)
	return user
}

func seedIntegTopic(t *testing.T) *model.Topic {
	t.Helper()
	subject := &model.Subject{
		SubjectID: uuid.New(),
		Name:      "政治経済 " + uuid.NewString()[:8],
		Icon:      "scale",
		Color:     "#1A237E",
	}
	require.NoError(t, integDB.Create(subject).Error)

	topic := &model.Topic{
		TopicID:    uuid.New(),
		SubjectID:  subject.SubjectID,
		Title:      "日本国憲法の基本原理",
		Difficulty: model.DifficultyBasic,
	}
	require.NoError(t, integDB.Create(topic).Error)
	return topic
}

func TestStudySessionFlow(t *testing.T) {
	router := newIntegRouter()
	user := seedIntegUser(t)
	topic := seedIntegTopic(t)

	postSession := func(pct float64, minutes int) (*httptest.ResponseRecorder, *model.UserProgress) {
		body := model.StudySessionRequest{CompletionPercentage: pct, TimeSpent: minutes}
		req := newTestRequest(t, "POST", fmt.Sprintf("/api/v1/progress/%s/session", topic.TopicID), body, &user.UserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var progress model.UserProgress
		if rr.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &progress))
		}
		return rr, &progress
	}

	// 初回セッション: 進捗行が作られ、累計学習時間に加算される
	rr, progress := postSession(40, 15)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 40.0, progress.CompletionPercentage)
	assert.Equal(t, 15, progress.TotalTimeSpent)

	// 2回目: 達成率は上書き、学習時間は加算
	rr, progress = postSession(70, 10)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 70.0, progress.CompletionPercentage)
	assert.Equal(t, 25, progress.TotalTimeSpent)

	var userInDB model.User
	require.NoError(t, integDB.Where("user_id = ?", user.UserID).First(&userInDB).Error)
	assert.Equal(t, 25, userInDB.TotalStudyMinutes)

	var activityCount int64
	require.NoError(t, integDB.Model(&model.UserActivity{}).
		Where("user_id = ? AND activity_type = ?", user.UserID, model.ActivityStudyProgress).
		Count(&activityCount).Error)
	assert.EqualValues(t, 2, activityCount)

	var rowCount int64
	require.NoError(t, integDB.Model(&model.UserProgress{}).
		Where("user_id = ? AND topic_id = ?", user.UserID, topic.TopicID).
		Count(&rowCount).Error)
	assert.EqualValues(t, 1, rowCount)
}

func TestBookmarkConflictFlow(t *testing.T) {
	router := newIntegRouter()
	user := seedIntegUser(t)
	resourceID := uuid.New()

	post := func() (*httptest.ResponseRecorder, *model.Bookmark) {
		body := model.CreateBookmarkRequest{ResourceType: model.ResourceArticle, ResourceID: resourceID}
		req := newTestRequest(t, "POST", "/api/v1/bookmarks", body, &user.UserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var bookmark model.Bookmark
		if rr.Code == http.StatusCreated {
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bookmark))
		}
		return rr, &bookmark
	}

	rr, first := post()
	require.Equal(t, http.StatusCreated, rr.Code)

	// 2回目は複合ユニーク制約に当たり、既存行がそのまま返る
	rr, second := post()
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, first.BookmarkID, second.BookmarkID)

	var count int64
	require.NoError(t, integDB.Model(&model.Bookmark{}).
		Where("user_id = ? AND resource_type = ? AND resource_id = ?", user.UserID, model.ResourceArticle, resourceID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAccumulateStudyMinutesConcurrent(t *testing.T) {
	user := seedIntegUser(t)
	userRepo := repository.NewGormUserRepository()

	// SQL側の加算式で同時更新しても取りこぼさないこと
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, userRepo.AccumulateStudyMinutes(context.Background(), integDB, user.UserID, 5, 0))
		}()
	}
	wg.Wait()

	found, err := userRepo.FindByID(context.Background(), integDB, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 50, found.TotalStudyMinutes)
}
