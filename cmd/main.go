// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/handlers"
	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/repository"
	"exam_prep_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	// config.yamlで設定したログレベルを設定
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}
	// config.yamlで設定したログフォーマットを設定
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	// Configファイルの読み込み完了後、アプリケーション全体のデフォルトロガーを設定
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()
	subjectRepo := repository.NewGormSubjectRepository()
	topicRepo := repository.NewGormTopicRepository()
	articleRepo := repository.NewGormArticleRepository()
	questionRepo := repository.NewGormQuestionRepository()
	bookmarkRepo := repository.NewGormBookmarkRepository()
	noteRepo := repository.NewGormNoteRepository()
	progressRepo := repository.NewGormProgressRepository()
	quizRepo := repository.NewGormQuizRepository()
	activityRepo := repository.NewGormActivityRepository()

	mailer := service.NewMailer(&config.Cfg)

	authService := service.NewAuthService(db, userRepo, tokenRepo, mailer, &config.Cfg)
	userService := service.NewUserService(db, userRepo)
	syllabusService := service.NewSyllabusService(db, subjectRepo, topicRepo)
	articleService := service.NewArticleService(db, articleRepo, topicRepo, &config.Cfg)
	questionService := service.NewQuestionService(db, questionRepo, topicRepo, &config.Cfg)
	bookmarkService := service.NewBookmarkService(db, bookmarkRepo, activityRepo)
	noteService := service.NewNoteService(db, noteRepo, activityRepo)
	progressService := service.NewProgressService(db, progressRepo, topicRepo, userRepo, activityRepo)
	quizService := service.NewQuizService(db, quizRepo, activityRepo, &config.Cfg)
	activityService := service.NewActivityService(db, activityRepo, &config.Cfg)
	searchService := service.NewSearchService(db, topicRepo, articleRepo, questionRepo, &config.Cfg)

	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	syllabusHandler := handlers.NewSyllabusHandler(syllabusService, logger)
	articleHandler := handlers.NewArticleHandler(articleService, logger)
	questionHandler := handlers.NewQuestionHandler(questionService, logger)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService, logger)
	noteHandler := handlers.NewNoteHandler(noteService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)
	activityHandler := handlers.NewActivityHandler(activityService, logger)
	searchHandler := handlers.NewSearchHandler(searchService, logger)

	// Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// 認証ミドルウェアを選択 (auth.enabled=false はローカル開発用)
	var authMiddleware func(http.Handler) http.Handler
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		authMiddleware = middleware.JWTAuthMiddleware(&config.Cfg)
	} else {
		slog.Warn("Authentication is DISABLED. Using X-User-ID header for development.")
		authMiddleware = middleware.DevUserContextMiddleware
	}

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/verify-email", authHandler.VerifyEmail)
			r.Post("/login", authHandler.Login)
			r.Post("/password-reset/request", authHandler.RequestPasswordReset)
			r.Post("/password-reset/confirm", authHandler.ResetPassword)
		})

		// 教材カタログは閲覧のみ認証不要
		r.Get("/subjects", syllabusHandler.GetSubjects)
		r.Get("/subjects/{subject_id}", syllabusHandler.GetSubject)
		r.Get("/subjects/{subject_id}/topics", syllabusHandler.GetTopicsBySubject)
		r.Get("/topics/{topic_id}", syllabusHandler.GetTopic)
		r.Get("/topics/{topic_id}/articles", articleHandler.GetArticlesByTopic)
		r.Get("/topics/{topic_id}/questions", questionHandler.GetQuestionsByTopic)
		r.Get("/articles", articleHandler.GetArticles)
		r.Get("/articles/featured", articleHandler.GetFeaturedArticles)
		r.Get("/articles/{article_id}", articleHandler.GetArticle)
		r.Get("/questions/{question_id}", questionHandler.GetQuestion)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			// コンテンツ登録
			r.Post("/subjects", syllabusHandler.PostSubject)
			r.Post("/topics", syllabusHandler.PostTopic)
			r.Put("/topics/{topic_id}/parent", syllabusHandler.PutTopicParent)
			r.Post("/articles", articleHandler.PostArticle)
			r.Post("/questions", questionHandler.PostQuestion)
			r.Post("/questions/random", questionHandler.PostRandomQuestions)

			// User routes
			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", userHandler.GetMe)
				r.Put("/", userHandler.UpsertMe)
				r.Post("/study-minutes", userHandler.AddStudyMinutes)
			})

			// Bookmark routes
			r.Route("/bookmarks", func(r chi.Router) {
				r.Get("/", bookmarkHandler.GetBookmarks)
				r.Post("/", bookmarkHandler.PostBookmark)
				r.Delete("/{resource_type}/{resource_id}", bookmarkHandler.DeleteBookmark)
				r.Get("/{resource_type}/{resource_id}/check", bookmarkHandler.GetBookmarkCheck)
			})

			// Note routes
			r.Route("/notes", func(r chi.Router) {
				r.Get("/", noteHandler.GetNotes)
				r.Post("/", noteHandler.PostNote)
				r.Put("/{note_id}", noteHandler.PutNote)
				r.Delete("/{note_id}", noteHandler.DeleteNote)
			})

			// Progress routes
			r.Route("/progress", func(r chi.Router) {
				r.Get("/", progressHandler.GetProgress)
				r.Get("/{topic_id}", progressHandler.GetTopicProgress)
				r.Put("/{topic_id}", progressHandler.PutTopicProgress)
				r.Post("/{topic_id}/session", progressHandler.PostStudySession)
			})

			// Quiz routes
			r.Route("/quiz-attempts", func(r chi.Router) {
				r.Get("/", quizHandler.GetQuizAttempts)
				r.Post("/", quizHandler.PostQuizAttempt)
			})

			r.Get("/activity", activityHandler.GetActivity)
			r.Get("/search", searchHandler.GetSearch)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// DB接続チェック
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		err = sqlDB.PingContext(r.Context())
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
