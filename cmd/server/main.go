package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/fadilmartias/hirewise/internal/config"
	"github.com/fadilmartias/hirewise/internal/domain/fiber/handler"
	applogger "github.com/fadilmartias/hirewise/internal/logger"
	"github.com/fadilmartias/hirewise/internal/middleware"
	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/fadilmartias/hirewise/internal/repository"
	"github.com/fadilmartias/hirewise/internal/service"
	"github.com/fadilmartias/hirewise/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	if err := applogger.InitLogger(appConfig.Env); err != nil {
		log.Fatalf("Could not init logger: %v", err)
	}
	defer applogger.Sync()
	zlog := applogger.Logger(ctx)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.BaseURL,
		AllowCredentials: true,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(requestid.New())
	app.Use(middleware.RequestContext())
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB(zlog)

	userRepo := repository.NewUserRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)

	scoringConfig := config.LoadScoringConfig()
	gemini, geminiErr := service.NewGeminiService(ctx)

	var scorer service.ScoringServiceInterface
	switch scoringConfig.Provider {
	case config.ScoringProviderOpenRouter:
		scorer = service.NewOpenRouterService()
	default:
		if geminiErr != nil {
			zlog.Fatal("gemini scorer unavailable", zap.Error(geminiErr))
		}
		scorer = gemini
	}

	var embedder usecase.EmbeddingServiceInterface
	if geminiErr == nil {
		embedder = gemini
	} else {
		zlog.Warn("embeddings disabled", zap.Error(geminiErr))
	}

	identity, err := service.NewFirebaseAuthService(ctx)
	if err != nil {
		zlog.Fatal("could not init firebase auth", zap.Error(err))
	}

	notificationUC := usecase.NewNotificationUsecase(userRepo, service.NewEmailJSService(""), config.LoadEmailJSConfig(), appConfig)
	authUC := usecase.NewAuthUsecase(userRepo, identity, appConfig)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, scorer, notificationUC)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, embedder)

	api := app.Group("/api")
	requireSession := middleware.RequireSession(authUC)
	handler.NewAuthHandler(authUC).RegisterRoutes(api)
	handler.NewFeedbackHandler(feedbackUC).RegisterRoutes(api, requireSession)
	handler.NewInterviewHandler(interviewUC).RegisterRoutes(api, requireSession)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			zlog.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
		}
	}()

	zlog.Info("server running", zap.String("port", appConfig.Port), zap.String("scoring_provider", scoringConfig.Provider))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func ConnectDB(zlog *zap.Logger) *gorm.DB {
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(config.LoadDBConfig().DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		zlog.Fatal("could not get database instance", zap.Error(err))
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		zlog.Fatal("could not enable pgvector", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.User{}, &model.Interview{}, &model.Feedback{}); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	return db
}
