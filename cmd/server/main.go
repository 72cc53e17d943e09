package main

import (
	"context"
	"log"
	"time"

	"virtual-lawyer/config"
	"virtual-lawyer/extract"
	"virtual-lawyer/handlers"
	"virtual-lawyer/repository"
	"virtual-lawyer/seed"
	"virtual-lawyer/service"
	"virtual-lawyer/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	// Try current directory first, then project root
	envLoaded := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if !envLoaded {
		logger.Warn("No .env file found, using environment variables")
	}

	ctx := context.Background()

	// Initialize database connections
	db, err := initPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.Close()

	// Initialize storage
	fileStorage, err := storage.NewStorageFromEnv(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	logger.Info("Storage initialized")

	// Initialize repositories
	lawRepo := repository.NewLawRepository(db)
	penaltyRepo := repository.NewPenaltyRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	queryLogRepo := repository.NewQueryLogRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize services
	authService := service.NewAuthService(
		service.AuthWithUserStore(userRepo),
		service.AuthWithSessionStore(sessionRepo),
		service.AuthWithSessionTTL(cfg.SessionTTL),
		service.AuthWithLogger(logger),
	)

	matchService := service.NewMatchService(
		service.MatchWithLawStore(lawRepo),
		service.MatchWithQueryLogStore(queryLogRepo),
		service.MatchWithDocuments(documentRepo, fileStorage),
		service.MatchWithExtractor(extract.NewPDFExtractor(logger)),
		service.MatchWithLogger(logger),
	)

	lawService := service.NewLawService(
		service.WithLawStore(lawRepo),
		service.WithPenaltyStore(penaltyRepo),
	)

	historyService := service.NewHistoryService(
		service.HistoryWithQueryLogStore(queryLogRepo),
		service.HistoryWithStorage(fileStorage),
		service.HistoryWithLogger(logger),
	)

	documentService := service.NewDocumentService(
		service.DocumentWithStore(documentRepo),
		service.DocumentWithStorage(fileStorage),
		service.DocumentWithLogger(logger),
	)

	if err := seedDatabase(ctx, cfg, authService, lawRepo, logger); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	go purgeSessions(ctx, authService, logger)

	// Setup Gin router
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes + 1<<20

	handlers.RegisterRoutes(r, handlers.Services{
		Auth:           authService,
		Match:          matchService,
		Laws:           lawService,
		History:        historyService,
		Documents:      documentService,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Logger:         logger,
	})

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func initPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	pool, err := repository.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := repository.CreateSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("Postgres connection established")
	return pool, nil
}

func seedDatabase(ctx context.Context, cfg *config.Config, auth *service.AuthService, laws service.LawStore, logger *zap.Logger) error {
	data := seed.Default()
	if cfg.SeedFile != "" {
		loaded, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		data = loaded
	}

	result, err := service.NewSeeder(auth, laws, logger).Seed(ctx, data)
	if err != nil {
		return err
	}
	logger.Info("Seed data applied",
		zap.Int("users", result.Users),
		zap.Int("laws_inserted", result.LawsInserted),
	)
	return nil
}

// purgeSessions drops expired sessions once an hour
func purgeSessions(ctx context.Context, auth *service.AuthService, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		n, err := auth.PurgeExpired(ctx)
		if err != nil {
			logger.Warn("Failed to purge expired sessions", zap.Error(err))
			continue
		}
		if n > 0 {
			logger.Debug("Purged expired sessions", zap.Int64("count", n))
		}
	}
}
