package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/relationtrack/relationtrack-backend/api/routes"
	"github.com/relationtrack/relationtrack-backend/internal/config"
	"github.com/relationtrack/relationtrack-backend/internal/handlers"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"github.com/relationtrack/relationtrack-backend/internal/repositories/memory"
	mongorepo "github.com/relationtrack/relationtrack-backend/internal/repositories/mongodb"
	"github.com/relationtrack/relationtrack-backend/internal/services"
	"github.com/relationtrack/relationtrack-backend/pkg/mongodb"
	"golang.org/x/exp/slog"
)

// storageSet bundles one repository per entity, backed by whichever driver
// the config selects. Both drivers satisfy the same interfaces with the same
// behavioral contract.
type storageSet struct {
	tasks       repositories.TaskRepository
	challenges  repositories.ChallengeRepository
	points      repositories.PointRepository
	bucketlist  repositories.BucketlistRepository
	coupons     repositories.CouponRepository
	attractions repositories.AttractionRepository
}

func main() {
	// A missing .env is fine, configuration falls back to defaults
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	store, cleanup, err := buildStorage(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err, "driver", cfg.Storage.Driver)
		os.Exit(1)
	}
	defer cleanup()

	// Services
	ledgerService := services.NewLedgerService(store.points)
	taskService := services.NewTaskService(store.tasks, ledgerService)
	couponService := services.NewCouponService(store.coupons, ledgerService)
	gameService := services.NewGameService(store.challenges, ledgerService)
	bucketlistService := services.NewBucketlistService(store.bucketlist)
	attractionService := services.NewAttractionService(store.attractions)

	// Handlers
	deps := routes.HandlerDependencies{
		TaskHandler:       handlers.NewTaskHandler(taskService),
		GameHandler:       handlers.NewGameHandler(gameService),
		PointHandler:      handlers.NewPointHandler(ledgerService),
		BucketlistHandler: handlers.NewBucketlistHandler(bucketlistService),
		CouponHandler:     handlers.NewCouponHandler(couponService),
		AttractionHandler: handlers.NewAttractionHandler(attractionService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "driver", cfg.Storage.Driver)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

// buildStorage constructs the repository set for the configured driver and
// returns a cleanup func for the underlying connection, if any.
func buildStorage(cfg *config.Config) (*storageSet, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMongoDB:
		client, err := mongodb.NewClient(cfg.MongoDB.URI)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.MongoDB.Database)

		store := &storageSet{
			tasks:       mongorepo.NewTaskRepository(db),
			challenges:  mongorepo.NewChallengeRepository(db),
			points:      mongorepo.NewPointRepository(db),
			bucketlist:  mongorepo.NewBucketlistRepository(db),
			coupons:     mongorepo.NewCouponRepository(db),
			attractions: mongorepo.NewAttractionRepository(db),
		}
		cleanup := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				slog.Error("Error disconnecting from MongoDB", "error", err)
			}
		}
		return store, cleanup, nil

	default:
		store := &storageSet{
			tasks:       memory.NewTaskRepository(),
			challenges:  memory.NewChallengeRepository(),
			points:      memory.NewPointRepository(),
			bucketlist:  memory.NewBucketlistRepository(),
			coupons:     memory.NewCouponRepository(),
			attractions: memory.NewAttractionRepository(),
		}
		return store, func() {}, nil
	}
}

// setupLogger installs a text slog handler at the configured level
func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
