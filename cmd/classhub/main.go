package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/apper-canvas/classhub-haptic-panel/internal/app"
	"github.com/apper-canvas/classhub-haptic-panel/internal/config"
	"github.com/apper-canvas/classhub-haptic-panel/internal/notify"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository"
	"github.com/apper-canvas/classhub-haptic-panel/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting classhub",
		zap.String("environment", cfg.Environment))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Миграции применяются при каждом старте
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	classRepo := repository.NewClassRepository(pool, logger)
	assignmentRepo := repository.NewAssignmentRepository(pool, logger)

	calendarService := service.NewCalendarService(
		classRepo,
		assignmentRepo,
		service.NewStaticSchoolEventSource(),
		logger,
	)

	// Уведомления опциональны
	var notifier app.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != "" {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Fatal("Failed to create telegram notifier", zap.Error(err))
		}
		notifier = tg
	} else {
		logger.Info("Telegram notifier not configured, digest will be logged only")
	}

	scheduler := app.NewScheduler(calendarService, notifier, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logger.Info("Classhub started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
}
