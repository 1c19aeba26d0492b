package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"bookhub-backend/internal/config"
	notificationjob "bookhub-backend/internal/domains/notification/job"
	notificationrepo "bookhub-backend/internal/domains/notification/repository"
	notificationservice "bookhub-backend/internal/domains/notification/service"
	"bookhub-backend/internal/infrastructure/database"
	"bookhub-backend/internal/infrastructure/queue"
	"bookhub-backend/internal/shared"
	"bookhub-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	db := database.NewPostgresDB(&cfg.Database)
	err = db.Connect(ctx)
	cancel()
	if err != nil {
		logger.Error("failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	notificationService := notificationservice.NewNotificationService(
		notificationrepo.NewPostgresRepository(db.Pool),
	)

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: cfg.Jobs.WorkerConcurrency,
			Queues: map[string]int{
				shared.QueueHigh:    6,
				shared.QueueDefault: 3,
				shared.QueueLow:     1,
			},
			Logger: asynqLogger{},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeNotificationDeliver, notificationjob.NewDeliverHandler(notificationService))
	mux.HandleFunc(shared.TypeNotificationCleanup, notificationjob.NewCleanupHandler(notificationService, cfg.Jobs.NotificationRetentionDays))

	scheduler, err := queue.NewScheduler(&cfg.Redis)
	if err != nil {
		logger.Error("failed to build scheduler", err)
		os.Exit(1)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("scheduler stopped", err)
		}
	}()

	if err := server.Start(mux); err != nil {
		logger.Error("worker failed to start", err)
		os.Exit(1)
	}

	logger.Info("worker started", map[string]interface{}{
		"concurrency": cfg.Jobs.WorkerConcurrency,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker", nil)
	scheduler.Shutdown()
	server.Shutdown()
	logger.Info("worker stopped", nil)
}
