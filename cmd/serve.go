package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-marketplace.com/task-marketplace/internal/configs"
	httpapi "task-marketplace.com/task-marketplace/internal/http"
	"task-marketplace.com/task-marketplace/internal/locks"
	repository "task-marketplace.com/task-marketplace/internal/repositories"
	"task-marketplace.com/task-marketplace/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the marketplace HTTP API and the overdue task sweeper",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := config.NewLogger(os.Stdout, cfg.LogLevel)
		slog.SetDefault(logger)

		database, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return err
		}

		locker, closeLocker, err := newLocker(cfg, logger)
		if err != nil {
			return err
		}
		defer closeLocker()

		taskRepo := repository.NewTaskRepository(database)
		offerRepo := repository.NewOfferRepository(database)
		locationRepo := repository.NewLocationRepository(database)
		tx := repository.NewTransactor(database)

		taskService := services.NewTaskService(taskRepo, locationRepo, tx, locker)
		coordinator := services.NewAssignmentCoordinator(offerRepo, taskService, tx, locker, logger)
		offerService := services.NewOfferService(offerRepo, taskService, coordinator, tx, locker)
		locationService := services.NewLocationService(locationRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var sweeper *services.OverdueSweeper
		if cfg.SweepIntervalSeconds > 0 {
			sweeper = services.NewOverdueSweeper(
				taskRepo,
				taskService,
				cfg.SweepWorkers,
				cfg.SweepBatchSize,
				cfg.SweepInterval(),
				logger,
			)
		}

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.NewHandler(taskService, offerService, locationService), cfg.RateLimit, logger)

		go func() {
			logger.Info("HTTP server listening", slog.String("addr", cfg.AppURL()))
			if err := e.Start(cfg.AppURL()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", slog.Any("error", err))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		if sweeper != nil {
			sweeper.Shutdown(shutdownCtx)
		}

		logger.Info("HTTP server and sweeper shut down gracefully")
		return nil
	},
}

func newLocker(cfg config.Config, logger *slog.Logger) (locks.Locker, func(), error) {
	if cfg.LockBackend != "redis" {
		return locks.NewMemoryLocker(), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr())
	if err != nil {
		return nil, nil, err
	}

	return locks.NewRedisLocker(redisClient, cfg.RedisLockPrefix, cfg.LockTTL(), logger), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
