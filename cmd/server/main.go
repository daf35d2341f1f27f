package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mrftrack/internal/config"
	"mrftrack/internal/handler"
	"mrftrack/internal/repository/postgres"
	"mrftrack/internal/router"
	"mrftrack/internal/scheduler"
	"mrftrack/internal/service"
	"mrftrack/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Must(logger.New(cfg.Log.Level, cfg.Log.Format))
	defer log.Sync()
	zap.ReplaceGlobals(log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	intakeRepo := postgres.NewIntakeRepo(db)
	sortedRepo := postgres.NewSortedRepo(db)
	saleRepo := postgres.NewSaleRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	eventReader := postgres.NewEventReader(db)

	authService := service.NewAuthService(userRepo, cfg.JWT)
	userService := service.NewUserService(userRepo)
	wasteService := service.NewWasteService(intakeRepo, sortedRepo, categoryRepo)
	saleService := service.NewSaleService(saleRepo)
	reportService := service.NewReportService(eventReader)

	handlers := router.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		User:   handler.NewUserHandler(userService),
		Waste:  handler.NewWasteHandler(wasteService),
		Sale:   handler.NewSaleHandler(saleService),
		Report: handler.NewReportHandler(reportService),
		Health: handler.NewHealthHandler(db),
	}

	engine := router.New(cfg, log, handlers, authService, userService)

	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(cfg.Scheduler.CronSpec, reportService, eventReader, logger.Named(log, "scheduler"))
		if err != nil {
			log.Fatal("creating scheduler", zap.Error(err))
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
