package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/config"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/db"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/handler"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/handler/server"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/logger"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/repository/postgres"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	database := db.MustLoad(cfg)
	log.Info().Str("db", cfg.Database.DBName).Msg("connected to database")
	defer database.Close()

	if err := db.Migrate(database, cfg.Database.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	entryRepo := postgres.NewTimeEntryRepository(database)
	userRepo := postgres.NewUserRepository(database)

	reportService := service.NewReportService(entryRepo)
	hoursService := service.NewHoursService(entryRepo)
	approvalService := service.NewApprovalService(entryRepo, userRepo)
	userService := service.NewUserService(userRepo)

	h := handler.NewHandler(reportService, hoursService, approvalService, userService)
	srv := server.NewServer(h, cfg.HTTP.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
}
