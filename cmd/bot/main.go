package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/meal-schedule-bot/internal/config"
	"github.com/diegoclair/meal-schedule-bot/internal/database"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/service"
	"github.com/diegoclair/meal-schedule-bot/internal/handlers"
	"github.com/diegoclair/meal-schedule-bot/internal/handlers/api"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
	"github.com/diegoclair/meal-schedule-bot/internal/remote"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	if err := logger.Init(logger.Config{Debug: cfg.Debug, Dir: cfg.LogDir}); err != nil {
		logger.Fatal("Failed to initialize logger", "error", err)
	}
	if envErr != nil {
		logger.Warn(".env file not found")
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to initialize database", "error", err)
	}
	defer db.Close()

	store, err := remote.New(remote.Config{
		BaseURL: cfg.RemoteStoreURL,
		Token:   cfg.RemoteStoreToken,
		Timeout: cfg.RemoteStoreTimeout,
	})
	if err != nil {
		logger.Fatal("Failed to configure the remote store", "error", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(database.NewInstance(db), store, slackClient, service.Options{
		GridConcurrency: cfg.GridConcurrency,
		CatalogTTL:      cfg.CatalogTTL,
		DefaultAgeGroup: cfg.DefaultAgeGroup,
	})

	services.Publisher.Start()
	defer services.Publisher.Stop()

	slashCommands := handlers.New(services.Menu, cfg.SlackSigningSecret)
	router := api.NewRouter(
		api.NewHandler(services.Grid, services.Catalog, services.Roster),
		slashCommands.HandleSlashCommand,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}
