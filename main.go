package main

import (
	"elearning/cache"
	"elearning/config"
	"elearning/controllers"
	"elearning/database"
	"elearning/logging"
	"elearning/mailer"
	"elearning/media"
	"elearning/server"
	"elearning/session"
	"elearning/utils"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource so deferred closes happen before main exits.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error().Err(err).Msg("Failed to close database")
		}
	}()

	store, err := cache.Open(cfg.CacheDir, logger)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close cache")
		}
	}()

	scheduler := utils.NewScheduler(db, logger)
	if err := scheduler.ScheduleNotificationCleanup(cfg.NotificationCleanupSpec); err != nil {
		return fmt.Errorf("schedule notification cleanup: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := server.New(controllers.Deps{
		DB:       db,
		Cfg:      cfg,
		Cache:    store,
		Sessions: session.NewManager(cfg, store),
		Mailer:   mailer.New(cfg, logger),
		Media:    media.New(cfg),
		Log:      logger,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		sig := <-quit
		logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Server is running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
