// Command importCourses upserts catalog entries from a CSV file.
//
// Run it with the server stopped: badger locks CACHE_DIR while the server
// holds it, and the import must drop the cached course views it made stale.
package main

import (
	"context"
	"elearning/cache"
	"elearning/config"
	"elearning/database"
	"elearning/logging"
	"elearning/utils"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	path := flag.String("file", "courses.csv", "CSV file to import")
	flag.Parse()

	if err := run(*path); err != nil {
		log.Fatal(err)
	}
}

func run(path string) error {
	// Load config and connect to database
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: "console"})

	// Open the cache before touching the catalog so a running server is
	// detected up front.
	var store *cache.BadgerStore
	if cfg.CacheDir != "" {
		store, err = cache.Open(cfg.CacheDir, logger)
		if err != nil {
			return fmt.Errorf("open cache %s (stop the server before importing): %w", cfg.CacheDir, err)
		}
		defer store.Close()
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer database.Close(db)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	ctx := context.Background()
	res, err := utils.ImportCourses(ctx, db, file)
	if err != nil {
		return err
	}

	if store != nil {
		for _, key := range res.StaleCacheKeys() {
			if err := store.Delete(ctx, key); err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("Failed to invalidate cached course view")
			}
		}
	}

	logger.Info().
		Int("inserted", res.Inserted).
		Int("updated", res.Updated).
		Int("skipped", res.Skipped).
		Int("total", res.Total()).
		Msg("Import complete")
	return nil
}
