package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"studio-content/internal/config"
	"studio-content/internal/db"
	"studio-content/internal/logging"
	"studio-content/internal/seed"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a YAML fixture (defaults to the bundled one)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New("seed", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	fx, err := loadFixture(filePath)
	if err != nil {
		logger.Fatal("load fixture", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool, fx, logger); err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}

	logger.Info("seed applied",
		zap.Int("pages", len(fx.Pages)),
		zap.Int("projects", len(fx.Projects)),
		zap.Int("posts", len(fx.Posts)),
	)
}

func loadFixture(path string) (*seed.Fixture, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}
