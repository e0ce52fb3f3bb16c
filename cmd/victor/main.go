// Package main is the victor CLI entry point: an interactive vector calculator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/viant/victor/engine"
	"github.com/viant/victor/internal/config"
	"github.com/viant/victor/internal/logging"
	"github.com/viant/victor/internal/shell"
	"github.com/viant/victor/store"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "config file path (YAML)")
	debug := flag.Bool("debug", false, "enable debug logging")
	dbPath := flag.String("db", "", "workspace database path (overrides config; \":memory:\" for a throwaway workspace)")
	noWorkspace := flag.Bool("no-workspace", false, "disable the named-vector workspace")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Workspace.DatabasePath = *dbPath
	}
	if *noWorkspace {
		cfg.Workspace.Disabled = true
	}

	logger, err := logging.New(cfg.Debug || *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("victor failed", zap.Error(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	opts := []shell.Option{shell.WithLogger(logger)}
	if cfg.Shell.HideBanner {
		opts = append(opts, shell.WithoutBanner())
	}
	if !cfg.Workspace.Disabled {
		ws, closeFn, err := openWorkspace(ctx, cfg.Workspace.DatabasePath, logger)
		if err != nil {
			return err
		}
		defer closeFn()
		opts = append(opts, shell.WithWorkspace(ws))
	}
	return shell.New(os.Stdin, os.Stdout, opts...).Run(ctx)
}

func openWorkspace(ctx context.Context, path string, logger *zap.Logger) (*store.Store, func(), error) {
	if path != config.InMemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create workspace dir: %w", err)
		}
	}
	db, err := engine.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workspace: %w", err)
	}
	ws, err := store.New(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Debug("workspace opened", zap.String("database_path", path))
	return ws, func() { _ = db.Close() }, nil
}
