package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cardq/cardq/internal/config"
	"github.com/cardq/cardq/internal/deckimport"
	"github.com/cardq/cardq/internal/storage"
	"github.com/cardq/cardq/internal/web"
	"github.com/spf13/pflag"
)

func main() {
	defaults := config.Default()
	flags := pflag.NewFlagSet("cardq", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "path to config file")
	flags.String("listen", defaults.Listen, "address to listen on")
	flags.String("db", defaults.DBPath, "path to the sqlite database")
	flags.String("repos_dir", defaults.ReposDir, "directory for cloned deck repositories")
	flags.String("log_level", defaults.LogLevel, "log level (debug, info, warn, error)")
	skipImport := flags.Bool("skip-import", false, "skip the deck import on startup")
	if err := flags.Parse(os.Args[1:]); err != nil {
		slog.Error("failed to parse flags", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if !*skipImport {
		if err := deckimport.Run(db, cfg.ReposDir); err != nil {
			slog.Error("deck import failed", "error", err)
		}
	}

	server, err := web.NewServer(db, cfg, slog.Default())
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "listen", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, server); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
