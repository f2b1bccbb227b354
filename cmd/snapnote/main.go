package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"snapnote/internal/cli"
	"snapnote/internal/config"
	"snapnote/internal/kvstore"
	"snapnote/internal/logging"
	"snapnote/internal/session"
	"snapnote/internal/store"
	"snapnote/internal/store/local"
	"snapnote/internal/store/remote"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "snapnote:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.StringP("config", "c", "", "path to a JSON or YAML config file")
		backend    = flag.StringP("backend", "b", "", "storage backend: local or remote")
		serverAddr = flag.StringP("server", "a", "", "base URL of the note service")
		dbPath     = flag.StringP("db", "d", "", "path of the local database file")
		verbose    = flag.BoolP("verbose", "v", false, "enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *serverAddr != "" {
		cfg.ServerAddr = *serverAddr
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx := context.Background()

	// the kv database backs the session snapshot under both backends, and
	// the whole store under the local one
	kv, err := kvstore.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer kv.Close()

	sessions := session.NewManager(kv, log)

	var st store.Store
	switch cfg.Backend {
	case config.BackendRemote:
		st, err = remote.New(cfg.ServerAddr, sessions, log,
			remote.WithTimeout(cfg.RequestTimeout))
		if err != nil {
			return err
		}
	default:
		st = local.New(kv, log)
	}

	return cli.NewApp(st, sessions, log).Run(ctx)
}
