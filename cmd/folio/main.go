package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/redis/go-redis/v9"

	"github.com/alexanderramin/folio/internal/cli"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/imageenc"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.FriendlyError(err))
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	repo, closer, err := openRepo(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := []service.Option{
		service.WithLogger(logger),
		service.WithImageEncoder(imageenc.New(cfg.MaxImageBytes)),
		service.WithMaxDocumentBytes(cfg.MaxDocBytes),
	}
	if cfg.LogUseCases {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}
	store := service.NewStore(repo, cfg.StorageKey, opts...)

	app := cli.NewApp(store)
	app.ServeAddr = cfg.ServeAddr
	app.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Detect interactive terminal for prompts and spinners.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

type closeFunc func() error

func (f closeFunc) Close() error { return f() }

// openRepo opens the document repository selected by cfg.Backend.
func openRepo(ctx context.Context, cfg config.Config) (repository.DocumentRepo, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return repository.NewMemoryDocumentRepo(), closeFunc(func() error { return nil }), nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return repository.NewRedisDocumentRepo(client), client, nil

	case config.BackendPostgres:
		conn, err := repository.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresDocumentRepo(conn), conn, nil

	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteDocumentRepo(database, db.NewSQLiteUnitOfWork(database)), database, nil
	}
}
