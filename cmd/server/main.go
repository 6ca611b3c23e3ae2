package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/sync/errgroup"

	"github.com/daybook-app/daybook/internal/api/rest"
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/repository/memory"
	"github.com/daybook-app/daybook/internal/repository/postgres"
	"github.com/daybook-app/daybook/internal/usecase/diary"
	"github.com/daybook-app/daybook/internal/usecase/memo"
	"github.com/daybook-app/daybook/migrations"
	"github.com/daybook-app/daybook/pkg/database"
	"github.com/daybook-app/daybook/pkg/httpx"
	"github.com/daybook-app/daybook/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	diaryUC, memoUC, cleanup, err := buildUsecases(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init storage: %v", err)
	}
	defer cleanup()

	srv, err := httpx.New(httpx.NewOptions(
		cfg.HTTP.Addr,
		rest.NewHandler(diaryUC, memoUC),
		httpx.WithMiddlewares(slogx.Middleware),
		httpx.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}

func buildUsecases(ctx context.Context, cfg config.Config) (*diary.Usecase, *memo.Usecase, func(), error) {
	var (
		diaryOpts diary.Options
		memoOpts  memo.Options
		cleanup   = func() {}
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := database.NewPGX(ctx, database.NewOptions(
			cfg.Database.Addr(),
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			database.WithLogger(slogx.Default()),
		))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		if err := migrate(pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}

		db := database.NewDatabase(pool)
		diaryOpts = diary.NewOptions(postgres.New(db))
		memoOpts = memo.NewOptions(postgres.New(db))
		cleanup = db.Close

	default:
		repo := memory.New()
		diaryOpts = diary.NewOptions(repo)
		memoOpts = memo.NewOptions(repo)
	}

	diaryUC, err := diary.New(diaryOpts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init diary usecase: %w", err)
	}

	memoUC, err := memo.New(memoOpts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init memo usecase: %w", err)
	}

	return diaryUC, memoUC, cleanup, nil
}

func migrate(pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %v", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %v", err)
	}

	return nil
}
