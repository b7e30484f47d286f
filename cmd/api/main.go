package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fastprodman/gameledger/internal/api"
	"github.com/fastprodman/gameledger/internal/config"
	"github.com/fastprodman/gameledger/internal/infra/logging"
	"github.com/fastprodman/gameledger/internal/infra/pgutils"
	pgaccounts "github.com/fastprodman/gameledger/internal/repos/accounts/postgres"
	pgbalances "github.com/fastprodman/gameledger/internal/repos/balances/postgres"
	"github.com/fastprodman/gameledger/internal/repos/currencies"
	pgcurrencies "github.com/fastprodman/gameledger/internal/repos/currencies/postgres"
	rediscurrencies "github.com/fastprodman/gameledger/internal/repos/currencies/redis"
	"github.com/fastprodman/gameledger/internal/services/economy"
	"github.com/fastprodman/gameledger/pkg/envconf"
	"github.com/fastprodman/gameledger/pkg/shutdownqueue"
	"github.com/redis/go-redis/v9"
)

var errNoDefaultCurrency = errors.New("no default currency configured")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(apiConfig)

	err := envconf.LoadWithDotEnv(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Infra ---
	dbConns, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	shutdownqueue.Add("postgres", func(context.Context) error {
		slog.Info("Close postgres pool")

		return dbConns.Close()
	})

	catalog, err := currencyCatalog(ctx, dbConns, cfg.Redis)
	if err != nil {
		return err
	}

	// --- Domain ---
	ledger := economy.New(
		slog.Default(),
		pgaccounts.New(dbConns),
		pgbalances.New(dbConns),
		catalog,
	)

	def, ok := ledger.GetDefaultCurrency(ctx)
	if !ok {
		return errNoDefaultCurrency
	}

	slog.Info("Default currency loaded", "currency_id", def.ID, "symbol", def.Symbol)

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, ledger, slog.Default())

	shutdownqueue.Add("http server", func(c context.Context) error {
		slog.Info("Shut down server")

		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("API started", "port", cfg.Port)

	select {
	case <-ctx.Done():
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}

// currencyCatalog returns the Postgres catalog, wrapped in the Redis cache
// when REDIS_ADDR is set.
func currencyCatalog(ctx context.Context, db *sql.DB, cfg config.RedisConfig) (currencies.Currencies, error) {
	base := pgcurrencies.New(db)
	if !cfg.Enabled() {
		return base, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := rdb.Ping(ctx).Err()
	if err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("ping redis: %w", err)
	}

	shutdownqueue.Add("redis", func(context.Context) error {
		slog.Info("Close redis client")

		return rdb.Close()
	})

	cached := rediscurrencies.New(base, rdb, cfg.TTL, slog.Default())

	// The migrator may have changed the catalog since the last run.
	err = cached.Invalidate(ctx)
	if err != nil {
		slog.Warn("Invalidate currency cache", "error", err)
	}

	return cached, nil
}
