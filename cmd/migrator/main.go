package main

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fastprodman/gameledger/internal/infra/logging"
	"github.com/fastprodman/gameledger/internal/infra/pgutils"
	"github.com/fastprodman/gameledger/internal/seed"
	"github.com/fastprodman/gameledger/pkg/envconf"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var baseFS embed.FS

//go:embed test_data/*.sql
var devFS embed.FS

//go:embed currencies.yaml
var defaultCatalog []byte

// Dev fixtures keep their own version table so they never collide with the
// schema versions.
const devMigrationsTable = "schema_migrations_dev"

type migratorConfig struct {
	DSN         string     `env:"PG_DSN"`
	LogLevel    slog.Level `env:"APP_LOG_LEVEL" default:"INFO"`
	AppEnv      string     `env:"APP_ENV" default:""`
	CatalogFile string     `env:"CURRENCY_CATALOG_FILE" default:""`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := migrateAll(ctx)
	if err != nil {
		slog.Error("migration run failed", "error", err)
		//nolint:gocritic
		os.Exit(1)
	}

	slog.Info("migration run finished successfully")
}

func migrateAll(ctx context.Context) error {
	cfg := new(migratorConfig)

	err := envconf.LoadWithDotEnv(cfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	db, err := sql.Open(pgutils.DriverName, cfg.DSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	//nolint:errcheck
	defer db.Close()

	err = db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	err = runMigrations(db, baseFS, "migrations", &postgres.Config{})
	if err != nil {
		return fmt.Errorf("base migrations failed: %w", err)
	}

	slog.Info("base migrations applied")

	catalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	err = seed.Apply(ctx, db, catalog)
	if err != nil {
		return fmt.Errorf("seed currencies: %w", err)
	}

	slog.Info("currency catalog applied", "currencies", len(catalog.Currencies))

	if cfg.AppEnv == "DEV" {
		err = runMigrations(db, devFS, "test_data", &postgres.Config{MigrationsTable: devMigrationsTable})
		if err != nil {
			return fmt.Errorf("dev seed migrations failed: %w", err)
		}

		slog.Info("dev seed migrations applied")
	}

	return nil
}

// loadCatalog reads the catalog file when one is configured and falls back
// to the embedded default.
func loadCatalog(path string) (seed.Catalog, error) {
	if path == "" {
		c, err := seed.Parse(bytes.NewReader(defaultCatalog))
		if err != nil {
			return seed.Catalog{}, fmt.Errorf("embedded catalog: %w", err)
		}

		return c, nil
	}

	c, err := seed.ParseFile(path)
	if err != nil {
		return seed.Catalog{}, fmt.Errorf("catalog file: %w", err)
	}

	return c, nil
}

func runMigrations(db *sql.DB, fsys embed.FS, dir string, pgCfg *postgres.Config) error {
	driver, err := postgres.WithInstance(db, pgCfg)
	if err != nil {
		return fmt.Errorf("init postgres driver: %w", err)
	}

	return migrateUp(driver, fsys, dir)
}

func migrateUp(driver database.Driver, fsys embed.FS, dir string) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("m.Up: %w", err)
	}

	return nil
}
