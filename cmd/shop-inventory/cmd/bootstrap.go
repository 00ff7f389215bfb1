package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/shop-inventory/internal/config"
	"github.com/donaldgifford/shop-inventory/internal/secret"
	"github.com/donaldgifford/shop-inventory/internal/store"
	"github.com/donaldgifford/shop-inventory/pkg/logger"
)

// bootstrap loads the env file and config, then builds the logger and
// opens the secret table.
func bootstrap() (*config.Config, *slog.Logger, *secret.Store, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	secrets, err := secret.Load(cfg.Secrets.MasterKey, cfg.Secrets.TablePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading secrets: %w", err)
	}
	return cfg, log, secrets, nil
}

// openStore connects to PostgreSQL. A configured URL wins; otherwise the
// password is decrypted from the secret table.
func openStore(ctx context.Context, cfg *config.Config, secrets *secret.Store) (*store.PostgresStore, error) {
	dsn := cfg.Database.URL
	if dsn == "" {
		password, err := secrets.DecryptString(cfg.Database.PasswordSecret)
		if err != nil {
			return nil, fmt.Errorf("decrypting database password: %w", err)
		}
		dsn = cfg.Database.DSN(password)
	}

	st, err := store.NewPostgresStore(ctx, dsn, store.WithMaxConns(cfg.Database.MaxConns))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return st, nil
}
