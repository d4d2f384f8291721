package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// PostgresConfig configures the Postgres-backed order store.
type PostgresConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// PostgresStore serves the Store contract from a Postgres orders table. The
// table is read-only at runtime; Seed exists so a demo database can be
// populated with the mock order book.
type PostgresStore struct {
	db *bun.DB
}

// StoreOption customizes PostgresStore.
type StoreOption func(*PostgresStore)

// WithDB swaps the underlying bun.DB, mainly for tests.
func WithDB(db *bun.DB) StoreOption {
	return func(s *PostgresStore) {
		if db != nil {
			s.db = db
		}
	}
}

func NewPostgresStore(cfg PostgresConfig, opts ...StoreOption) (*PostgresStore, error) {
	store := &PostgresStore{}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}

	if store.db == nil {
		dsn := strings.TrimSpace(cfg.DSN)
		if dsn == "" {
			return nil, errors.New("postgres dsn is required")
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		sqldb := sql.OpenDB(pgdriver.NewConnector(
			pgdriver.WithDSN(dsn),
			pgdriver.WithTimeout(timeout),
		))
		store.db = bun.NewDB(sqldb, pgdialect.New())
	}

	return store, nil
}

func (s *PostgresStore) Lookup(ctx context.Context, email string) (*Order, error) {
	key := normalizeEmail(email)
	if key == "" {
		return nil, ErrInvalidEmail
	}

	ord := new(Order)
	err := s.db.NewSelect().
		Model(ord).
		Where("lower(o.email) = ?", key).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("lookup order for %s: %w", key, err)
	}

	return ord, nil
}

// Seed creates the orders table if needed and inserts the demo order book.
// Existing rows win; seeding is idempotent.
func (s *PostgresStore) Seed(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*Order)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}

	orders := MockOrders()
	if _, err := s.db.NewInsert().
		Model(&orders).
		On("CONFLICT (email) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
