package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/storage/api/model"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

const (
	sqlitePrefix     = "sqlite:"
	sqliteTimeFormat = "_time_format=sqlite"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a model.Storage backed by database/sql. Postgres is used in
// production, SQLite for local runs and tests.
type Store struct {
	*repo

	db *sql.DB
}

var _ model.Storage = (*Store)(nil)

// New opens the database described by dsn and applies pending migrations.
// A dsn prefixed with "sqlite:", "file:" or equal to ":memory:" selects SQLite.
func New(dsn string) (*Store, error) {
	d, driver, source := parseDSN(dsn)

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("error while %s connect: %w", driver, err)
	}

	if d == dialectSQLite {
		if err := tuneSQLite(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := migrate(context.Background(), db, d); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Store{
		repo: &repo{q: db, dialect: d},
		db:   db,
	}, nil
}

func parseDSN(dsn string) (dialect, string, string) {
	switch {
	case strings.HasPrefix(dsn, sqlitePrefix):
		return dialectSQLite, "sqlite", withTimeFormat(strings.TrimPrefix(dsn, sqlitePrefix))
	case strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, ":memory:"):
		return dialectSQLite, "sqlite", withTimeFormat(dsn)
	default:
		return dialectPostgres, "pgx", dsn
	}
}

func withTimeFormat(dsn string) string {
	if strings.Contains(dsn, "_time_format=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteTimeFormat
	}

	return dsn + "?" + sqliteTimeFormat
}

func tuneSQLite(db *sql.DB) error {
	// one writer keeps in-memory databases alive and serializes transactions
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return nil
}

func migrate(ctx context.Context, db *sql.DB, d dialect) error {
	dir, gooseDialect := "migrations/postgres", goose.DialectPostgres
	if d == dialectSQLite {
		dir, gooseDialect = "migrations/sqlite", goose.DialectSQLite3
	}

	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}
	for _, result := range results {
		zap.L().Debug("migration applied", zap.String("source", result.Source.Path))
	}

	return nil
}

// InTx runs fn against a transaction-scoped repository. The transaction is
// committed when fn returns nil and rolled back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(repo model.Repository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&repo{q: tx, dialect: s.dialect}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// repo implements model.Repository on top of either *sql.DB or *sql.Tx.
type repo struct {
	q       querier
	dialect dialect
}

// rebind converts '?' placeholders to the '$n' form postgres expects.
func (r *repo) rebind(query string) string {
	if r.dialect != dialectPostgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 16)

	n := 0
	for _, ch := range query {
		if ch != '?' {
			sb.WriteRune(ch)
			continue
		}
		n++
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(n))
	}

	return sb.String()
}

func (r *repo) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.q.ExecContext(ctx, r.rebind(query), args...)
}

func (r *repo) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.q.QueryContext(ctx, r.rebind(query), args...)
}

func (r *repo) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return r.q.QueryRowContext(ctx, r.rebind(query), args...)
}
