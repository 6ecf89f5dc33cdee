// Package store keeps the handful of local preferences the client remembers
// between runs. SQLite is the default; a postgres:// DSN switches to Postgres.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/spride/spride-web/src/internal/model"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// DialectFor picks the driver from the DSN scheme.
func DialectFor(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return Postgres
	}
	return SQLite
}

type Repository interface {
	GetPreference(ctx context.Context, key string) (model.Preference, error)
	SetPreference(ctx context.Context, key, value string) (model.Preference, error)
}

type Repositories struct {
	DB      *sql.DB
	Log     *zap.Logger
	Dialect Dialect
	now     func() time.Time
}

func NewRepositories(db *sql.DB, dialect Dialect, logger *zap.Logger) *Repositories {
	return &Repositories{DB: db, Log: logger, Dialect: dialect, now: time.Now}
}

// Open connects to dsn, retrying Postgres a few times while it comes up.
func Open(dsn string, attempts int, delay time.Duration, logger *zap.Logger) (*sql.DB, Dialect, error) {
	dialect := DialectFor(dsn)
	if dialect == SQLite {
		db, err := openSQLite(dsn)
		if err != nil {
			return nil, dialect, fmt.Errorf("open sqlite: %w", err)
		}
		return db, dialect, nil
	}

	var db *sql.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				return db, dialect, nil
			}
			_ = db.Close()
		}
		logger.Warn("db ping error", zap.Error(err), zap.Int("attempt", i+1), zap.Int("of", attempts))
		time.Sleep(delay)
	}
	return nil, dialect, fmt.Errorf("db connect failed: %w", err)
}

func openSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies the embedded migrations for the DSN's dialect on a
// dedicated connection.
func Migrate(dsn string, logger *zap.Logger) error {
	dialect := DialectFor(dsn)
	logger.Info("running migrations", zap.String("dialect", string(dialect)))

	var (
		db     *sql.DB
		driver database.Driver
		err    error
	)
	switch dialect {
	case Postgres:
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return fmt.Errorf("migration open db: %w", err)
		}
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		db, err = openSQLite(dsn)
		if err != nil {
			return fmt.Errorf("migration open db: %w", err)
		}
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	}
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, string(dialect), driver)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("migration close", zap.NamedError("source", srcErr), zap.NamedError("db", dbErr))
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no new migrations, already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders into $n for Postgres.
func (r *Repositories) rebind(query string) string {
	if r.Dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
