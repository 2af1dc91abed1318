package oracle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ErrYearRange is returned for dates SQLite's date functions cannot represent.
var ErrYearRange = errors.New("year outside 0..9999")

// =============================================================================
// Connection
// =============================================================================

// SQLite asks SQLite's date functions for the weekday of a date.
// Nothing is stored; the default DSN is an in-memory database.
type SQLite struct {
	db     *sql.DB
	logger *slog.Logger
}

// Config holds SQLite connection options.
type Config struct {
	DSN             string        // Data source name (default: ":memory:")
	MaxOpenConns    int           // Maximum open connections
	MaxIdleConns    int           // Maximum idle connections
	ConnMaxLifetime time.Duration // Connection max lifetime
}

// DefaultConfig returns defaults for a read-only calendar connection.
//
// Each in-memory connection is its own database, which is fine here since
// no tables are ever created.
func DefaultConfig(dsn string) Config {
	if dsn == "" {
		dsn = ":memory:"
	}
	return Config{
		DSN:             dsn,
		MaxOpenConns:    4,
		MaxIdleConns:    4,
		ConnMaxLifetime: time.Hour,
	}
}

// OpenSQLite opens the connection and verifies it with a ping.
//
// The caller is responsible for calling Close() when done.
func OpenSQLite(cfg Config, logger *slog.Logger) (*SQLite, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	logger.Debug("sqlite oracle connected",
		slog.String("dsn", cfg.DSN),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return &SQLite{db: db, logger: logger}, nil
}

// Close closes the connection.
func (s *SQLite) Close() error {
	s.logger.Debug("closing sqlite oracle")
	return s.db.Close()
}

// Health checks that SQLite answers a known date correctly.
func (s *SQLite) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}

	// 2000-01-01 was a Saturday.
	wd, err := s.Weekday(ctx, 2000, 1, 1)
	if err != nil {
		return fmt.Errorf("sqlite query failed: %w", err)
	}
	if wd != 6 {
		return fmt.Errorf("sqlite returned weekday %d for 2000-01-01, want 6", wd)
	}

	return nil
}

// =============================================================================
// Queries
// =============================================================================

// Weekday returns strftime('%w') for the date.
func (s *SQLite) Weekday(ctx context.Context, year, month, day int) (int, error) {
	if year < 0 || year > 9999 {
		return 0, fmt.Errorf("%w: %d", ErrYearRange, year)
	}

	date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

	var wd sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT CAST(strftime('%w', ?) AS INTEGER)", date).Scan(&wd)
	if err != nil {
		return 0, fmt.Errorf("query weekday of %s: %w", date, err)
	}
	if !wd.Valid {
		return 0, fmt.Errorf("sqlite rejected date %s", date)
	}

	return int(wd.Int64), nil
}
