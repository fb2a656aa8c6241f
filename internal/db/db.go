// db.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"github.com/sukalov/lyricscraper/internal/config"
	"github.com/sukalov/lyricscraper/internal/logger"
)

const schema = `CREATE TABLE IF NOT EXISTS songs (
    song_name TEXT,
    lyrics TEXT
)`

// DB wraps one connection and the prepared insert statement.
type DB struct {
	conn     *sql.DB
	insert   *sql.Stmt
	postgres bool
}

var sqlDrivers = map[string]string{
	config.DriverPostgres: "pgx",
	config.DriverLibSQL:   "libsql",
	config.DriverSQLite:   "sqlite",
}

// Open connects, ensures the songs table exists and prepares the insert.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	sqlDriver, ok := sqlDrivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	conn, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(5 * time.Minute)

	d := &DB{conn: conn, postgres: driver == config.DriverPostgres}
	if err := d.init(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return d, nil
}

// OpenConfig opens the store described by cfg.
func OpenConfig(ctx context.Context, cfg *config.Config) (*DB, error) {
	driver, dsn := cfg.StorageDSN()
	return Open(ctx, driver, dsn)
}

func (d *DB) init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := d.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create songs table: %w", err)
	}

	stmt, err := d.conn.PrepareContext(ctx, d.rebind(`INSERT INTO songs (song_name, lyrics) VALUES (?, ?)`))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	d.insert = stmt
	return nil
}

// rebind turns ? placeholders into $n for postgres.
func (d *DB) rebind(query string) string {
	if !d.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Close releases the statement, then the connection.
func (d *DB) Close() error {
	var errs []error
	if d.insert != nil {
		if err := d.insert.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close insert statement: %w", err))
		}
	}
	if err := d.conn.Close(); err != nil {
		logger.Error(fmt.Sprintf("error closing database: %v", err))
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}
