package migrations

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

const Dialect = "postgres"

// Open returns a database/sql handle for goose, which does not speak pgxpool.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Prepare points goose at the embedded migrations.
func Prepare() error {
	goose.SetBaseFS(FS)
	return goose.SetDialect(Dialect)
}

// Up applies every pending migration.
func Up(db *sql.DB) error {
	if err := Prepare(); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
