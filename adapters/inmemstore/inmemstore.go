package inmemstore

import (
	"fmt"

	"github.com/ddd-commerce/backend/adapters/postgrestore"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnection opens a private in-memory sqlite database with the
// postgrestore schema applied. The pool is pinned to one connection since
// every sqlite memory connection is its own database.
func NewConnection() (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := postgrestore.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
