package postgrestore

import (
	"fmt"

	"github.com/ddd-commerce/backend/pkg/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Options struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		Host:         c.DB.Host,
		Port:         c.DB.Port,
		User:         c.DB.User,
		Password:     c.DB.Password,
		Name:         c.DB.Name,
		SSLMode:      c.DB.SSLMode,
		MaxOpenConns: c.DB.MaxOpenConns,
	}
}

func (o Options) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.User, o.Password, o.Name, o.SSLMode)
}

// NewConnection opens and pings a postgres pool and brings its schema up to
// date.
func NewConnection(opts Options) (*sqlx.DB, error) {
	return Open(opts.DSN(), opts.MaxOpenConns)
}

func Open(dsn string, maxOpenConns int) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
