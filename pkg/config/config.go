package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"dev"`
	Port         int    `envconfig:"PORT" default:"8080"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`

	DB struct {
		Driver       string `envconfig:"DRIVER" default:"postgres"`
		Host         string `envconfig:"HOST" default:"localhost"`
		Port         int    `envconfig:"PORT" default:"5432"`
		User         string `envconfig:"USER" default:"postgres"`
		Password     string `envconfig:"PASSWORD" default:"postgres"`
		Name         string `envconfig:"NAME" default:"commerce"`
		SSLMode      string `envconfig:"SSLMODE" default:"disable"`
		MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"10"`
	} `envconfig:"DB"`

	Redis struct {
		Addr     string `envconfig:"ADDR"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0"`
		Channel  string `envconfig:"CHANNEL" default:"domain-events"`
	} `envconfig:"REDIS"`

	Events struct {
		IsolateFailures bool `envconfig:"ISOLATE_FAILURES" default:"false"`
	} `envconfig:"EVENTS"`
}

// LoadConfig reads an optional .env file then the environment.
func LoadConfig(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("cannot process env: %w", err)
	}

	return &cfg, nil
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}
