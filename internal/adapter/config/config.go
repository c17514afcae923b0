package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Redis    *Redis
	Catalog  *Catalog
	Auth     *Auth
	Cache    *Cache
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
	// IssueToken prints an operator token for the given id and exits.
	IssueToken string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Redis struct {
	URL     string `env:"REDIS_URL"`
	Channel string `env:"REDIS_CHANNEL"`
}

type Catalog struct {
	HostString string `env:"CATALOG_ADDRESS"`
	RetryMax   int    `env:"CATALOG_RETRY_MAX"`
}

type Auth struct {
	// Key is the hex encoded paseto v4 symmetric key. An empty key makes
	// tokens valid for the process lifetime only.
	Key string `env:"AUTH_KEY"`
}

type Cache struct {
	TTL time.Duration `env:"CACHE_TTL"`
}

// NewConfig reads flags, then the optional .env file and the environment.
// Environment values win over flags.
func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var rds Redis
	var catalog Catalog
	var auth Auth
	var cache Cache
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&rds.URL, "redis", "", "Redis URL, e.g. redis://localhost:6379/0")
	flag.StringVar(&rds.Channel, "redis-channel", "orders", "Redis channel prefix")
	flag.StringVar(&catalog.HostString, "c", "", "Shipping and payment methods catalog address")
	flag.IntVar(&catalog.RetryMax, "catalog-retry", 3, "Catalog request retries")
	flag.StringVar(&auth.Key, "k", "", "Hex encoded token key")
	flag.DurationVar(&cache.TTL, "cache-ttl", 5*time.Minute, "Cache entry lifetime, 0 disables expiry")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.StringVar(&app.IssueToken, "issue-token", "", "Print a token for the operator id and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	sections := []struct {
		name string
		v    any
	}{
		{"database", &db},
		{"http", &http},
		{"redis", &rds},
		{"catalog", &catalog},
		{"auth", &auth},
		{"cache", &cache},
		{"app", &app},
	}
	for _, s := range sections {
		if err := env.Parse(s.v); err != nil {
			return nil, fmt.Errorf("error parsing %s config: %w", s.name, err)
		}
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Redis:    &rds,
		Catalog:  &catalog,
		Auth:     &auth,
		Cache:    &cache,
		App:      &app,
	}

	return &config, nil
}
