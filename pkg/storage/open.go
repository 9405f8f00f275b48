package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config selects and configures a backend.
type Config struct {
	Driver string      `yaml:"driver" env:"DRIVER"`
	Dir    string      `yaml:"dir" env:"DIR"`
	DSN    string      `yaml:"dsn" env:"DSN"`
	Key    string      `yaml:"key" env:"KEY"`
	Redis  RedisConfig `yaml:"redis" envPrefix:"REDIS_"`
}

// DefaultConfig stores snapshots as files under ./.stepform.
func DefaultConfig() Config {
	return Config{
		Driver: DriverFile,
		Dir:    ".stepform",
		DSN:    "stepform.db",
		Redis: RedisConfig{
			URL:            "redis://localhost:6379/0",
			RetryAttempts:  3,
			RetryInterval:  time.Second,
			ConnectTimeout: 10 * time.Second,
			Prefix:         "stepform:",
		},
	}
}

// Drivers lists the supported driver names.
func Drivers() []string {
	return []string{DriverMemory, DriverFile, DriverSQLite, DriverRedis}
}

// Open builds the backend named by cfg.Driver. The returned function releases
// any connection the backend holds and is safe to call for every driver.
func Open(ctx context.Context, cfg Config) (Backend, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverMemory:
		return NewMemory(), noop, nil
	case DriverFile, "":
		backend, err := NewFile(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return backend, noop, nil
	case DriverSQLite:
		backend, err := OpenSQLite(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return backend, backend.Close, nil
	case DriverRedis:
		client, err := ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedis(client, cfg.Redis.Prefix, cfg.Redis.TTL), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
