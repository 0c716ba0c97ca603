// Package storage provides the key-value persistence backends the event
// store writes its serialized collections to. Each collection lives as one
// JSON blob under its own key.
package storage

import (
	"context"
	"fmt"

	"hackmanager/internal/config"
)

type Backend interface {
	// Get returns the value stored under key, or (nil, nil) if the key
	// does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Open builds the backend named by the storage configuration.
func Open(cfg config.StorageConfig, logLevel string) (Backend, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryBackend(), nil
	case "file":
		return NewFileBackend(cfg.DataDir)
	case "redis":
		return NewRedisBackend(cfg.Redis), nil
	case "postgres":
		return NewPostgresBackend(cfg.Database, logLevel)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
