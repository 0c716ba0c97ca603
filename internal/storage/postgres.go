package storage

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"hackmanager/internal/config"
)

// KVEntry is the single table the postgres backend uses: one row per
// storage key, value held as a JSON column.
type KVEntry struct {
	Key   string         `gorm:"primaryKey;size:100"`
	Value datatypes.JSON `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// PostgresBackend stores blobs in a kv_entries table through gorm.
type PostgresBackend struct {
	db *gorm.DB
}

func NewPostgresBackend(cfg config.DatabaseConfig, logLevel string) (*PostgresBackend, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	level := logger.Warn
	switch logLevel {
	case "silent":
		level = logger.Silent
	case "error":
		level = logger.Error
	case "info":
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := p.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

func (p *PostgresBackend) Set(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{Key: key, Value: datatypes.JSON(value)}
	err := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := p.db.WithContext(ctx).Where("key IN ?", keys).Delete(&KVEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
