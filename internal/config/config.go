package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Event   EventConfig
	Storage StorageConfig
	Logging LoggingConfig
}

type EventConfig struct {
	Name        string
	MaxTeamSize int
	MaxTeams    int
}

type StorageConfig struct {
	// Backend selects the persistence backend: memory, file, redis or postgres.
	Backend  string
	DataDir  string
	Redis    RedisConfig
	Database DatabaseConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Event: EventConfig{
			Name:        getEnv("EVENT_NAME", "GL Hackathon 2026"),
			MaxTeamSize: getEnvAsInt("EVENT_MAX_TEAM_SIZE", 4),
			MaxTeams:    getEnvAsInt("EVENT_MAX_TEAMS", 100),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", "file"),
			DataDir: getEnv("STORAGE_DATA_DIR", "data"),
			Redis: RedisConfig{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvAsInt("REDIS_DB", 0),
			},
			Database: DatabaseConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnv("DB_PORT", "5432"),
				User:     getEnv("DB_USER", "hackmanager"),
				Password: getEnv("DB_PASSWORD", ""),
				DBName:   getEnv("DB_NAME", "hackmanager"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
			},
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
