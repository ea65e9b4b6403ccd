package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	BindAddress string

	// StoreBackend selects the room store: "memory" for single-process
	// deployments, "redis" for production.
	StoreBackend string
	RedisHost    string
	RedisPort    string

	// ArchiveEnabled turns on the Postgres finished-game archive.
	ArchiveEnabled bool
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
}

func Load() *Config {
	// Missing .env is fine; env vars may come from the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		BindAddress:    getEnv("BIND_ADDRESS", "localhost"),
		StoreBackend:   getEnv("STORE_BACKEND", "memory"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		ArchiveEnabled: getEnv("ARCHIVE_ENABLED", "false") == "true",
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "timeline"),
		DBPassword:     getEnv("DB_PASSWORD", "timeline123"),
		DBName:         getEnv("DB_NAME", "timeline"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func InitRedis(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
	})
}
