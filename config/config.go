package config

import (
	"fmt"
	"os"

	"github.com/ibrahim-qi/macro-logger-app/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	ListenAddr string
	DSN        string
	JWTSecret  string
}

// Load reads .env (when present) and the environment. JWT_SECRET is the only
// hard requirement; everything else has a workable default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	if os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_NAME", "macrolog"),
		envOr("DB_PORT", "5432"),
	)

	return &Config{
		ListenAddr: addr,
		DSN:        dsn,
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}, nil
}

// ConnectDB opens the database and migrates the schema. TranslateError is on
// so unique-constraint violations surface as gorm.ErrDuplicatedKey, which the
// saved-food service relies on for duplicate-name detection.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.FoodEntry{},
		&models.SavedFood{},
		&models.UserGoals{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

// NewLogger builds the production JSON logger shared by all components.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
