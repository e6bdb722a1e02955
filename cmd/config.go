package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"deliveryapi/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort         = "8080"
	defaultDBPort           = "5432"
	defaultDBSslMode        = "disable"
	defaultRabbitMQExchange = "orders"
	defaultJWTTTL           = 24 * time.Hour
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	// RabbitMQURL may be empty; status change events are then only logged.
	RabbitMQURL      string
	RabbitMQExchange string

	AbandonedOrderTTL      time.Duration
	AbandonedOrderSchedule string

	LogLevel slog.Level
}

// LoadConfig reads envFile into the process environment, without overriding
// variables that are already set, and builds a Config from it. A missing
// envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:               envOr("HTTP_PORT", defaultHTTPPort),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOr("DB_PORT", defaultDBPort),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", defaultDBSslMode),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:       envOr("RABBITMQ_EXCHANGE", defaultRabbitMQExchange),
		AbandonedOrderSchedule: os.Getenv("ABANDONED_ORDER_SCHEDULE"),
	}

	var errList []error
	if cfg.DBHost == "" {
		errList = append(errList, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if cfg.JWTSecret == "" {
		errList = append(errList, errs.NewValueIsRequiredError("JWT_SECRET"))
	}

	var err error
	if cfg.JWTTTL, err = durationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		errList = append(errList, err)
	}
	// Zero leaves the job on its own default.
	if cfg.AbandonedOrderTTL, err = durationEnv("ABANDONED_ORDER_TTL", 0); err != nil {
		errList = append(errList, err)
	}
	if cfg.LogLevel, err = logLevel(os.Getenv("LOG_LEVEL")); err != nil {
		errList = append(errList, err)
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("must be positive, got %s", d))
	}
	return d, nil
}

func logLevel(raw string) (slog.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}
