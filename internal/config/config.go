package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Backend Config
	BackendURL     string        `env:"BACKEND_URL"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"60s"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Cache Config
	ListingCacheTTL time.Duration `env:"LISTING_CACHE_TTL" envDefault:"10m"`
	PayloadCacheTTL time.Duration `env:"PAYLOAD_CACHE_TTL" envDefault:"1h"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Dashboard Config
	AnalysisEnabled     bool   `env:"ANALYSIS_ENABLED" envDefault:"true"`
	LiveRefreshSchedule string `env:"LIVE_REFRESH_SCHEDULE" envDefault:"*/10 * * * *"`
	Locale              string `env:"LOCALE" envDefault:"pt-BR"`
	NoticeCapacity      int    `env:"NOTICE_CAPACITY" envDefault:"50"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		BackendURL:          os.Getenv("BACKEND_URL"),
		BackendTimeout:      getEnvAsDuration("BACKEND_TIMEOUT", 60*time.Second),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		ListingCacheTTL:     getEnvAsDuration("LISTING_CACHE_TTL", 10*time.Minute),
		PayloadCacheTTL:     getEnvAsDuration("PAYLOAD_CACHE_TTL", time.Hour),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		AnalysisEnabled:     getEnvAsBool("ANALYSIS_ENABLED", true),
		LiveRefreshSchedule: getEnv("LIVE_REFRESH_SCHEDULE", "*/10 * * * *"),
		Locale:              getEnv("LOCALE", "pt-BR"),
		NoticeCapacity:      getEnvAsInt("NOTICE_CAPACITY", 50),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
