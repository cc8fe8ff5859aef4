package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// placeholderMarker - маркер незаполненного адреса отправки заявок
const placeholderMarker = "PASTE_"

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config. Пустой REDIS_ADDR отключает кеш границ и очередь заявок.
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Submission - адрес и токен приемника заявок; nil, если не настроен
	Submission *SubmissionConfig

	// Webhook Config
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Geocoder Config
	GeocoderURL       string  `env:"GEOCODER_URL"`
	GeocoderCountry   string  `env:"GEOCODER_COUNTRY" envDefault:"us"`
	GeocoderUserAgent string  `env:"GEOCODER_USER_AGENT" envDefault:"AccelMail/1.0"`
	GeocoderRateLimit float64 `env:"GEOCODER_RATE_LIMIT" envDefault:"1"`

	// Boundary Config
	BoundaryBaseURL   string        `env:"BOUNDARY_BASE_URL"`
	BoundaryRateLimit float64       `env:"BOUNDARY_RATE_LIMIT" envDefault:"5"`
	BoundaryCacheTTL  time.Duration `env:"BOUNDARY_CACHE_TTL" envDefault:"10m"`

	// Selection Config
	SelectionDebounce     time.Duration `env:"SELECTION_DEBOUNCE" envDefault:"500ms"`
	SelectionFetchTimeout time.Duration `env:"SELECTION_FETCH_TIMEOUT" envDefault:"20s"`
	SessionTTL            time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	DefaultBoundaryType   string        `env:"DEFAULT_BOUNDARY_TYPE" envDefault:"zcta"`
}

// SubmissionConfig - внешний приемник заявок
type SubmissionConfig struct {
	Endpoint  string
	AuthToken string
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		Submission:            submissionFromEnv(os.Getenv("LEAD_ENDPOINT"), os.Getenv("LEAD_TOKEN")),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 10*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		GeocoderURL:           os.Getenv("GEOCODER_URL"),
		GeocoderCountry:       getEnv("GEOCODER_COUNTRY", "us"),
		GeocoderUserAgent:     getEnv("GEOCODER_USER_AGENT", "AccelMail/1.0"),
		GeocoderRateLimit:     getEnvAsFloat("GEOCODER_RATE_LIMIT", 1),
		BoundaryBaseURL:       os.Getenv("BOUNDARY_BASE_URL"),
		BoundaryRateLimit:     getEnvAsFloat("BOUNDARY_RATE_LIMIT", 5),
		BoundaryCacheTTL:      getEnvAsDuration("BOUNDARY_CACHE_TTL", 10*time.Minute),
		SelectionDebounce:     getEnvAsDuration("SELECTION_DEBOUNCE", 500*time.Millisecond),
		SelectionFetchTimeout: getEnvAsDuration("SELECTION_FETCH_TIMEOUT", 20*time.Second),
		SessionTTL:            getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		DefaultBoundaryType:   getEnv("DEFAULT_BOUNDARY_TYPE", "zcta"),
	}

	if cfg.SelectionDebounce <= 0 {
		return nil, fmt.Errorf("SELECTION_DEBOUNCE must be positive, got %s", cfg.SelectionDebounce)
	}
	if cfg.SelectionFetchTimeout <= 0 {
		return nil, fmt.Errorf("SELECTION_FETCH_TIMEOUT must be positive, got %s", cfg.SelectionFetchTimeout)
	}
	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}

	return cfg, nil
}

// submissionFromEnv возвращает nil, если адрес не задан или остался заглушкой
func submissionFromEnv(endpoint, token string) *SubmissionConfig {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" || strings.Contains(endpoint, placeholderMarker) {
		return nil
	}
	return &SubmissionConfig{
		Endpoint:  endpoint,
		AuthToken: strings.TrimSpace(token),
	}
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
