package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env     string
	Port    string
	Variant string
	DB      DBConfig
	Auth    AuthConfig
	AI      AIConfig
	OTel    OTelConfig
	Metrics MetricsConfig
	CORS    CORSConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	SlowQuery    time.Duration
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type AIConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

type OTelConfig struct {
	Endpoint    string
	ServiceName string
}

type MetricsConfig struct {
	Enabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from the environment. In development a .env file
// is loaded first when present.
func Load() (Config, error) {
	if getEnv("APP_ENV", "development") == "development" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Env:     getEnv("APP_ENV", "development"),
		Port:    getEnv("PORT", "8080"),
		Variant: getEnv("QA_VARIANT", "generic"),
		DB: DBConfig{
			DSN:          getEnv("DATABASE_URL", ""),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 100),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 10),
			SlowQuery:    getEnvDuration("DB_SLOW_QUERY", time.Second),
		},
		Auth: AuthConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			TokenTTL: getEnvDuration("TOKEN_TTL", 30*time.Minute),
		},
		AI: AIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			BaseURL:         getEnv("OPENAI_BASE_URL", ""),
			Model:           getEnv("OPENAI_MODEL", "gpt-4o"),
			Timeout:         getEnvDuration("AI_TIMEOUT", 15*time.Second),
			BreakerFailures: uint32(getEnvInt("AI_BREAKER_FAILURES", 3)),
			BreakerCooldown: getEnvDuration("AI_BREAKER_COOLDOWN", 30*time.Second),
		},
		OTel: OTelConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "qa-forum"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports missing or unusable settings.
func (c Config) Validate() error {
	if c.DB.DSN == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AI.Timeout)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
