package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/yungbote/skillup-backend/internal/data/db"
	"github.com/yungbote/skillup-backend/internal/observability"
	"github.com/yungbote/skillup-backend/internal/platform/llm"
	redisclient "github.com/yungbote/skillup-backend/internal/platform/redis"
	"github.com/yungbote/skillup-backend/internal/services"
)

const (
	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)

type Config struct {
	Port    string `mapstructure:"port"`
	LogMode string `mapstructure:"log_mode"`

	DB    db.Config                `mapstructure:",squash"`
	Auth  services.AuthConfig      `mapstructure:",squash"`
	LLM   llm.Config               `mapstructure:",squash"`
	Redis redisclient.Config       `mapstructure:",squash"`
	Otel  observability.OtelConfig `mapstructure:",squash"`

	LockBackend    string `mapstructure:"lock_backend"`
	LockTTLSeconds int    `mapstructure:"lock_ttl_seconds"`

	AuditIntervalMinutes   int    `mapstructure:"audit_interval_minutes"`
	CORSAllowOrigins       string `mapstructure:"cors_allow_origins"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

var defaults = map[string]any{
	"port":                     "8080",
	"log_mode":                 "development",
	"db_driver":                db.DriverPostgres,
	"postgres_host":            "localhost",
	"postgres_port":            "5432",
	"postgres_sslmode":         "disable",
	"sqlite_path":              "skillup.db",
	"llm_provider":             llm.ProviderGroq,
	"llm_max_tokens":           0,
	"lock_backend":             LockBackendLocal,
	"lock_ttl_seconds":         30,
	"audit_interval_minutes":   60,
	"shutdown_timeout_seconds": 15,
	"otel_service_name":        "skillup",
	"otel_sampler_ratio":       0.1,
}

// envKeys lists every key read from the environment. AutomaticEnv only
// resolves keys viper already knows about, so each one is bound explicitly.
var envKeys = []string{
	"port", "log_mode",
	"db_driver", "postgres_host", "postgres_port", "postgres_user", "postgres_password",
	"postgres_name", "postgres_sslmode", "sqlite_path",
	"auth_jwt_secret", "auth_jwt_public_key", "auth_jwt_issuer",
	"llm_provider", "llm_model", "llm_base_url", "llm_max_tokens",
	"groq_api_key", "openai_api_key", "gemini_api_key", "anthropic_api_key",
	"redis_addr", "redis_password", "redis_db",
	"otel_enabled", "otel_service_name", "otel_environment", "otel_service_version",
	"otel_exporter_otlp_endpoint", "otel_exporter_otlp_headers", "otel_exporter_otlp_insecure",
	"otel_sampler_ratio",
	"lock_backend", "lock_ttl_seconds",
	"audit_interval_minutes", "cors_allow_origins", "shutdown_timeout_seconds",
}

// LoadConfig reads .env (if present), then the optional config file, then
// the environment. Later sources win.
func LoadConfig(v *viper.Viper, configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if v == nil {
		v = viper.New()
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", configFile, err)
		}
	}
	v.AutomaticEnv()
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return cfg, cfg.Validate()
}

func (c *Config) normalize() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	c.LockBackend = strings.ToLower(strings.TrimSpace(c.LockBackend))
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
}

// Validate checks settings that do not need a live dependency. Provider keys
// and JWT material are checked where they are used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT is required")
	}
	switch c.LockBackend {
	case LockBackendLocal:
	case LockBackendRedis:
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return errors.New("REDIS_ADDR is required when LOCK_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown LOCK_BACKEND %q", c.LockBackend)
	}
	if c.AuditIntervalMinutes < 0 {
		return errors.New("AUDIT_INTERVAL_MINUTES must not be negative")
	}
	return nil
}

func (c Config) Addr() string { return ":" + strings.TrimPrefix(c.Port, ":") }

func (c Config) LockTTL() time.Duration {
	return time.Duration(c.LockTTLSeconds) * time.Second
}

func (c Config) AuditInterval() time.Duration {
	return time.Duration(c.AuditIntervalMinutes) * time.Minute
}

func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c Config) AllowOrigins() []string {
	if strings.TrimSpace(c.CORSAllowOrigins) == "" {
		return nil
	}
	return strings.Split(c.CORSAllowOrigins, ",")
}
