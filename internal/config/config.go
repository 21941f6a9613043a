package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const minBcryptCost = 10

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string        `toml:"server_port"`
	DBDriver     string        `toml:"db_driver"`
	DatabaseDSN  string        `toml:"database_dsn"`
	ResetDB      bool          `toml:"reset_db"`
	RedisAddr    string        `toml:"redis_addr"`
	RedisDB      int           `toml:"redis_db"`
	RedisPass    string        `toml:"redis_password"`
	CacheEnabled bool          `toml:"cache_enabled"`
	JWTSecret    string        `toml:"jwt_secret"`
	TokenTTL     time.Duration `toml:"token_ttl"`
	BcryptCost   int           `toml:"bcrypt_cost"`
	PublicDir    string        `toml:"public_dir"`
	CORSOrigins  []string      `toml:"cors_origins"`
	SwaggerHost  string        `toml:"swagger_host"`
	LogLevel     string        `toml:"log_level"`
	LogFormat    string        `toml:"log_format"`
}

// Default returns the built-in configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		ServerPort:   "8080",
		DBDriver:     "sqlite",
		DatabaseDSN:  "todo-app.db",
		RedisAddr:    "localhost:6379",
		CacheEnabled: true,
		JWTSecret:    "change-me",
		TokenTTL:     7 * 24 * time.Hour,
		BcryptCost:   minBcryptCost,
		PublicDir:    "public",
		CORSOrigins:  []string{"*"},
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// Load builds Config from an optional TOML file (CONFIG_FILE) and then the
// environment. Environment variables take precedence over the file.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", cfg.DBDriver))
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.ResetDB = getEnvBool("RESET_DB", cfg.ResetDB)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.RedisPass = getEnv("REDIS_PASSWORD", cfg.RedisPass)
	cfg.CacheEnabled = getEnvBool("CACHE_ENABLED", cfg.CacheEnabled)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", cfg.TokenTTL)
	cfg.BcryptCost = getEnvInt("BCRYPT_COST", cfg.BcryptCost)
	cfg.PublicDir = getEnv("PUBLIC_DIR", cfg.PublicDir)
	cfg.SwaggerHost = getEnv("SWAGGER_HOST", cfg.SwaggerHost)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration values the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must be set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.BcryptCost < minBcryptCost {
		return fmt.Errorf("BCRYPT_COST must be at least %d", minBcryptCost)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
