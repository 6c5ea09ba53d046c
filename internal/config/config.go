package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingConfig is returned when a required configuration value is missing.
var ErrMissingConfig = errors.New("missing config data")

// Config holds the application configuration, read by viper from the
// environment and optionally from a .env/config.env file.
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	JWT       JWTConfig
	Inventory InventoryConfig
	Redis     RedisConfig
	Login     LoginLimitConfig
}

type AppConfig struct {
	Env      string // development, production
	LogLevel string
}

type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type InventoryConfig struct {
	LowStockThreshold int
	SeedSample        bool
}

// RedisConfig enables event publishing when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type LoginLimitConfig struct {
	RatePerSecond float64
	Burst         int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL_MINUTES", 15)
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)
	v.SetDefault("SEED_SAMPLE", true)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOGIN_RATE_PER_SEC", 1.0)
	v.SetDefault("LOGIN_BURST", 3)
}

// Load reads the configuration. Environment variables take precedence over the
// optional .env and config.env files in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("env")
	for _, name := range []string{".env", "config.env"} {
		v.SetConfigFile(name)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			TTL:    time.Duration(v.GetInt("JWT_TTL_MINUTES")) * time.Minute,
		},
		Inventory: InventoryConfig{
			LowStockThreshold: v.GetInt("LOW_STOCK_THRESHOLD"),
			SeedSample:        v.GetBool("SEED_SAMPLE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Login: LoginLimitConfig{
			RatePerSecond: v.GetFloat64("LOGIN_RATE_PER_SEC"),
			Burst:         v.GetInt("LOGIN_BURST"),
		},
	}
}

// Validate checks the settings the HTTP server cannot run without.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("%w for key: JWT_SECRET", ErrMissingConfig)
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL_MINUTES must be positive, got %s", c.JWT.TTL)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTP.Port)
	}
	if c.Login.RatePerSecond <= 0 || c.Login.Burst <= 0 {
		return fmt.Errorf("login rate limit must be positive (rate %v, burst %d)", c.Login.RatePerSecond, c.Login.Burst)
	}
	return nil
}
