package config

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultEnvPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	v *viper.Viper
}

var defaults = map[string]any{
	"API_ADDRESS":         ":8080",
	"JWT_SECRET":          "dev-secret",
	"TOKEN_TTL":           "24h",
	"STORAGE_DRIVER":      "memory",
	"POSTGRES_DB_ADDRESS": "localhost:5432",
	"POSTGRES_USER":       "",
	"POSTGRES_PASSWORD":   "",
	"POSTGRES_DB":         "serenity",
	"REDIS_ADDRESS":       "localhost:6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"SQLITE_PATH":         "serenity.db",
	"LLM_API_KEY":         "",
	"LLM_BASE_URL":        "",
	"LLM_MODEL":           "gpt-4o-mini",
	"TIMEZONE":            "Local",
	"APP_VERSION":         "1.0.0",
	"LOG_LEVEL":           "info",
}

// New returns process-wide config. Only the first call reads envPath,
// an empty path means DefaultEnvPath.
func New(envPath ...string) *Config {
	once.Do(func() {
		path := DefaultEnvPath
		if len(envPath) > 0 && envPath[0] != "" {
			path = envPath[0]
		}
		instance = Load(path)
	})
	return instance
}

// Load reads the dotenv file at path into the environment and builds a fresh Config.
// Missing file is not fatal: environment and defaults still apply.
func Load(path string) *Config {
	if err := godotenv.Load(path); err != nil {
		slog.Warn("env file not loaded, using environment", slog.String("path", path), slog.String("error", err.Error()))
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return &Config{v: v}
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// Location resolves TIMEZONE, falling back to time.Local on unknown names.
func (c *Config) Location() *time.Location {
	name := c.GetString("TIMEZONE")
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, using local", slog.String("timezone", name))
		return time.Local
	}
	return loc
}

// LogLevel maps LOG_LEVEL to slog level. Unknown values mean info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.GetString("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}
