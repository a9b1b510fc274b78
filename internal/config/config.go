package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/ghaniswara/swipe-match/pkg/path"
	"github.com/joho/godotenv"
)

type IConfig interface {
	Get(key string) string
	GetInt(key string) int
	GetBool(key string) bool
}

type Config struct {
	Key map[string]string
	Env string
}

// NewConfig loads the nearest .env file (if any) and resolves keys for env.
// Connection settings are namespaced by the upper-cased env, e.g. TEST_POSTGRES_HOST.
func NewConfig(env string) (*Config, error) {
	env = strings.ToUpper(env)

	basePath, err := os.Getwd()

	if err != nil {
		return nil, err
	}

	if root, err := path.FindRoot(basePath, ".env", false); err == nil {
		if err := godotenv.Load(root + "/.env"); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, path.ErrNotFound) {
		return nil, err
	}

	return &Config{
		Key: map[string]string{
			"POSTGRES_DB_NAME":  getEnv(env+"_POSTGRES_DB_NAME", ""),
			"POSTGRES_USER":     getEnv(env+"_POSTGRES_USER", ""),
			"POSTGRES_PASSWORD": getEnv(env+"_POSTGRES_PASSWORD", ""),
			"POSTGRES_HOST":     getEnv(env+"_POSTGRES_HOST", "localhost"),
			"POSTGRES_PORT":     getEnv(env+"_POSTGRES_PORT", "5432"),
			"REDIS_HOST":        getEnv(env+"_REDIS_HOST", ""),
			"REDIS_PORT":        getEnv(env+"_REDIS_PORT", "6379"),
			"REDIS_PASSWORD":    getEnv(env+"_REDIS_PASSWORD", ""),
			"JWT_SECRET":        getEnv(env+"_JWT_SECRET", ""),
			"JWT_TTL_HOURS":     getEnv("JWT_TTL_HOURS", "24"),
			"PORT":              getEnv("PORT", "8080"),
			"LOG_LEVEL":         getEnv("LOG_LEVEL", "info"),
			"AUTO_MIGRATE":      getEnv("AUTO_MIGRATE", "false"),
			"MIGRATIONS_DIR":    getEnv("MIGRATIONS_DIR", "migrations"),
			"FEED_BATCH_SIZE":   getEnv("FEED_BATCH_SIZE", "20"),
		},
		Env: env,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) Get(key string) string {
	return c.Key[key]
}

// GetInt returns 0 for missing or malformed values.
func (c *Config) GetInt(key string) int {
	v, err := strconv.Atoi(c.Key[key])
	if err != nil {
		return 0
	}
	return v
}

func (c *Config) GetBool(key string) bool {
	v, err := strconv.ParseBool(c.Key[key])
	return err == nil && v
}
