package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv          string
	AppPort         string
	DBDriver        string
	DBDSN           string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	SessionLifetime time.Duration
	MediaRoot       string
	IndexCacheTTL   time.Duration
	CORSOrigins     []string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	return Config{
		AppEnv:          getenv("APP_ENV", "development"),
		AppPort:         getenv("APP_PORT", "8000"),
		DBDriver:        strings.ToLower(getenv("DB_DRIVER", DriverMySQL)),
		DBDSN:           os.Getenv("DB_DSN"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getenvInt("REDIS_DB", 0),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SessionLifetime: time.Duration(getenvInt("SESSION_LIFETIME_HOURS", 24)) * time.Hour,
		MediaRoot:       getenv("MEDIA_ROOT", "./media"),
		IndexCacheTTL:   time.Duration(getenvInt("INDEX_CACHE_SECONDS", 20)) * time.Second,
		CORSOrigins:     splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// MustValidate stops the process when a required setting is missing.
func (c Config) MustValidate() {
	if c.DBDSN == "" {
		Logger.Fatal("DB_DSN is not set")
	}
	if c.RedisAddr == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}
	if c.JWTSecret == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
