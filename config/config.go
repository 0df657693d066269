package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Driver     string // postgres | sqlite
	URL        string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
	LogLevel   string // silent | error | warn | info
}

type Config struct {
	Port               string
	GinMode            string
	DB                 DBConfig
	AdminAPIKey        string
	JWTSecret          string
	CORSOrigins        []string
	AllowBackorder     bool
	CartCreateAttempts int
	CartCreateBackoff  time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: os.Getenv("GIN_MODE"),
		DB: DBConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			URL:        os.Getenv("DATABASE_URL"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       os.Getenv("DB_NAME"),
			SQLitePath: getEnv("SQLITE_PATH", "shop.db"),
			LogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		},
		// COST_API_KEY is the older name of the admin key
		AdminAPIKey:        getEnv("ADMIN_API_KEY", os.Getenv("COST_API_KEY")),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "*")),
		AllowBackorder:     getBool("ALLOW_BACKORDER", false),
		CartCreateAttempts: getInt("CART_CREATE_ATTEMPTS", 3),
		CartCreateBackoff:  getDuration("CART_CREATE_BACKOFF", 25*time.Millisecond),
	}
}

// DSN builds the postgres connection string unless DATABASE_URL is set.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port,
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
