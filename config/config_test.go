package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "ALLOW_BACKORDER", "CART_CREATE_ATTEMPTS", "CART_CREATE_BACKOFF", "CORS_ORIGINS", "ADMIN_API_KEY", "COST_API_KEY"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.False(t, cfg.AllowBackorder)
	assert.Equal(t, 3, cfg.CartCreateAttempts)
	assert.Equal(t, 25*time.Millisecond, cfg.CartCreateBackoff)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("ALLOW_BACKORDER", "true")
	t.Setenv("CART_CREATE_ATTEMPTS", "5")
	t.Setenv("CART_CREATE_BACKOFF", "1s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ADMIN_API_KEY", "")
	t.Setenv("COST_API_KEY", "legacy")

	cfg := FromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.True(t, cfg.AllowBackorder)
	assert.Equal(t, 5, cfg.CartCreateAttempts)
	assert.Equal(t, time.Second, cfg.CartCreateBackoff)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "legacy", cfg.AdminAPIKey)
}

func TestDSN(t *testing.T) {
	db := DBConfig{Host: "db", Port: "5433", User: "shop", Password: "pw", Name: "shop"}
	assert.Equal(t, "host=db user=shop password=pw dbname=shop port=5433 sslmode=disable", db.DSN())

	db.URL = "postgres://u:p@h/d"
	assert.Equal(t, "postgres://u:p@h/d", db.DSN())
}
