package config_test

import (
	"testing"
	"time"

	"github.com/Gustavuu/venice-orders/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "orders.created", cfg.QueueName)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("VENICE_HTTP_ADDR", ":9999")
	t.Setenv("VENICE_CACHE_TTL", "30s")
	t.Setenv("VENICE_QUEUE_NAME", "orders.test")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "orders.test", cfg.QueueName)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("VENICE_CACHE_TTL", "soon")

	cfg := config.Load()

	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}
