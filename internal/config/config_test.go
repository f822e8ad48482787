package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build()
	require.NoError(t, err, "defaults must be enough to build config")

	assert.Equal(t, "http://localhost:8080", cfg.CustomersAPICfg.BaseURL)
	assert.Equal(t, "Spr/customers", cfg.CustomersAPICfg.BaseRoute)
	assert.Equal(t, 3*time.Second, cfg.CustomersAPICfg.LookupTimeout)
	assert.Equal(t, CacheBackendMemory, cfg.CacheCfg.Backend)
	assert.Equal(t, 10, cfg.ConsoleCfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.ConsoleCfg.MessageTTL)
	assert.Equal(t, 3000, cfg.ServerCfg.Port)
}

func TestBuildFromEnv(t *testing.T) {
	t.Setenv("CUSTOMERS_API_BASE_URL", "http://backend:9090")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_REDIS_TTL", "1m")
	t.Setenv("CONSOLE_PAGE_SIZE", "25")

	cfg, err := Build()
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9090", cfg.CustomersAPICfg.BaseURL)
	assert.Equal(t, CacheBackendRedis, cfg.CacheCfg.Backend)
	assert.Equal(t, "redis:6379", cfg.CacheCfg.RedisCfg.Addr)
	assert.Equal(t, time.Minute, cfg.CacheCfg.RedisCfg.TimeToLive)
	assert.Equal(t, 25, cfg.ConsoleCfg.PageSize)
}

func TestBuildRejectsInvalid(t *testing.T) {
	t.Log("unknown cache backend")
	{
		t.Setenv("CACHE_BACKEND", "memcached")
		_, err := Build()
		assert.Error(t, err)
	}

	t.Log("non positive page size")
	{
		t.Setenv("CACHE_BACKEND", "memory")
		t.Setenv("CONSOLE_PAGE_SIZE", "0")
		_, err := Build()
		assert.Error(t, err)
	}

	t.Log("malformed duration")
	{
		t.Setenv("CONSOLE_PAGE_SIZE", "10")
		t.Setenv("CUSTOMERS_API_TIMEOUT", "soon")
		_, err := Build()
		assert.Error(t, err)
	}
}
