package config

import (
	"fmt"
	"github.com/caarlos0/env/v6"
	"time"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type CustomersAPICfg struct {
	BaseURL       string        `env:"CUSTOMERS_API_BASE_URL" envDefault:"http://localhost:8080"`
	BaseRoute     string        `env:"CUSTOMERS_API_BASE_ROUTE" envDefault:"Spr/customers"`
	Timeout       time.Duration `env:"CUSTOMERS_API_TIMEOUT" envDefault:"15s"`
	LookupTimeout time.Duration `env:"CUSTOMERS_API_LOOKUP_TIMEOUT" envDefault:"3s"`
}

type RedisCfg struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD" envDefault:""`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	Key        string        `env:"CACHE_REDIS_KEY" envDefault:"customers:all"`
	TimeToLive time.Duration `env:"CACHE_REDIS_TTL" envDefault:"0s"`
}

type CacheCfg struct {
	Backend  string `env:"CACHE_BACKEND" envDefault:"memory"`
	RedisCfg RedisCfg
}

type ConsoleCfg struct {
	PageSize   int           `env:"CONSOLE_PAGE_SIZE" envDefault:"10"`
	MessageTTL time.Duration `env:"CONSOLE_MESSAGE_TTL" envDefault:"5s"`
}

type ServerCfg struct {
	Port            int           `env:"SERVER_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type Config struct {
	CustomersAPICfg CustomersAPICfg
	CacheCfg        CacheCfg
	ConsoleCfg      ConsoleCfg
	ServerCfg       ServerCfg
	LogCfg          LogCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.CacheCfg.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return cfg, fmt.Errorf("unknown cache backend %q, expected %q or %q", cfg.CacheCfg.Backend, CacheBackendMemory, CacheBackendRedis)
	}

	if cfg.ConsoleCfg.PageSize < 1 {
		return cfg, fmt.Errorf("console page size must be positive, got %d", cfg.ConsoleCfg.PageSize)
	}

	return cfg, nil
}
