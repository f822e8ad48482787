package main

import (
	"context"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/cache"
	"github.com/umalmyha/customers-console/internal/client"
	"github.com/umalmyha/customers-console/internal/config"
	"github.com/umalmyha/customers-console/internal/console"
	"github.com/umalmyha/customers-console/internal/infra"
	"github.com/umalmyha/customers-console/internal/service"
	"github.com/umalmyha/customers-console/internal/validation"
	"net/http"
	"os"
	"os/signal"
	"time"
)

const DefaultRedisConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.Logging(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}
	// shell owns stdout
	logrus.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	validator, err := validation.Default()
	if err != nil {
		logrus.Fatalf("failed to build validator - %v", err)
	}

	var customerCache cache.CustomerListCache
	var memoryCache *cache.MemoryCustomerListCache
	if cfg.CacheCfg.Backend == config.CacheBackendRedis {
		connCtx, cancel := context.WithTimeout(ctx, DefaultRedisConnectTimeout)
		redisClient, err := infra.Redis(connCtx, cfg.CacheCfg.RedisCfg)
		cancel()
		if err != nil {
			logrus.Fatal(err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logrus.Errorf("failed to close connection to redis - %v", err)
			}
		}()
		customerCache = cache.NewRedisCustomerListCache(redisClient, cfg.CacheCfg.RedisCfg.Key, cfg.CacheCfg.RedisCfg.TimeToLive)
	} else {
		memoryCache = cache.NewMemoryCustomerListCache()
		customerCache = memoryCache
	}

	apiCfg := cfg.CustomersAPICfg
	customerAPI := client.NewHTTPCustomerAPI(&http.Client{Timeout: apiCfg.Timeout}, apiCfg.BaseURL, apiCfg.BaseRoute)
	customerSvc := service.NewCustomerService(customerAPI, customerCache, apiCfg.LookupTimeout)

	sh := console.NewShell(customerSvc, validator, cfg.ConsoleCfg.PageSize, cfg.ConsoleCfg.MessageTTL, os.Stdout)
	defer sh.Close()

	if memoryCache != nil {
		changes, unsubscribe := memoryCache.Subscribe()
		defer unsubscribe()
		go sh.List().Watch(ctx, changes)
	}

	if err := sh.Run(ctx, os.Stdin); err != nil {
		logrus.Errorf("console stopped with error - %v", err)
	}
}
