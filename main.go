package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/cache"
	"github.com/umalmyha/customers-console/internal/client"
	"github.com/umalmyha/customers-console/internal/config"
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

	customerCache, closeCache, err := customerListCache(cfg.CacheCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closeCache()

	e, err := app(cfg, customerCache)
	if err != nil {
		logrus.Fatal(err)
	}

	start(e, cfg.ServerCfg)
}

func customerListCache(cfg config.CacheCfg) (cache.CustomerListCache, func(), error) {
	if cfg.Backend != config.CacheBackendRedis {
		return cache.NewMemoryCustomerListCache(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultRedisConnectTimeout)
	defer cancel()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			logrus.Errorf("failed to close connection to redis - %v", err)
		}
	}

	return cache.NewRedisCustomerListCache(redisClient, cfg.RedisCfg.Key, cfg.RedisCfg.TimeToLive), closeFn, nil
}

func app(cfg config.Config, customerCache cache.CustomerListCache) (*echo.Echo, error) {
	validator, err := validation.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to build validator - %w", err)
	}

	apiCfg := cfg.CustomersAPICfg
	customerAPI := client.NewHTTPCustomerAPI(&http.Client{Timeout: apiCfg.Timeout}, apiCfg.BaseURL, apiCfg.BaseRoute)
	customerSvc := service.NewCustomerService(customerAPI, customerCache, apiCfg.LookupTimeout)

	return infra.Router(customerSvc, validator, cfg.ConsoleCfg.PageSize), nil
}

func start(e *echo.Echo, cfg config.ServerCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
