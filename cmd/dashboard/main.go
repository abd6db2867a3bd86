package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"wallet-dashboard/internal/clock"
	"wallet-dashboard/internal/config"
	"wallet-dashboard/internal/gateway"
	"wallet-dashboard/internal/handler"
	"wallet-dashboard/internal/router"
	"wallet-dashboard/internal/session"
	"wallet-dashboard/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("starting wallet dashboard",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("api_base_url", cfg.APIBaseURL))

	var store session.Store = session.NewMemoryStore()
	if len(cfg.RedisAddrs) > 0 {
		redisStore := session.NewRedisStore(cfg.RedisAddrs, cfg.RedisPass, "wallet-dashboard", cfg.SessionTTL, cfg.RedisCluster)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisStore.Ping(ctx)
		cancel()
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Strings("addrs", cfg.RedisAddrs), zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("session store: redis", zap.Strings("addrs", cfg.RedisAddrs))
	}

	clk := clock.Real()
	sessions := session.NewManager(store, clk, logger)
	api := gateway.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sessions, logger)

	h := handler.New(handler.Deps{
		Sessions:   sessions,
		Wallets:    usecase.NewWalletAggregator(api, sessions, logger),
		Loader:     usecase.NewTransactionLoader(api, sessions, logger, cfg.MaxPages, cfg.PerPage),
		Aggregator: usecase.NewTransactionAggregator(clk, logger),
		Desk:       usecase.NewWithdrawalDesk(api, clk, logger),
		Reports:    api,
		Exporter:   gateway.NewDelimitedExporter(cfg.ExportDelimiter),
		NewEstimator: func() *usecase.ConversionEstimator {
			return usecase.NewConversionEstimator(api, clk, logger, usecase.WithDebounce(cfg.ConversionDebounce))
		},
		PerPage: cfg.PerPage,
		Logger:  logger,
	})
	defer h.Close()

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.SetupRoutes(h, cfg.CORSOrigins, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = atomic
	return zcfg.Build()
}
