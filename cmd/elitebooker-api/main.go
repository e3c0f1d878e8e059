package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/elitebooker/elitebooker-backend/internal/di"
	"github.com/elitebooker/elitebooker-backend/internal/events"
	"github.com/elitebooker/elitebooker-backend/internal/server"
	"github.com/elitebooker/elitebooker-backend/pkg/config"
	"github.com/elitebooker/elitebooker-backend/pkg/database"
	"github.com/elitebooker/elitebooker-backend/pkg/logger"
	redislib "github.com/elitebooker/elitebooker-backend/pkg/redis"
	"github.com/elitebooker/elitebooker-backend/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&logger.Config{
		Level:       logLevel(cfg),
		ServiceName: cfg.App.Name,
		Development: cfg.App.Environment == "development",
		OutputPath:  "stdout",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		logger.Fatal("failed to init telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		telemetry.Shutdown(shutdownCtx)
	}()

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
		ConnectTimeout:  10 * time.Second,
	})
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	redisClient, err := redislib.NewClient(ctx, &redislib.Config{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(events.KafkaConfig{
			Brokers:  cfg.Kafka.Brokers,
			ClientID: cfg.Kafka.ClientID,
			Topic:    cfg.Kafka.Topic,
		})
		if err != nil {
			logger.Fatal("failed to connect to kafka", zap.Error(err))
		}
		publisher = kafkaPublisher
	}

	container := di.NewContainer(&di.ContainerConfig{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Publisher: publisher,
	})
	defer container.Close()

	router := server.NewRouter(container)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func logLevel(cfg *config.Config) string {
	if cfg.App.Debug {
		return "debug"
	}
	return "info"
}
