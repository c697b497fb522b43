package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gustavuu/venice-orders/internal/cache"
	"github.com/Gustavuu/venice-orders/internal/config"
	"github.com/Gustavuu/venice-orders/internal/httpx"
	"github.com/Gustavuu/venice-orders/internal/mongodb"
	"github.com/Gustavuu/venice-orders/internal/postgres"
	"github.com/Gustavuu/venice-orders/internal/rabbit"
	"github.com/Gustavuu/venice-orders/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("venice-orders exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongo disconnect error", "error", err)
		}
	}()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	amqpConn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		return err
	}
	defer amqpConn.Close()

	headers := postgres.NewHeaderStore(pool)
	items := mongodb.NewItemStore(mongoClient.Database(cfg.MongoDB))
	viewCache := cache.NewRedisViewCache(redisClient, cfg.CacheTTL, logger)
	publisher := rabbit.NewPublisher(amqpConn, cfg.QueueName)

	orders := service.NewOrderService(headers, items, viewCache, publisher, logger)

	issuer := httpx.NewTokenIssuer(cfg.JWTSecret)
	handler := httpx.NewHandler(orders, issuer, cfg.AuthUsername, cfg.AuthPassword)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpx.NewRouter(handler, issuer),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("venice-orders listening", "addr", cfg.HTTPAddr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("venice-orders stopped")
	return nil
}
