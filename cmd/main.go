package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/infrastructure/api"
	"tienda-live/infrastructure/broker"
	grpcserver "tienda-live/infrastructure/grpc/server"
	"tienda-live/infrastructure/index"
	"tienda-live/infrastructure/storage"
	"tienda-live/infrastructure/ws"
	"tienda-live/internal"
	"tienda-live/moderation"
	"tienda-live/observability"
	"tienda-live/projection"
	"tienda-live/runtime"
	"tienda-live/runtime/workers"
	"tienda-live/services"
	"tienda-live/sink"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// recentNotifications is how many store broadcasts the timeline keeps per store.
const recentNotifications = 100

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(code)
}

// run owns every resource so that deferred cleanups execute before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() { _ = writer.Close() }()

	promotions, closePromotions, err := openPromotionStore(config, db, log)
	if err != nil {
		return exitRuntime, err
	}
	defer closePromotions()

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)
	monitoring, err := observability.NewMonitoringManager(log, metrics)
	if err != nil {
		return exitRuntime, fmt.Errorf("process monitoring failed: %w", err)
	}

	// 4. Real-time runtime
	supervisor := workers.NewSupervisor(log).WithRestartInterval(config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, supervisor, metrics, config.BufferSize, config.SinkTimeout).
		WithProcessMonitor(monitoring, config.MetricInterval)

	if config.RedisAddr != "" {
		client, err := broker.NewRedisClient(ctx, config.RedisAddr)
		if err != nil {
			return exitRuntime, err
		}
		defer func() { _ = client.Close() }()
		orchestrator.WithRelay(broker.NewRedisRelay(log, client, config.RedisChannel))
	}
	if config.AMQPURL != "" {
		publisher, err := broker.NewAMQPPublisher(log, config.AMQPURL, config.AMQPExchange)
		if err != nil {
			return exitRuntime, err
		}
		defer func() { _ = publisher.Close() }()
		orchestrator.Add(sink.NewBrokerSink(log, publisher))
	}

	timeline := projection.NewTimeline(recentNotifications)
	orchestrator.Add(timeline)

	// 5. Services
	replacement, _ := internal.CharacterRune(config.CharReplacement)
	dictionary, err := moderation.LoadDictionary(config.Words())
	if err != nil {
		return exitRuntime, fmt.Errorf("censored words loading failed: %w", err)
	}
	log.Info("Censored words loaded", "words", len(dictionary.Words), "languages", dictionary.Languages)
	moderator, err := moderation.NewModerator(dictionary.Words, replacement, log)
	if err != nil {
		return exitRuntime, err
	}

	numbers, err := domain.NewOrderNumberGenerator()
	if err != nil {
		return exitRuntime, err
	}

	gateway := orchestrator.Gateway()
	redemption := services.NewRedemptionService(log, promotions, gateway, metrics)
	socket := ws.NewHandler(log, orchestrator.Rooms(), config.ConnectionBufferSize)
	server := api.NewServer(log, config.HTTPAddress(), config.AllowedOrigins, api.Dependencies{
		Orders: services.NewOrderService(log, storage.NewOrderRepository(db, log),
			index.NewOrderIndex(writer, log), redemption, gateway, numbers),
		Promotions:  services.NewPromotionService(log, promotions, gateway),
		Redemption:  redemption,
		Configs:     services.NewConfigService(log, storage.NewConfigRepository(db, log), gateway),
		Reviews:     services.NewReviewService(log, storage.NewReviewRepository(db, log), moderator, gateway),
		Connections: orchestrator.Rooms(),
		Process:     monitoring,
		Recent:      timeline,
		Gatherer:    registry,
		Socket:      socket,
	})
	health := grpcserver.NewHealthServer(log)

	// 6. Start
	if err = orchestrator.Start(ctx); err != nil {
		return exitRuntime, fmt.Errorf("orchestrator failed to start: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, 2)
	serve := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				errChan <- err
			}
		}()
	}
	serve(func() error { return server.Run(ctx, config.ShutdownTimeout) })
	serve(func() error { return health.Run(ctx, config.GRPCAddress()) })

	// 7. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case runErr = <-errChan:
		code = exitRuntime
		stop()
	}

	// 8. Final Cleanup
	socket.Close()
	wg.Wait()
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return code, runErr
}

// openPromotionStore picks the promotion store. Orders, reviews and configs stay in badger.
func openPromotionStore(config internal.Config, db *badger.DB, log *slog.Logger) (contract.IPromotionRepository, func(), error) {
	if config.StoreDriver != internal.DriverPostgres {
		return storage.NewPromotionRepository(db, log, config.RedeemMaxRetries), func() {}, nil
	}
	sqlDB, err := storage.OpenPostgres(config.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	raw, err := sqlDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	log.Info("Using postgres promotion store")
	return storage.NewSQLPromotionRepository(sqlDB, log), func() { _ = raw.Close() }, nil
}
