package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"linkwatch/internal/config"
	"linkwatch/internal/domain"
	"linkwatch/internal/fetcher"
	"linkwatch/internal/notifier"
	"linkwatch/internal/publisher"
	"linkwatch/internal/scheduler"
	"linkwatch/internal/storage/postgres"
	"linkwatch/internal/watcher"
	"linkwatch/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	linkStore := postgres.NewLinkStore(db)
	eventStore := postgres.NewEventStore(db)
	guildStore := postgres.NewGuildStore(db)
	paymentStore := postgres.NewPaymentStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Platform fetchers share one HTTP client
	client := fetcher.NewClient(cfg.Fetch)
	registry := fetcher.DefaultRegistry(client, cfg.Fetch)

	// Discord announcements are optional: without a token the engine still
	// records events and publishes them to the bus.
	var discordNotifier watcher.Notifier
	if cfg.Discord.BotToken != "" {
		// Announcements go over the REST API, no gateway connection needed.
		session, err := discordgo.New("Bot " + cfg.Discord.BotToken)
		if err != nil {
			logger.Error("failed to create discord session", "error", err)
			os.Exit(1)
		}
		discordNotifier = notifier.NewDiscord(session, logger)
		logger.Info("discord notifier enabled")
	} else {
		logger.Warn("no discord bot token configured, announcements disabled")
	}

	engine := watcher.NewEngine(
		linkStore,
		eventStore,
		guildStore,
		registryAdapter{registry},
		discordNotifier,
		rabbitMQ,
		logger,
		cfg.Watch,
	)

	expirySweep := worker.NewExpirySweep(guildStore, logger)
	paymentSweep := worker.NewPaymentSweep(paymentStore, guildStore, txManager, logger)

	schedulers := []*scheduler.Scheduler{
		scheduler.New(engine, cfg.Watch.Tick, cfg.Watch.CycleTimeout, logger),
		scheduler.New(expirySweep, cfg.Sweep.ExpiryInterval, cfg.Sweep.Timeout, logger),
		scheduler.New(paymentSweep, cfg.Sweep.PaymentInterval, cfg.Sweep.Timeout, logger),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting link watcher",
		"tick", cfg.Watch.Tick,
		"expiry_interval", cfg.Sweep.ExpiryInterval,
		"payment_interval", cfg.Sweep.PaymentInterval,
	)

	var wg sync.WaitGroup
	for _, sched := range schedulers {
		wg.Add(1)
		go func(sched *scheduler.Scheduler) {
			defer wg.Done()
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}(sched)
	}
	wg.Wait()
}

// registryAdapter narrows the fetcher registry to the engine's view of it.
type registryAdapter struct {
	registry *fetcher.Registry
}

func (a registryAdapter) FetcherFor(platform domain.Platform) (watcher.Fetcher, error) {
	return a.registry.FetcherFor(platform)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
