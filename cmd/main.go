package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	httpadapter "adgate/internal/adapter/http"
	"adgate/internal/adapter/kafka"
	"adgate/internal/adapter/memory"
	"adgate/internal/adapter/postgres"
	redisadapter "adgate/internal/adapter/redis"
	"adgate/internal/adapter/usecase"
	"adgate/internal/config"
	"adgate/internal/config/configs"
	"adgate/internal/core/policy"
	"adgate/internal/core/port"
	"adgate/internal/core/pricing"
	"adgate/internal/db"
	"adgate/internal/metrics"
	"adgate/internal/scheduler"
	"adgate/internal/targeting"
)

// stores groups the persistence ports selected by configuration.
type stores struct {
	quota       port.QuotaStore
	campaigns   port.CampaignRepository
	impressions port.ImpressionStore
	// same is set when quota and impressions share one memory store, so
	// the daily reset runs once.
	same bool
}

// main is the entry point of adgate. It loads configuration, connects the
// configured stores, optionally migrates and seeds PostgreSQL, then runs
// the HTTP server, the impression retry dispatcher and the daily reset
// until a termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("adgate stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("adgate gracefully stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pol, err := loadPolicy(cfg.Engine)
	if err != nil {
		return err
	}
	loc, err := cfg.Engine.Location()
	if err != nil {
		return err
	}
	clock := usecase.NewClock(loc, nil)

	rules, err := targeting.New()
	if err != nil {
		return fmt.Errorf("targeting: %w", err)
	}

	if cfg.NeedsPostgres() && cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	st, closeStores, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStores()

	if cfg.Psql.Seed || cfg.Engine.Store == configs.BackendMemory {
		n, err := db.Seed(ctx, st.campaigns, clock.Now())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("seed applied", slog.Int("campaigns", n))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// A nil interface keeps lost impressions in the log only.
	var deadLetter port.DeadLetterSink
	if cfg.Kafka.Enabled() {
		sink := kafka.NewDeadLetterSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := sink.Close(); err != nil {
				logger.Error("close dead-letter writer", slog.Any("error", err))
			}
		}()
		deadLetter = sink
	}

	ledger := usecase.NewImpressionLedger(st.impressions, deadLetter, usecase.RetryConfig{
		Capacity:    cfg.Engine.RetryCapacity,
		MaxAttempts: cfg.Engine.RetryAttempts,
		Backoff:     cfg.Engine.RetryBackoff,
	}, clock, m, logger)
	selector := usecase.NewSelector(st.campaigns, pricing.NewOptimizer(pol.Pricing()), rules, pol.Fallback(), m, logger)
	gate := usecase.NewAdmissionGate(
		usecase.NewQuotaLedger(st.quota, pol, clock),
		selector,
		ledger,
		st.campaigns,
		pol,
		clock,
		m,
		logger,
	)
	admin := usecase.NewCampaignService(st.campaigns, rules, clock, logger)

	reset := scheduler.NewDailyReset(cfg.Engine.ResetInterval, clock.Today, logger)
	reset.Register("quota", st.quota)
	if !st.same {
		reset.Register("ad_counters", st.impressions)
	}

	handler := httpadapter.NewHandler(gate, admin, logger,
		httpadapter.WithCompletionRateLimit(cfg.HTTP.CompletionRateLimit),
		httpadapter.WithMetrics(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return ledger.Run(gctx)
	})
	g.Go(func() error {
		return reset.Run(gctx)
	})
	return g.Wait()
}

func loadPolicy(cfg configs.Engine) (*policy.Policy, error) {
	if cfg.PolicyFile == "" {
		return policy.Default()
	}
	return policy.Load(cfg.PolicyFile)
}

// openStores connects the backends named by cfg. The returned func closes
// every connection that was opened.
func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, func(), error) {
	var (
		st      stores
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Engine.Store == configs.BackendMemory {
		mem := memory.New()
		st.campaigns, st.impressions = mem, mem
		if cfg.Engine.QuotaStore == configs.BackendMemory {
			st.quota, st.same = mem, true
		}
		logger.Warn("using in-memory store, data is lost on restart")
	}

	if cfg.NeedsPostgres() {
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return st, func() {}, fmt.Errorf("database connection: %w", err)
		}
		closers = append(closers, pool.Close)
		if cfg.Engine.Store == configs.BackendPostgres {
			st.campaigns = postgres.NewCampaignRepository(pool)
			st.impressions = postgres.NewImpressionStore(pool)
		}
		if cfg.Engine.QuotaStore == configs.BackendPostgres {
			st.quota = postgres.NewQuotaStore(pool)
		}
	}

	if cfg.Engine.QuotaStore == configs.BackendRedis {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			closeAll()
			return st, func() {}, fmt.Errorf("redis connection: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		st.quota = redisadapter.NewQuotaStore(client, redisadapter.WithKeyPrefix(cfg.Redis.KeyPrefix))
	}
	return st, closeAll, nil
}
