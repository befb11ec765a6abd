// cmd/lead-scorer/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"leadscore/internal/common/aws"
	"leadscore/internal/common/config"
	"leadscore/internal/common/database"
	"leadscore/internal/common/logger"
	"leadscore/internal/common/observability"
	"leadscore/internal/export"
	"leadscore/internal/ingest"
	"leadscore/internal/models"
	"leadscore/internal/pipeline"
	"leadscore/internal/retrieval"
	"leadscore/internal/scoring/business"
	"leadscore/internal/scoring/contact"
	"leadscore/internal/scoring/digital"
	"leadscore/internal/scoring/engagement"
	"leadscore/internal/scoring/priority"
	"leadscore/internal/validation"
	"leadscore/pkg/rules"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	configPath := flag.String("config", "", "path to config file (default: configs/config.yaml via search path)")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lead-scorer [-config path] <leads.csv> [more.csv ...]")
		os.Exit(2)
	}

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting lead scorer...")

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Metrics endpoint ---
	if cfg.Metrics.Enabled {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			zapLog.Info("Metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				zapLog.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Init PostgreSQL with retry (only when the sink is on) ---
	var pg *database.PostgresClient
	if cfg.Export.Postgres.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	if cfg.Export.Elasticsearch.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 10, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Init Redis cache with retry ---
	var cache *retrieval.Cache
	if cfg.Retrieval.CacheEnabled {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
		cache = retrieval.NewCache(redis, time.Duration(cfg.Retrieval.CacheTTL)*time.Second, log)
	}

	// --- Indicator rules ---
	ruleSet, err := rules.LoadRuleSet(cfg.Scoring.RulesPath)
	if err != nil {
		zapLog.Warn("rules file not loaded, using built-in rules",
			zap.String("path", cfg.Scoring.RulesPath), zap.Error(err))
		ruleSet = nil
	}

	// --- Build the pipeline ---
	validator, err := validation.NewValidator(log)
	if err != nil {
		zapLog.Fatal("validator init failed", zap.Error(err))
	}
	calculator, err := priority.NewCalculator(cfg.Scoring)
	if err != nil {
		zapLog.Fatal("priority calculator init failed", zap.Error(err))
	}

	fetcher := retrieval.NewHTTPFetcher(config.GetDuration(cfg.Retrieval.Timeout), cfg.Retrieval.UserAgent)

	p := pipeline.New(pipeline.Options{
		Validator:     validator,
		Website:       retrieval.NewWebsiteAnalyzer(fetcher, cache, log),
		Maps:          retrieval.NewMapsAnalyzer(fetcher, cache, log),
		Business:      business.NewScorer(cfg.Scoring.Business, ruleSet, log),
		Digital:       digital.NewScorer(cfg.Scoring.Digital, log),
		Engagement:    engagement.NewScorer(cfg.Scoring.Engagement, log),
		Contact:       contact.NewScorer(cfg.Scoring.Contact),
		Priority:      calculator,
		Workers:       cfg.Pipeline.Workers,
		Logger:        log,
		Observability: obs,
	})

	// --- Run the batch ---
	leads := ingest.NewLoader(log).BatchLoad(inputs)
	if len(leads) == 0 {
		zapLog.Fatal("no leads loaded from input files")
	}
	zapLog.Info("leads loaded", zap.Int("count", len(leads)))

	result := p.Run(ctx, leads)

	// --- Export fan-out ---
	if err := export.NewCSVExporter(cfg.Export.CSVPath, log).Export(result); err != nil {
		zapLog.Error("csv export failed", zap.Error(err))
	}

	if pg != nil {
		sink := export.NewPostgresSink(pg.DB, cfg.Export.Postgres.Table, log)
		if err := sink.EnsureSchema(ctx); err != nil {
			zapLog.Error("postgres schema setup failed", zap.Error(err))
		} else if err := sink.Export(ctx, result); err != nil {
			zapLog.Error("postgres export failed", zap.Error(err))
		}
	}

	if esClient != nil {
		sink := export.NewElasticsearchSink(esClient.Client, cfg.Export.Elasticsearch.Index, log)
		if err := sink.Export(ctx, result); err != nil {
			zapLog.Error("elasticsearch export failed", zap.Error(err))
		}
	}

	// --- HOT lead alerts ---
	if cfg.Notifications.Email.Enabled || cfg.Notifications.SMS.Enabled {
		var emailSender export.EmailSender
		var smsSender export.SMSSender
		if cfg.Notifications.Email.Enabled {
			sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
			if err != nil {
				zapLog.Error("ses client init failed", zap.Error(err))
			} else {
				emailSender = sesClient
			}
		}
		if cfg.Notifications.SMS.Enabled {
			snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
			if err != nil {
				zapLog.Error("sns client init failed", zap.Error(err))
			} else {
				smsSender = snsClient
			}
		}
		notifier := export.NewNotifier(cfg.Notifications, emailSender, smsSender, log)
		if err := notifier.NotifyHotLeads(ctx, result); err != nil {
			zapLog.Error("hot lead notification failed", zap.Error(err))
		}
	}

	export.WriteSummary(os.Stdout, result, cfg.Export.TopN)

	result.Stage = models.StageExported
	zapLog.Info("Batch complete",
		zap.String("batchId", result.BatchID),
		zap.Int("total", result.Total),
		zap.Int("failures", result.Failures),
	)
}
