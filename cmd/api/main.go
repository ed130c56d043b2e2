package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NitinV84/couch-matcher/internal/bgremoval"
	"github.com/NitinV84/couch-matcher/internal/catalog"
	"github.com/NitinV84/couch-matcher/internal/classifier"
	"github.com/NitinV84/couch-matcher/internal/db"
	"github.com/NitinV84/couch-matcher/internal/extractor"
	"github.com/NitinV84/couch-matcher/internal/monitoring"
	"github.com/NitinV84/couch-matcher/internal/ranker"
	"github.com/NitinV84/couch-matcher/internal/s3wrapper"
	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/stdlib"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

const version = "1.0.0"

const (
	strategyClassColor = "classcolor"
	strategyDescriptor = "descriptor"
)

type Config struct {
	Port     int    `validate:"min=1,max=65535"`
	DSN      string `validate:"required"`
	Strategy string `validate:"oneof=classcolor descriptor"`

	Classifier ModelConfig
	BgRemoval  ModelConfig

	S3 S3Config
}

type ModelConfig struct {
	URL     string
	Timeout time.Duration
}

type S3Config struct {
	Key      string `validate:"required"`
	Secret   string `validate:"required"`
	Endpoint string `validate:"required"`
	Region   string `validate:"required"`
	Bucket   string `validate:"required"`
	Insecure bool
}

func main() {
	cfg := Config{}

	flag.IntVar(&cfg.Port, "port", 8080, "port for the api server")
	flag.StringVar(&cfg.DSN, "dsn", os.Getenv("DB_DSN"), "connection string for the database")
	flag.StringVar(&cfg.Strategy, "strategy", envOr("MATCH_STRATEGY", strategyClassColor),
		"matching strategy, classcolor or descriptor")

	flag.StringVar(&cfg.Classifier.URL, "classifier.url", os.Getenv("CLASSIFIER_URL"), "classifier model server url")
	flag.DurationVar(&cfg.Classifier.Timeout, "classifier.timeout", 30*time.Second, "classifier request timeout")
	flag.StringVar(&cfg.BgRemoval.URL, "bgremoval.url", os.Getenv("BGREMOVAL_URL"), "background removal service url")
	flag.DurationVar(&cfg.BgRemoval.Timeout, "bgremoval.timeout", 30*time.Second, "background removal request timeout")

	flag.StringVar(&cfg.S3.Key, "s3.key", os.Getenv("S3_KEY"), "s3 key")
	flag.StringVar(&cfg.S3.Secret, "s3.secret", os.Getenv("S3_SECRET"), "s3 secret")
	flag.StringVar(&cfg.S3.Endpoint, "s3.endpoint", os.Getenv("S3_ENDPOINT"), "s3 endpoint")
	flag.StringVar(&cfg.S3.Region, "s3.region", "eu-west-1", "s3 region")
	flag.StringVar(&cfg.S3.Bucket, "s3.bucket", os.Getenv("S3_BUCKET"), "s3 bucket")
	flag.BoolVar(&cfg.S3.Insecure, "s3.insecure", false, "disable ssl for s3 (local development)")
	flag.Parse()

	if err := validateConfig(cfg); err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	storage, err := s3wrapper.NewFromSecrets(
		cfg.S3.Key, cfg.S3.Secret, cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.Bucket, cfg.S3.Insecure, logger,
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := storage.CheckConnectivity(5, time.Second); err != nil {
		log.Fatal(err)
	}

	dbConn, err := sqlx.Connect("pgx", cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}

	ingestExtractor, queryExtractor, matchRanker, err := matchingStack(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	tracker := monitoring.NewTracker()
	if err := tracker.Register(); err != nil {
		log.Fatal(err)
	}

	svc := catalog.NewService(
		db.NewSofaRepo(dbConn),
		storage,
		ingestExtractor,
		queryExtractor,
		matchRanker,
		logger,
		tracker,
	)

	app := &webApp{
		config:  cfg,
		log:     logger,
		catalog: svc,
		tracker: tracker,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return svc.RunExtractionWorker(ctx) })
	g.Go(func() error { return app.serve(ctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("shutting down with error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

// matchingStack assembles the extractor pair and the ranker for the selected
// strategy. Ingest images arrive on clean studio backgrounds, so only the
// query extractor goes through background removal.
func matchingStack(cfg Config, logger *slog.Logger) (catalog.Extractor, catalog.Extractor, catalog.Ranker, error) {
	switch cfg.Strategy {
	case strategyDescriptor:
		d, err := extractor.NewDescriptor(logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return d, d, ranker.NewCosine(logger), nil

	case strategyClassColor:
		var cl extractor.Classifier
		if cfg.Classifier.URL != "" {
			cl = classifier.NewClient(cfg.Classifier.URL, cfg.Classifier.Timeout, logger)
		} else {
			logger.Warn("no classifier url configured, labeling everything as sofa")
			cl = classifier.NewPlaceholder("sofa")
		}

		var remover extractor.BackgroundRemover = bgremoval.Passthrough{}
		if cfg.BgRemoval.URL != "" {
			remover = bgremoval.NewClient(cfg.BgRemoval.URL, cfg.BgRemoval.Timeout, logger)
		} else {
			logger.Warn("no background removal url configured, query images used as-is")
		}

		ingest := extractor.NewClassColor(cl, bgremoval.Passthrough{}, logger)
		query := extractor.NewClassColor(cl, remover, logger)

		return ingest, query, ranker.NewWeighted(logger), nil

	default:
		return nil, nil, nil, errors.New("unknown matching strategy " + cfg.Strategy)
	}
}

func validateConfig(cfg Config) error {
	validate := validator.New()
	return validate.Struct(cfg)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
