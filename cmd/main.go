package main

import (
	"net/http"
	"time"

	"github.com/wgomg/klhousing/internal/api"
	"github.com/wgomg/klhousing/internal/config"
	"github.com/wgomg/klhousing/internal/metrics"
	"github.com/wgomg/klhousing/internal/reddit"
	"github.com/wgomg/klhousing/internal/textfreq"
	"github.com/wgomg/klhousing/internal/utils"
	"github.com/wgomg/klhousing/internal/utils/httputils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger(utils.LoggerOptions{Level: "error"})
		log.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.Validate(); err != nil {
		log := utils.NewLogger(utils.LoggerOptions{Level: "error"})
		log.Fatal("Invalid configuration:", err)
	}

	logger := utils.NewLogger(utils.LoggerOptions{Level: cfg.App.LogLevel, File: cfg.App.LogFile})
	defer logger.Close()

	logger.Info(nil, "Starting KL Housing Dashboard")
	logger.Info(nil, "Environment: %s", cfg.App.Env)
	logger.Info(nil, "Log level: %s", cfg.App.LogLevel)
	logger.Info(nil, "Dataset: %s", cfg.Dataset.Path)

	resources, err := textfreq.LoadResources(textfreq.ResourceOptions{File: cfg.Text.ResourcesFile})
	if err != nil {
		logger.Error(nil, "Failed to load text resources: %v", err)
		logger.Fatal("Missing text resources")
	}
	reducer, err := textfreq.NewReducer(cfg.Text.Reducer, resources)
	if err != nil {
		logger.Fatal("Invalid reducer:", err)
	}
	logger.Info(nil, "Text pipeline: reducer=%s stopwords=%d split_items=%v",
		cfg.Text.Reducer, resources.StopwordCount(), cfg.Text.SplitItems)

	extractor := textfreq.NewExtractor(
		textfreq.NewNormalizer(resources, reducer),
		textfreq.Options{SplitItems: cfg.Text.SplitItems},
	)

	redditClient, err := reddit.NewClient(cfg, logger)
	if err != nil {
		logger.Error(nil, "Failed to create Reddit client: %v", err)
		logger.Fatal("Missing required configuration")
	}

	m := metrics.New()
	searcher := reddit.NewCachedSearcher(
		redditClient,
		reddit.NewSearchCache(time.Duration(cfg.Reddit.CacheTTLSeconds)*time.Second),
		m,
		logger,
	)

	handler := api.NewHandler(logger, searcher, extractor, m, cfg)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	timeout := time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.App.ServerPort,
		Handler:      httputils.WithRequestID(mux),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	logger.Info(nil, "Starting server on port %s", cfg.App.ServerPort)
	logger.Info(nil, "Endpoints:")
	logger.Info(nil, "  GET  /health")
	logger.Info(nil, "  GET  /metrics")
	logger.Info(nil, "  GET  /api/pages")
	logger.Info(nil, "  POST /api/forum/scrape")
	logger.Fatal(server.ListenAndServe())
}
