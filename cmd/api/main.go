package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"cx-metrics-go/internal/config"
	"cx-metrics-go/internal/dataset"
	"cx-metrics-go/internal/extractor"
	"cx-metrics-go/internal/logger"
	"cx-metrics-go/internal/processor"
	"cx-metrics-go/internal/sentiment"
)

func main() {
	_ = godotenv.Load() // loads .env

	cfg := config.Load()
	log := logger.New(cfg.Environment, cfg.LogLevel)
	log.WithField("service", "cx-metrics-go").Info("starting service")

	var analyzer processor.Analyzer
	if cfg.SentimentEnabled() {
		analyzer = sentiment.NewClient(cfg.Sentiment, log)
		log.WithField("mock", cfg.Sentiment.UseMock).Info("sentiment hand-off enabled")
	}
	proc := processor.New(extractor.New(extractor.WithLogger(log.Entry)), analyzer, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newServer(cfg, proc, log).routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	if ds, err := dataset.LoadAndSummarize(cfg.DatasetPath); err != nil {
		log.WithError(err).Warn("dataset not available; /demo, /rollup and /dataset will fail")
	} else {
		log.WithField("total_responses", ds.TotalResponses).Info("dataset summary loaded")
	}

	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
