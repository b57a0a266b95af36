package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"pharmadash.molview.org/internal/app"
	"pharmadash.molview.org/internal/dataset"
	"pharmadash.molview.org/internal/logging"
	"pharmadash.molview.org/internal/observability"
	"pharmadash.molview.org/internal/restapi"
	"pharmadash.molview.org/internal/webui"
)

func main() {
	var cfg app.Config
	var apiKeysFlag, dataPath, sheet string
	var rateLimit int

	flag.IntVar(&cfg.Port, "port", 4000, "Dashboard server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.StringVar(&dataPath, "data", "molecules.xlsx", "Path to the dataset workbook")
	flag.StringVar(&sheet, "sheet", "", "Workbook sheet name (default: first sheet)")
	flag.IntVar(&rateLimit, "rate-limit", 100, "API requests per second per key")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	ds, err := dataset.LoadXLSX(dataPath, sheet, logger)
	if err != nil {
		logger.Error("failed to load dataset", "path", dataPath, "error", err)
		os.Exit(1)
	}

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Dataset: ds,
	}

	mux := http.NewServeMux()
	webui.NewWebUI(application).SetRoutes(mux)
	mux.Handle("/api/", restapi.NewRestAPI(application, rateLimit).Router())
	mux.Handle("GET /metrics", observability.Handler())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
