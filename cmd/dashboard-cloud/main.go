package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"pharmadash.molview.org/internal/app"
	"pharmadash.molview.org/internal/auth"
	"pharmadash.molview.org/internal/config"
	"pharmadash.molview.org/internal/dataset"
	"pharmadash.molview.org/internal/logging"
	"pharmadash.molview.org/internal/observability"
	"pharmadash.molview.org/internal/restapi"
	"pharmadash.molview.org/internal/webui"
)

const apiRateLimit = 100

func main() {
	cfg := config.Load()
	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	if cfg.Username == "" || cfg.Password == "" || cfg.SessionSecret == "" {
		logger.Error("DASHBOARD_USER, DASHBOARD_PASSWORD and SESSION_SECRET are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	ds, err := dataset.LoadStore(ctx, dataset.StoreConfig{
		URL:      cfg.DatabaseURL,
		PageSize: cfg.PageSize,
	}, logger)
	cancel()
	if err != nil {
		logger.Error("failed to load dataset from store", "error", err)
		os.Exit(1)
	}

	var apiKeys []string
	for _, key := range strings.Split(cfg.APIKeys, ",") {
		if key = strings.TrimSpace(key); key != "" {
			apiKeys = append(apiKeys, key)
		}
	}

	application := &app.Application{
		Config: app.Config{
			Port:    cfg.Port,
			Env:     cfg.Env,
			ApiKeys: apiKeys,
		},
		Logger:  logger,
		Dataset: ds,
	}

	sessions := auth.NewSessions(cfg.SessionSecret, cfg.Username, cfg.Password)

	mux := http.NewServeMux()
	webui.NewProtectedWebUI(application, sessions).SetRoutes(mux)
	mux.Handle("/api/", restapi.NewRestAPI(application, apiRateLimit).Router())

	observability.Start(cfg.MetricsPort)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "metrics_port", cfg.MetricsPort)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
