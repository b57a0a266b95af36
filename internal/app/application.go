package app

import (
	"log/slog"

	"pharmadash.molview.org/internal/dataset"
)

// Application holds the dependencies shared by the HTTP handlers, helpers,
// and middleware of both dashboard binaries.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Dataset *dataset.Dataset
}

// Config holds the settings common to both variants: the network port, the
// operating environment name, and the accepted API keys. The data source
// settings live with each binary since they differ between variants.
type Config struct {
	Port    int
	Env     string
	ApiKeys []string
}
