package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/housefit/internal/adapters/otel"
)

// Prefix namespaces every environment variable, e.g. HOUSEFIT_TRAIN_URL.
const Prefix = "HOUSEFIT"

// Dataset holds where the tables come from and how the label is scaled.
type Dataset struct {
	TrainURL    string        `envconfig:"TRAIN_URL" default:"https://download.mlcc.google.com/mledu-datasets/california_housing_train.csv"`
	TestURL     string        `envconfig:"TEST_URL" default:"https://download.mlcc.google.com/mledu-datasets/california_housing_test.csv"`
	ScaleFactor float64       `envconfig:"SCALE_FACTOR" default:"1000"`
	Timeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"60s"`
}

// Output holds where plots and the report are written.
type Output struct {
	Dir string `envconfig:"OUTPUT_DIR" default:"out"`
}

// Config holds the whole tool configuration.
type Config struct {
	Dataset   Dataset
	Output    Output
	Telemetry otel.Config
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg.Dataset); err != nil {
		return nil, err
	}
	if err := envconfig.Process(Prefix, &cfg.Output); err != nil {
		return nil, err
	}
	if err := envconfig.Process(Prefix, &cfg.Telemetry); err != nil {
		return nil, err
	}
	return &cfg, nil
}
