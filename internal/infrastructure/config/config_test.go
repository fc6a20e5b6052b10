package config

import (
	"testing"
	"time"

	"github.com/emiliopalmerini/housefit/internal/dataset"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dataset.TrainURL != dataset.TrainURL || cfg.Dataset.TestURL != dataset.TestURL {
		t.Errorf("dataset urls = %q, %q", cfg.Dataset.TrainURL, cfg.Dataset.TestURL)
	}
	if cfg.Dataset.ScaleFactor != 1000 {
		t.Errorf("scale factor = %v, want 1000", cfg.Dataset.ScaleFactor)
	}
	if cfg.Dataset.Timeout != 60*time.Second {
		t.Errorf("timeout = %v", cfg.Dataset.Timeout)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("output dir = %q", cfg.Output.Dir)
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry must default to disabled")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HOUSEFIT_TRAIN_URL", "http://localhost/train.csv")
	t.Setenv("HOUSEFIT_SCALE_FACTOR", "1")
	t.Setenv("HOUSEFIT_OUTPUT_DIR", "/tmp/plots")
	t.Setenv("HOUSEFIT_OTEL_ENABLED", "true")
	t.Setenv("HOUSEFIT_OTEL_ENDPOINT", "localhost:4317")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dataset.TrainURL != "http://localhost/train.csv" {
		t.Errorf("train url = %q", cfg.Dataset.TrainURL)
	}
	if cfg.Dataset.ScaleFactor != 1 {
		t.Errorf("scale factor = %v", cfg.Dataset.ScaleFactor)
	}
	if cfg.Output.Dir != "/tmp/plots" {
		t.Errorf("output dir = %q", cfg.Output.Dir)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Endpoint != "localhost:4317" {
		t.Errorf("telemetry = %+v", cfg.Telemetry)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HOUSEFIT_HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("expected error for an invalid duration")
	}
}
