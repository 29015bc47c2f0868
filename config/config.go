package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config defaults reproduce the hardcoded behaviour; nothing needs to be set.
type Config struct {
	Endpoint         string        `env:"LIVELINK_ENDPOINT" default:"ws://localhost:8080"`
	Text             string        `env:"LIVELINK_TEXT" default:"你好"`
	FaceInterval     time.Duration `env:"LIVELINK_FACE_INTERVAL" default:"30ms"`
	TextInterval     time.Duration `env:"LIVELINK_TEXT_INTERVAL" default:"1s"`
	ReconnectBackoff time.Duration `env:"LIVELINK_RECONNECT_BACKOFF" default:"3s"`

	SinkAddr    string `env:"SINK_ADDR" default:":8080"`
	MetricsAddr string `env:"METRICS_ADDR"` // empty disables /metrics

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("LIVELINK_ENDPOINT is not a valid URL: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("LIVELINK_ENDPOINT must use ws or wss, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("LIVELINK_ENDPOINT must include a host")
	}

	durations := map[string]time.Duration{
		"LIVELINK_FACE_INTERVAL":     cfg.FaceInterval,
		"LIVELINK_TEXT_INTERVAL":     cfg.TextInterval,
		"LIVELINK_RECONNECT_BACKOFF": cfg.ReconnectBackoff,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	return nil
}
