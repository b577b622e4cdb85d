package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the demo workload.
type Config struct {
	// Producers is the number of concurrent goroutines sending pulses.
	Producers int `yaml:"producers"`

	// PulsesPerProducer is how many pulses each producer sends.
	PulsesPerProducer int `yaml:"pulses_per_producer"`

	// SendIntervalMS is the pause between sends per producer, in
	// milliseconds. Zero sends as fast as possible.
	SendIntervalMS int `yaml:"send_interval_ms"`

	// QueueSize is the stream's data channel capacity.
	QueueSize int `yaml:"queue_size"`

	// MetricsAddr is the listen address for /metrics; empty disables it.
	MetricsAddr string `yaml:"metrics_addr"`
}

func defaultConfig() Config {
	return Config{
		Producers:         4,
		PulsesPerProducer: 250,
		SendIntervalMS:    1,
		QueueSize:         1024,
		MetricsAddr:       ":9090",
	}
}

// loadConfig reads the YAML config at path, or returns defaults when path
// is empty. Unset fields fall back to their defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Producers <= 0 {
		cfg.Producers = defaultConfig().Producers
	}
	if cfg.PulsesPerProducer <= 0 {
		cfg.PulsesPerProducer = defaultConfig().PulsesPerProducer
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultConfig().QueueSize
	}
	return cfg, nil
}
