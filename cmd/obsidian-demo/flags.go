package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	ShowHelp    bool
	ShowVersion bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("OBSIDIAN_CONFIG", ""),
		"Path to YAML configuration file, empty for defaults (env: OBSIDIAN_CONFIG)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("OBSIDIAN_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: OBSIDIAN_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("OBSIDIAN_LOG_FORMAT", "text"),
		"Log format: json, text (env: OBSIDIAN_LOG_FORMAT)")

	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version")

	flag.Parse()
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage() {
	fmt.Fprintf(os.Stderr, "obsidian-demo: exercise the obsidian message substrate\n\n")
	flag.PrintDefaults()
}
