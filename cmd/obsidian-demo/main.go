// Command obsidian-demo exercises the substrate end to end: concurrent
// producers push pulses through a stream while release notices and
// prometheus metrics report its lifecycle.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/beeauvin/obsidian/metric"
	"github.com/beeauvin/obsidian/pulse"
	"github.com/beeauvin/obsidian/stream"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// reading is the demo payload.
type reading struct {
	Producer string
	Value    float64
}

func (r reading) ID() string { return r.Producer }

func main() {
	cli := parseFlags()

	if cli.ShowHelp {
		usage()
		return
	}
	if cli.ShowVersion {
		fmt.Println("obsidian-demo", Version)
		return
	}

	logger := setupLogger(cli.LogLevel, cli.LogFormat)

	cfg, err := loadConfig(cli.ConfigPath)
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := metric.NewRegistry()

	// Metrics endpoint
	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(
			registry.PrometheusRegistry(), promhttp.HandlerOpts{}))
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			logger.Info("metrics listening", "addr", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	var consumed atomic.Int64
	st := stream.New(
		func(p pulse.Pulse[reading]) {
			consumed.Add(1)
			if p.Meta().Debug() {
				logger.Debug("consumed pulse",
					"pulse", p.ID(),
					"producer", p.Data().Producer,
					"value", p.Data().Value)
			}
		},
		stream.WithName[reading]("demo"),
		stream.WithQueueSize[reading](cfg.QueueSize),
		stream.WithLogger[reading](logger),
		stream.WithMetrics[reading](registry),
		stream.WithSourceReleased[reading](func(p pulse.Pulse[stream.Released]) {
			logger.Info("source notified of release", "stream", p.Data().StreamID)
		}),
		stream.WithAnchorReleased[reading](func(p pulse.Pulse[stream.Released]) {
			logger.Info("anchor notified of release", "stream", p.Data().StreamID)
		}),
	)

	logger.Info("stream active",
		"stream", st.Name(),
		"id", st.ID(),
		"producers", cfg.Producers)

	// Producers
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Producers; i++ {
		name := fmt.Sprintf("producer-%d", i)
		g.Go(func() error {
			meta := pulse.NewMetadata().
				WithTags(pulse.NewTags("demo", name)).
				WithDebug(true)
			for j := 0; j < cfg.PulsesPerProducer; j++ {
				select {
				case <-gctx.Done():
					return nil
				default:
				}
				p := pulse.New(
					reading{Producer: name, Value: float64(j)},
					pulse.WithMeta[reading](meta))
				if err := st.Send(p); err != nil {
					// Released mid-run: a normal outcome, stop producing
					return nil
				}
				if cfg.SendIntervalMS > 0 {
					time.Sleep(time.Duration(cfg.SendIntervalMS) * time.Millisecond)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := st.Release(); err != nil {
		return err
	}
	logger.Info("stream released", "consumed", consumed.Load())

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
