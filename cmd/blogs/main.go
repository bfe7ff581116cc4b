package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/blogsandposts/internal/config"
	"github.com/2beens/blogsandposts/internal/console"
	"github.com/2beens/blogsandposts/internal/logging"
	"github.com/2beens/blogsandposts/internal/menu"
	"github.com/2beens/blogsandposts/internal/telemetry/metrics"
	"github.com/2beens/blogsandposts/internal/telemetry/tracing"
)

func main() {
	os.Exit(run())
}

func run() int {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	storeOverride := flag.String("store", "", "override the configured store [postgres | sqlite | redis | memory]")
	flag.Parse()

	// a broken or missing config must not keep the menu from running
	cfg, cfgErr := config.Load(*env, *configPath)
	if cfgErr != nil {
		cfg = config.Default()
	}
	if *storeOverride != "" {
		cfg.Store = *storeOverride
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -store flag: %s\n", err)
			return 1
		}
	}

	closeLogging := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStderr:      cfg.LogToStderr,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "blogs-console",
	})
	defer closeLogging()

	if cfgErr != nil {
		log.Warnf("load config [%s]: %s, using defaults", *configPath, cfgErr)
	}

	log.Info("program started")
	defer log.Info("program ended")
	log.Debugf("env: [%s], store: [%s]", cfg.Environment, cfg.Store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.TracingEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		log.Warnln("tracing enabled, but neither HONEYCOMB_API_KEY nor OTEL_EXPORTER_OTLP_ENDPOINT is set")
	}
	otelShutdown, err := tracing.Setup(cfg.TracingEnabled, "blogsandposts")
	if err != nil {
		log.Errorf("tracing setup failed, continuing without it: %s", err)
		otelShutdown = func() {}
	}

	store, collectors, err := openStore(ctx, cfg)
	if err != nil {
		log.Errorf("open %s store: %s", cfg.Store, err)
		otelShutdown()
		return 1
	}

	promRegistry := metrics.SetupPrometheus(collectors...)
	metricsManager := metrics.NewManager("blogsandposts", "console", promRegistry)

	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() {
			if err := metrics.WriteTextfile(cfg.MetricsTextfile, promRegistry); err != nil {
				log.Errorf("metrics: %s", err)
			}
			if err := store.Close(); err != nil {
				log.Errorf("close store: %s", err)
			}
			log.Debugln("store closed")
			otelShutdown()
		})
	}
	defer shutdown()

	// stdin reads cannot be interrupted, so a signal ends the process from here
	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		receivedSig, ok := <-chOsInterrupt
		if !ok {
			return
		}
		log.Warnf("signal [%s] received, exiting ...", receivedSig)
		cancel()
		shutdown()
		log.Info("program ended")
		closeLogging()
		os.Exit(130)
	}()
	defer func() {
		signal.Stop(chOsInterrupt)
		close(chOsInterrupt)
	}()

	blogsMenu := menu.NewMenu(store, console.NewPrompter(os.Stdin, os.Stdout), os.Stdout, metricsManager)
	if err := blogsMenu.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			log.Debugln("input closed")
			return 0
		}
		log.Error(err.Error())
		return 1
	}

	return 0
}
