package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"primed/internal/common/fsutil"
	"primed/internal/config"
	"primed/internal/engine"
	"primed/internal/httpapi"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("PRIMED_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultLevel := "info"
	if v := os.Getenv("PRIMED_LOG_LEVEL"); v != "" {
		defaultLevel = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", "", "Optional config file (.yaml/.yml/.json/.toml)")
	logLevel := flag.String("log-level", defaultLevel, "Log level: debug|info|warn|error")
	portableOnly := flag.Bool("portable-only", false, "Force the portable backend (same as PRIMED_PORTABLE_ONLY=1)")
	flag.Parse()

	var fileCfg config.Config
	if *configPath != "" {
		p, err := fsutil.ExpandHome(*configPath)
		if err != nil {
			log.Fatalf("config path: %v", err)
		}
		fileCfg, err = config.Load(p)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	// Flags win over the file; the file wins over built-in defaults.
	if fileCfg.Addr != "" && *addr == defaultAddr {
		*addr = fileCfg.Addr
	}
	if fileCfg.LogLevel != "" && *logLevel == defaultLevel {
		*logLevel = fileCfg.LogLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zl = zl.Level(lvl)
	}
	httpapi.SetLogger(zl)
	if fileCfg.CORSEnabled {
		httpapi.SetCORSOptions(true, fileCfg.CORSOrigins, []string{"GET"}, nil)
	}

	// Backend resolution config is read exactly once, before first use.
	engCfg := engine.ConfigFromEnv()
	if *portableOnly || fileCfg.PortableOnly {
		engCfg.DisableAccel = true
	}
	engine.SetConfig(engCfg)
	sel := engine.Resolve()
	zl.Info().Str("backend", string(sel.Kind)).Bool("accel_disabled", sel.Disabled).Msg("backend resolved")

	mux := httpapi.NewMux(engine.New())
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		zl.Info().Str("addr", *addr).Msg("primed listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error().Err(err).Msg("graceful shutdown error")
	}
}
