// Package entrypoint contains the main application bootstrap logic.
package entrypoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/overviewer-util/internal/config"
	"github.com/woozymasta/overviewer-util/internal/server"
	"github.com/woozymasta/overviewer-util/internal/vars"
	"github.com/woozymasta/overviewer-util/internal/version"
)

// Exit codes of Execute.
const (
	ExitOK     = 0
	ExitUsage  = 1
	ExitConfig = 2
	ExitServe  = 3
)

// Execute boots the application and returns an exit code.
func Execute(args []string, stdout io.Writer) int {
	opts, err := config.ParseFlags(args)
	if err != nil {
		if config.IsHelp(err) {
			return ExitOK
		}
		return ExitUsage
	}

	if opts.Version {
		if err := vars.Baked().Print(stdout); err != nil {
			return ExitUsage
		}
		return ExitOK
	}

	if opts.InitConfig {
		if err := config.EnsureConfigFile(opts.ConfigPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return ExitConfig
		}
	}

	if opts.PrintConfig {
		if err := config.PrintConfigOrExample(stdout, opts.ConfigPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return ExitConfig
		}
		return ExitOK
	}

	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return ExitConfig
	}

	resolver := version.New(cfg.Resolver)

	log.Debug().
		Str("config", opts.ConfigPath).
		Str("root", resolver.Root).
		Str("git", resolver.Git).
		Dur("describe_timeout", resolver.DescribeTimeout).
		Msg("configuration loaded")

	if opts.Serve {
		return serve(cfg, resolver)
	}

	info := resolver.Info(context.Background())

	if opts.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return ExitUsage
		}
		return ExitOK
	}

	if err := info.Print(stdout); err != nil {
		return ExitUsage
	}

	return ExitOK
}

// serve runs the build info HTTP server until SIGINT/SIGTERM.
func serve(cfg *config.Config, resolver *version.Resolver) int {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		server.NewBuildInfoCollector(resolver),
	)

	handler := server.NewHandler(resolver, cfg.Server.Auth)

	srv := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           server.NewRouter(handler, registry, log.Logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info().
		Str("address", cfg.Server.ListenAddr).
		Bool("auth_enabled", cfg.Server.Auth.User != "" && cfg.Server.Auth.Pass != "").
		Msg("starting overviewer build info server")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			return ExitServe
		}
		return ExitOK

	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return ExitServe
	}

	log.Info().Msg("server stopped")

	return ExitOK
}
