package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/neurlang/multiclass/config"
	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/trainer"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	var pgo bool

	cmd := &cobra.Command{
		Use:           "train_multiclass",
		Short:         "Train a multiclass machine out of binary learners",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if pgo {
				stop, err := startProfile("default.pgo")
				if err != nil {
					return err
				}
				defer stop()
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "YAML configuration file")
	cmd.Flags().BoolVar(&pgo, "pgo", false, "write a CPU profile to default.pgo")
	config.Flags(cmd.Flags())
	return cmd
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(stderr, cfg.LogLevel)
	log.Info("cpu", "brand", cpuid.CPU.BrandName, "cores", cpuid.CPU.PhysicalCores, "kernel", features.Kernel())

	reg := prometheus.NewRegistry()
	opts := trainer.Options{Logger: log, Registerer: reg}

	if cfg.MetricsAddr == "" {
		rep, err := trainer.Run(ctx, cfg, opts)
		if err != nil {
			return err
		}
		return render(stdout, cfg.Output, rep)
	}

	srv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	eg, egctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	eg.Go(func() error {
		log.Info("serving metrics", "addr", cfg.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		select {
		case <-done:
		case <-egctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	eg.Go(func() error {
		defer close(done)
		rep, err := trainer.Run(egctx, cfg, opts)
		if err != nil {
			return err
		}
		return render(stdout, cfg.Output, rep)
	})
	return eg.Wait()
}
