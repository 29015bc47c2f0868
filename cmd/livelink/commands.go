package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"livelink/metrics"
	"livelink/network"
	"livelink/publisher"
	"livelink/rig"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Send the greeting string once a second",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPublisher(cmd.Context(), "text", publisher.TextComposer{Text: cfg.Text}, cfg.TextInterval)
	},
}

var faceCmd = &cobra.Command{
	Use:   "face",
	Short: "Send skeleton + random blend-shape frames at ~33Hz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPublisher(cmd.Context(), "face", publisher.NewFaceComposer(rig.RandSampler{}), cfg.FaceInterval)
	},
}

var sinkCmd = &cobra.Command{
	Use:   "sink",
	Short: "Accept publishers locally and log what they send",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSink(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(textCmd, faceCmd, sinkCmd)
}

func runPublisher(ctx context.Context, variant string, c publisher.Composer, interval time.Duration) error {
	serveMetrics(ctx)

	p := publisher.New(network.Dialer{}, c, publisher.Options{
		Variant:  variant,
		Endpoint: cfg.Endpoint,
		Interval: interval,
		Backoff:  cfg.ReconnectBackoff,
		Metrics:  metrics.NewPublisherMetrics(reg),
		Logger:   logger,
		LogSends: variant == "text",
	})

	slog.Info("publisher starting", "variant", variant, "endpoint", cfg.Endpoint, "interval", interval)
	err := p.Run(ctx)
	if errors.Is(err, context.Canceled) {
		slog.Info("publisher stopped")
		return nil
	}
	return err
}

func runSink(ctx context.Context) error {
	mux := http.NewServeMux()
	sink := network.NewSink()
	sink.Logger = logger
	mux.Handle("/", sink)
	srv := &http.Server{Addr: cfg.SinkAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("sink listening", "addr", cfg.SinkAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
