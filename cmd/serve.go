package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cloudboard/internal/config"
	"cloudboard/internal/detect"
	"cloudboard/internal/ingest"
	"cloudboard/internal/mcp"
	"cloudboard/internal/metrics"
	"cloudboard/pkg/logging"
)

// serveDebug enables verbose logging in the headless server.
var serveDebug bool

// serveCatalog points at an extra YAML catalog file merged on top of the
// built-in seed for this server's session.
var serveCatalog string

// serveCmd defines the serve command structure. It runs cloudboard headless:
// the catalog and detection tools are exposed over MCP so agents can use
// them, and Prometheus metrics are served on a separate listener.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the headless cloudboard MCP server",
	Long: `Starts cloudboard without a terminal UI and serves the catalog over the
Model Context Protocol (SSE transport), so AI assistants and scripts can
search companies, read provider aggregates and submit domains for detection.

Companies added through the provider_detect tool live in this process's
session catalog and are discarded when the server stops. Prometheus metrics
(detection outcomes and latency, catalog composition, tool usage) are served
on a separate /metrics listener.

The server runs until interrupted (Ctrl+C or SIGTERM).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if serveDebug {
		level = logging.LevelDebug
	}
	logging.InitForServe(level, "cloudboard")

	store, err := buildStore(cfg, serveCatalog)
	if err != nil {
		return err
	}

	serverMetrics := metrics.NewServerMetrics()
	detector := serverMetrics.InstrumentDetector(detect.New(cfg.Detection.Endpoint, cfg.Detection.Timeout()))
	ingestor := ingest.New(store, detector)

	srv := mcp.NewServer(mcp.ServerOptions{
		Config:   cfg.Server,
		Store:    store,
		Ingestor: ingestor,
		Detector: detector,
		Metrics:  serverMetrics,
		Version:  rootCmd.Version,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	logging.Info("Serve", "MCP endpoint ready at %s", srv.Endpoint())

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func init() {
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable verbose logging")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Extra YAML catalog file merged with the built-in seed")
}
