// Package mcp exposes the catalog over the Model Context Protocol so agents
// and `cloudboard cli` can search companies, read aggregates and ingest new
// domains through the same code paths the dashboard uses.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"cloudboard/internal/catalog"
	"cloudboard/internal/config"
	"cloudboard/internal/detect"
	"cloudboard/internal/ingest"
	"cloudboard/internal/metrics"
	"cloudboard/pkg/logging"
)

// ServerOptions wires the collaborators the tools operate on.
type ServerOptions struct {
	Config   config.ServerConfig
	Store    *catalog.Store
	Ingestor *ingest.Ingestor
	Detector detect.Detector
	Metrics  *metrics.ServerMetrics
	Version  string
}

// Server is the SSE-transport MCP server plus its Prometheus listener.
type Server struct {
	opts ServerOptions

	server        *server.MCPServer
	sseServer     *server.SSEServer
	metricsServer *http.Server

	mu sync.Mutex
	wg sync.WaitGroup
}

// NewServer creates a stopped server.
func NewServer(opts ServerOptions) *Server {
	if opts.Config.Host == "" {
		opts.Config.Host = config.DefaultServerHost
	}
	if opts.Config.Port == 0 {
		opts.Config.Port = config.DefaultServerPort
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Server{opts: opts}
}

// Start brings up the SSE endpoint and, when metrics are wired, the
// /metrics listener. Both run until Stop.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server != nil {
		return fmt.Errorf("cloudboard server already started")
	}

	mcpServer := server.NewMCPServer(
		"cloudboard",
		s.opts.Version,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(s.serverTools()...)
	s.server = mcpServer

	s.sseServer = server.NewSSEServer(
		s.server,
		server.WithBaseURL(s.opts.Config.EffectiveBaseURL()),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	addr := s.opts.Config.Addr()
	logging.Info("MCP", "Starting cloudboard MCP server on %s", addr)

	sseServer := s.sseServer
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			logging.Error("MCP", err, "SSE server error")
		}
	}()

	if s.opts.Metrics != nil {
		s.opts.Metrics.ObserveCatalog(s.opts.Store)

		mux := http.NewServeMux()
		mux.Handle("/metrics", s.opts.Metrics.Handler())
		s.metricsServer = &http.Server{Addr: s.opts.Config.MetricsAddr(), Handler: mux}

		metricsServer := s.metricsServer
		logging.Info("MCP", "Serving metrics on %s/metrics", metricsServer.Addr)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logging.Error("MCP", err, "metrics server error")
			}
		}()
	}

	return nil
}

// Stop shuts both listeners down and waits for their goroutines.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.server == nil {
		s.mu.Unlock()
		return fmt.Errorf("cloudboard server not started")
	}
	sseServer := s.sseServer
	metricsServer := s.metricsServer
	s.mu.Unlock()

	logging.Info("MCP", "Stopping cloudboard MCP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("MCP", err, "Error shutting down SSE server")
		}
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("MCP", err, "Error shutting down metrics server")
		}
	}

	s.wg.Wait()

	s.mu.Lock()
	s.server = nil
	s.sseServer = nil
	s.metricsServer = nil
	s.mu.Unlock()

	return nil
}

// Endpoint returns the SSE endpoint URL clients connect to.
func (s *Server) Endpoint() string {
	return s.opts.Config.EffectiveBaseURL() + "/sse"
}
