package config

import (
	"fmt"
	"time"
)

// Config is the top-level configuration structure for cloudboard.
type Config struct {
	Detection DetectionConfig `yaml:"detection"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DetectionConfig points at the external cloud-detection endpoint.
type DetectionConfig struct {
	Endpoint       string `yaml:"endpoint,omitempty"`       // Base URL of the detection service
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"` // Per-request timeout (default: 15)
}

// Timeout returns the configured per-request timeout as a duration.
func (d DetectionConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// CatalogConfig controls where the seed catalog comes from.
type CatalogConfig struct {
	File string `yaml:"file,omitempty"` // Optional YAML catalog merged on top of the built-in seed
}

// ServerConfig defines the MCP/SSE server and its metrics listener.
type ServerConfig struct {
	Host        string `yaml:"host,omitempty"`        // Host to bind to (default: localhost)
	Port        int    `yaml:"port,omitempty"`        // Port for the SSE endpoint (default: 8090)
	BaseURL     string `yaml:"baseURL,omitempty"`     // Externally reachable base URL advertised to clients
	MetricsPort int    `yaml:"metricsPort,omitempty"` // Port for the Prometheus /metrics listener (default: 9105)
}

// Addr returns the host:port pair the SSE server binds.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MetricsAddr returns the host:port pair the metrics listener binds.
func (s ServerConfig) MetricsAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.MetricsPort)
}

// EffectiveBaseURL returns the advertised base URL, deriving one from the
// bind address when not set explicitly.
func (s ServerConfig) EffectiveBaseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return fmt.Sprintf("http://%s:%d", s.Host, s.Port)
}

// LoggingConfig selects the minimum level emitted by all binaries.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "debug", "info", "warn" or "error"
}
