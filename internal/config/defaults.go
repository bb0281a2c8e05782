package config

// Default endpoints and ports. The detection endpoint is overridable per
// user or per project; everything works out of the box against it.
const (
	DefaultDetectionEndpoint = "https://cloud-detect.fly.dev"
	DefaultTimeoutSeconds    = 15
	DefaultServerHost        = "localhost"
	DefaultServerPort        = 8090
	DefaultMetricsPort       = 9105
)

// GetDefaultConfig returns the built-in configuration used before any user
// or project file is layered on top.
func GetDefaultConfig() Config {
	return Config{
		Detection: DetectionConfig{
			Endpoint:       DefaultDetectionEndpoint,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Catalog: CatalogConfig{},
		Server: ServerConfig{
			Host:        DefaultServerHost,
			Port:        DefaultServerPort,
			MetricsPort: DefaultMetricsPort,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
