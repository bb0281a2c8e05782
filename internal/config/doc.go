// Package config provides configuration management for cloudboard.
//
// This package implements a layered configuration system that allows users
// to customize cloudboard's behavior through YAML files. Configuration is
// loaded from multiple sources and merged in a specific order, with later
// sources overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Provides sensible defaults for all settings
//     - Ensures cloudboard works out-of-the-box
//
//  2. User Configuration (~/.config/cloudboard/config.yaml)
//     - User-specific settings that apply everywhere
//     - Useful for pointing at a private detection endpoint
//
//  3. Project Configuration (./.cloudboard/config.yaml)
//     - Settings scoped to the current directory
//     - Allows teams to share a catalog file via version control
//
// # Configuration Structure
//
// The configuration file uses YAML format with the following sections:
//
//	detection:
//	  endpoint: "https://cloud-detect.fly.dev"
//	  timeoutSeconds: 15
//
//	catalog:
//	  file: "companies.yaml"  # merged on top of the built-in seed catalog
//
//	server:
//	  host: "localhost"
//	  port: 8090
//	  baseURL: "https://board.example.com"
//	  metricsPort: 9105
//
//	logging:
//	  level: "info"  # debug, info, warn or error
//
// # Catalog Files
//
// A catalog file is a YAML list of companies:
//
//	- name: Stripe
//	  symbol: STRP
//	  domain: stripe.com
//	  provider: AWS
//
// Provider names are case-insensitive and accept common vendor aliases
// ("google cloud", "aliyun", "oci"); anything unrecognized becomes Other.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := detect.New(cfg.Detection.Endpoint, cfg.Detection.Timeout())
package config
