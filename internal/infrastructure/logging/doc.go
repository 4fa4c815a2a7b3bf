// Package logging provides structured logging for featuregate.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the CLI and its loaders.
//
// # Features
//
//   - JSON output for machine consumption
//   - Text output for interactive debugging (default)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stderr"   # stdout, stderr
//
// Logs go to stderr by default because stdout carries command output.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("registry built", "roles", reg.Len())
package logging
