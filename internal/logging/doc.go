// Package logging provides structured logging for the fndeploy CLI using slog.
//
// The package supports text and JSON output, a verbosity-count to level
// mapping for the -v flag, and helpers for testing. Text output is
// colorized when stderr is a terminal that supports it.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//	})
//	logger.Info("deploying", "folder", "orders")
//
// # Testing
//
// Use [ForTest] to route log output through the testing framework:
//
//	logger := logging.ForTest(t)
package logging
