// Package log provides structured logging for algebralab.
//
// Package: log
// Title: algebralab Structured Logging
// Description: Leveled structured logger with immutable context clones, JSON,
//              text and console formatters, and a Timer that reports how long a
//              calculation took. Errors from foundation/core/error are logged
//              at a level derived from their severity.
// Author: algebralab team
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-03-02 v0.2.0: Dropped async buffering and user/correlation IDs, sorted field output
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText, Name: "poly"})
//	logger.Info("division finished", log.Fields{"root": "1", "exact": true})
//
//	timer := logger.StartTimer("solve")
//	defer timer.Stop()
package log
