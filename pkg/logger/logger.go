// Package logger provides the structured, levelled logger used across
// pharmadesk, built on log/slog.
//
// In production (APP_ENV=production) log lines are JSON for aggregators;
// everywhere else they are human-readable text at DEBUG level:
//
//	logger.Info("products loaded", "count", len(products))
//	// → time=... level=INFO msg="products loaded" count=42
package logger

import (
	"log/slog"
	"os"

	"github.com/pharmadesk/pharmadesk/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// With returns a logger pre-tagged with the given attributes, so every
// line from one screen or request carries its identifying fields.
func With(args ...any) *slog.Logger { return L.With(args...) }

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
