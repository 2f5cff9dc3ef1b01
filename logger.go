// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a host goroutine is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggchart and its host packages.
// By default ggchart produces no log output.
//
// The logger is forwarded to gg as well, so canvas and rasteriser
// diagnostics end up in the same place as binding events.
// Pass nil to restore the silent default.
//
// Log levels used by ggchart:
//   - [slog.LevelDebug]: subscription lifecycle, dropped stale invalidations
//   - [slog.LevelInfo]: typeface selection
//   - [slog.LevelWarn]: non-fatal host failures (texture upload, screen sync)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by ggchart.
// Host packages call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
