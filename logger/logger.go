// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Setup installs the global structured logger.
// Production, or any run whose stdout is not a terminal, logs JSON at info;
// an interactive development run logs text at debug.
func Setup(production bool) {
	slog.SetDefault(New(os.Stdout, production || !isatty.IsTerminal(os.Stdout.Fd())))
}

// New builds a logger writing to w
func New(w io.Writer, json bool) *slog.Logger {
	if json {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
