// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	phosphobot "github.com/phosphobot/go-phosphobot"
)

// slogAdapter bridges the library Logger interface onto slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (s *slogAdapter) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	s.logger.DebugContext(ctx, msg, keysAndValues...)
}

func (s *slogAdapter) Info(ctx context.Context, msg string, keysAndValues ...any) {
	s.logger.InfoContext(ctx, msg, keysAndValues...)
}

func (s *slogAdapter) Warn(ctx context.Context, msg string, keysAndValues ...any) {
	s.logger.WarnContext(ctx, msg, keysAndValues...)
}

func (s *slogAdapter) Error(ctx context.Context, msg string, keysAndValues ...any) {
	s.logger.ErrorContext(ctx, msg, keysAndValues...)
}

// newLogger returns the CLI logger: colored slog output on stderr, debug
// level when verbose, warnings and errors otherwise.
func newLogger(verbose bool) phosphobot.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})
	return &slogAdapter{logger: slog.New(handler)}
}
