package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"stagefix/internal/rules"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logRules dumps the effective rule set at debug level.
func logRules(logger *slog.Logger, rs *rules.RuleSet) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	logger.Debug("effective rules", "names", rs.Names(), "dump", cfg.Sdump(rs))
}
