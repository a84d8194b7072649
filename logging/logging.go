// Package logging builds the slog.Logger handed to vt.Core.SetDiagnostics.
// The core treats diagnostics as strictly optional, so callers that don't
// pass a -debuglog get a logger that costs nothing per call.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// See https://github.com/golang/go/issues/62005 for details about why
// we have this. When that issue is closed, we should be able to use
// slog's built in discard handler.
type discardHandler struct {
	slog.JSONHandler
}

func (d *discardHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

// New builds a diagnostics logger. An empty logfile yields a logger whose
// Enabled always returns false, so vt's ignored-parameter and
// ignored-escape call sites don't pay for formatting when nobody's
// watching. A non-empty logfile is truncated and opened for text-handler
// output at the given level.
func New(logfile string, level slog.Level) (*slog.Logger, error) {
	if logfile == "" {
		return slog.New(&discardHandler{}), nil
	}

	f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("couldn't open logfile %q: %v", logfile, err)
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), nil
}
