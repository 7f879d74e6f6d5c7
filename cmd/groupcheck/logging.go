package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const redactedPlaceholder = "[redacted]"

// newLogger returns a slog.Logger writing to w. format is "text" or "json";
// level is one of debug, info, warn and error.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if level == "" {
		level = "info"
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// redacted marks attributes whose value was intentionally left out.
func redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// exponentAttr logs the exponents of a vector, or a placeholder unless
// reveal is set.
func exponentAttr(exponents []string, reveal bool) slog.Attr {
	if !reveal {
		return redacted("exponents")
	}
	return slog.Any("exponents", exponents)
}
