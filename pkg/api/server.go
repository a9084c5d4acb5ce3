package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/astfn/as-enum/pkg/catalog"
	"github.com/astfn/as-enum/pkg/logging"
	"github.com/astfn/as-enum/pkg/server"
)

const (
	name           = "asenumd"
	versionDefault = "dev"

	// EnvPresets lists the preset sources served, comma-separated.
	EnvPresets = "ASENUM_PRESETS"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/astfn/as-enum/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve loads the presets named by ASENUM_PRESETS, starts the API server
// and blocks until shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	sources := parseSources(os.Getenv(EnvPresets))
	if len(sources) == 0 {
		slog.Warn("no presets configured", "env", EnvPresets)
	}

	cat := catalog.New()
	if err := cat.LoadPresets(ctx, sources...); err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}
	cat.Seal()

	h := NewHandler(cat, WithVersion(version))

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// parseSources splits a comma-separated list, dropping blanks.
func parseSources(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
