// Package cli implements the thicklines command-line interface.
//
// The CLI drives a headless drawing session: the render command replays a
// TOML stroke script into a session and writes the exported composite, and
// info prints the effective configuration. All commands support --verbose
// (-v) for debug-level logging via the charmbracelet/log library; the same
// logger is installed as the library's slog handler.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ajayparihar/thicklines"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type ctxKey struct{}

// withLogger attaches a logger to the context.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the context's logger, or a default one.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.New(os.Stderr)
}

// newLogger creates a logger with timestamp formatting, filtering at level.
func newLogger(level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Execute runs the thicklines CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "thicklines",
		Short:        "thicklines renders layered raster drawings from stroke scripts",
		Long:         `thicklines is the drawing core behind the Thick Lines canvas: layered raster surfaces, pressure- and velocity-adaptive strokes, pan/zoom, and snapshot undo. The CLI replays stroke scripts into a headless session.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(level)
			// Route the library's slog output through the same logger.
			thicklines.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("thicklines %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(context.Background())
}
