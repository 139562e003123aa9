package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajayparihar/thicklines"
	"github.com/ajayparihar/thicklines/internal/config"
)

// newRenderCmd builds the render command: replay a stroke script into a
// headless session and write the exported composite.
func newRenderCmd() *cobra.Command {
	var (
		scriptPath string
		outPath    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Replay a stroke script and write the composite as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			start := time.Now()

			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			sc, err := LoadScript(scriptPath)
			if err != nil {
				return err
			}

			s := thicklines.NewSession(sc.Width, sc.Height,
				thicklines.WithDPR(sc.DPR),
				thicklines.WithUndoLimit(cfg.UndoLimit),
				thicklines.WithCommandCap(cfg.CommandCap),
				thicklines.WithCoalesceWindow(cfg.CoalesceWindowMs),
				thicklines.WithPenSize(cfg.PenSize),
				thicklines.WithEraserSize(cfg.EraserSize),
				thicklines.WithBackground(thicklines.Hex(cfg.Background)),
				thicklines.WithColor(thicklines.Hex(cfg.Color)),
				thicklines.WithRulers(cfg.Rulers),
				thicklines.WithNotifier(func(msg string) {
					logger.Warn(msg)
				}),
			)

			if err := sc.Replay(s); err != nil {
				return err
			}

			blob, err := s.ExportComposite()
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, blob, 0o644); err != nil {
				return fmt.Errorf("render: write %s: %w", outPath, err)
			}

			logger.Infof("Rendered %d steps to %s (%s)",
				len(sc.Steps), outPath, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "stroke script (TOML)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "out.png", "output PNG path")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "session config (TOML)")
	cmd.MarkFlagRequired("script")

	return cmd
}
