package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ajayparihar/thicklines/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(20)
)

// newInfoCmd builds the info command: print the effective configuration.
func newInfoCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the effective session configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			var b strings.Builder
			b.WriteString(titleStyle.Render("thicklines session defaults"))
			b.WriteString("\n")
			row := func(k string, v any) {
				fmt.Fprintf(&b, "%s %v\n", keyStyle.Render(k), v)
			}
			row("undo limit", cfg.UndoLimit)
			row("command cap", cfg.CommandCap)
			row("coalesce window", fmt.Sprintf("%.0f ms", cfg.CoalesceWindowMs))
			row("pen size", cfg.PenSize)
			row("eraser size", cfg.EraserSize)
			row("background", cfg.Background)
			row("color", cfg.Color)
			row("rulers", cfg.Rulers)

			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "session config (TOML)")
	return cmd
}
