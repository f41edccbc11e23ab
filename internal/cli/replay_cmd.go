package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/trapgrid/internal/cli/formatter"
	"github.com/alexanderramin/trapgrid/internal/editor"
	"github.com/alexanderramin/trapgrid/internal/script"
	"github.com/alexanderramin/trapgrid/internal/viewport"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *App, flags *flagOverrides) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Apply an event script to an empty board and print the result",
		Long: `Reads an event script from the file argument, or from stdin when no
file (or "-") is given, applies it to a fresh board and prints the board,
the marker table and the final tool and zoom.

Script lines:
  key <1-5|e>
  press <x> <y>
  release <x> <y>
  click <x> <y>
  rename <x> <y> [label|!cancel]
  wheel <up|down>
  cancel

Coordinates are canvas pixels; with the default 20px cells, pixel
(105, 45) is row 2, column 5.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.apply(cmd.Flags(), app.Config)

			in, closeIn, err := openScript(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			stderr := app.Stderr
			if stderr == nil {
				stderr = cmd.ErrOrStderr()
			}
			observer, closeLog, err := openObserver(cfg, stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			ed := editor.New(
				editor.WithTransform(viewport.New(cfg.CellPx)),
				editor.WithObserver(observer),
			)
			if err := script.Run(ed, in); err != nil {
				return fmt.Errorf("replaying script: %w", err)
			}

			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, formatter.FormatObjects(ed.Board().All()))
				return nil
			}
			fmt.Fprint(out, formatter.FormatSummary(ed.Plan(), ed.Board().All(), ed.Mode(), ed.Transform().Scale()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the marker table")
	return cmd
}

func openScript(cmd *cobra.Command, args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening script: %w", err)
	}
	return f, f.Close, nil
}
