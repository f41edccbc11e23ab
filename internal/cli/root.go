package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/trapgrid/internal/config"
	"github.com/alexanderramin/trapgrid/internal/editor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrNotInteractive is returned when the TUI is started without a terminal.
var ErrNotInteractive = errors.New("interactive terminal required (use `trapgrid replay` for scripts)")

// ErrLogToTerminal is returned when the TUI is asked to log events to stderr.
var ErrLogToTerminal = errors.New("event logging in the TUI needs --log-file")

// App holds process-level dependencies shared by all commands.
type App struct {
	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means yes.
	IsInteractive func() bool

	// Stderr receives event logs when no log file is configured.
	Stderr io.Writer
}

func (a *App) interactive() bool {
	return a.IsInteractive == nil || a.IsInteractive()
}

// flagOverrides are the command-line settings that win over environment config.
type flagOverrides struct {
	logFile   string
	logEvents bool
	noMouse   bool
}

func (f *flagOverrides) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.logFile, "log-file", "", "Write editor events to this file")
	fs.BoolVar(&f.logEvents, "log-events", false, "Log every editor event")
	fs.BoolVar(&f.noMouse, "no-mouse", false, "Disable mouse input")
}

func (f *flagOverrides) apply(fs *pflag.FlagSet, cfg config.Config) config.Config {
	if fs.Changed("log-file") {
		cfg.LogFile = f.logFile
		cfg.LogEvents = true
	}
	if fs.Changed("log-events") {
		cfg.LogEvents = f.logEvents
	}
	if f.noMouse {
		cfg.Mouse = false
	}
	return cfg
}

// NewRootCmd creates the top-level "trapgrid" command. Run without a
// subcommand it opens the interactive board editor.
func NewRootCmd(app *App) *cobra.Command {
	var flags flagOverrides

	root := &cobra.Command{
		Use:   "trapgrid",
		Short: "Grid planner for bear traps, cities, banners and trains",
		Long: `Place markers on a 30x30 grid, drag them around, rename them and
erase them. Keys 1-5 pick a marker or the drag tool, e selects erase,
right-click renames, the mouse wheel zooms.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.apply(cmd.Flags(), app.Config)
			return runTUI(app, cfg)
		},
	}
	flags.register(root.PersistentFlags())

	root.AddCommand(newReplayCmd(app, &flags))

	return root
}

// openObserver builds the event observer for cfg. The returned close
// function is never nil.
func openObserver(cfg config.Config, stderr io.Writer) (editor.Observer, func() error, error) {
	noop := func() error { return nil }
	if !cfg.LogEvents {
		return editor.NoopObserver{}, noop, nil
	}
	if cfg.LogFile == "" {
		if stderr == nil {
			stderr = os.Stderr
		}
		return editor.NewLogObserver(stderr), noop, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("opening event log: %w", err)
	}
	return editor.NewLogObserver(f), f.Close, nil
}

func runTUI(app *App, cfg config.Config) error {
	if !app.interactive() {
		return ErrNotInteractive
	}
	if cfg.LogEvents && cfg.LogFile == "" {
		return ErrLogToTerminal
	}

	observer, closeLog, err := openObserver(cfg, app.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(newAppModel(cfg, observer), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
