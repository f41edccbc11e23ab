package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/trapgrid/internal/cli"
	"github.com/alexanderramin/trapgrid/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Config: config.Load(),
		Stderr: os.Stderr,
	}

	// The editor needs a real terminal; scripts go through `trapgrid replay`.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
