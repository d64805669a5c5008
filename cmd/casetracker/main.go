package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/casetracker/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config, logger and loader are resolved from flags once cobra has
	// parsed them; see App.setup.
	app := &cli.App{}

	// Detect interactive terminal: the bare command opens the board UI only
	// when a person is at the keyboard, and prints otherwise.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
