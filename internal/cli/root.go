package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/casetracker/internal/board"
	"github.com/alexanderramin/casetracker/internal/config"
	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/alexanderramin/casetracker/internal/loader"
	"github.com/alexanderramin/casetracker/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrCaseNotFound is returned by commands addressing a case id that is not
// in the loaded collection.
var ErrCaseNotFound = errors.New("case not found")

// App holds the dependencies shared by all commands. Fields left nil are
// built from the resolved configuration before a command runs, so tests can
// inject a Loader or Logger up front.
type App struct {
	Config config.Config
	Logger *zap.Logger
	Loader loader.Loader

	// IsInteractive reports whether the default command should start the
	// board UI instead of printing.
	IsInteractive func() bool

	// RunTUI starts the interactive board. Nil uses bubbletea.
	RunTUI func(app *App) error

	closeLogger func()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "casetracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "casetracker",
		Short: "Litigation phase tracker for legal cases",
		Long: "casetracker loads the case collection once and shows it as a board with\n" +
			"one column per litigation phase. Pending cases can be approved or declined\n" +
			"from the interactive board; decisions are kept for the session only.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			tui := cmd.Parent() == nil && app.interactive()
			return app.setup(cmd, tui)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return app.runTUI()
			}
			return printBoard(cmd, app, false)
		},
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newBoardCmd(app),
		newShowCmd(app),
		newNoticeCmd(app),
		newIngestCmd(app),
		newConfigCmd(app),
	)

	return root
}

// setup resolves configuration and fills in the dependencies the caller
// did not provide. The interactive board logs to a file so log lines never
// land on top of the UI.
func (a *App) setup(cmd *cobra.Command, tui bool) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.Config = cfg

	if a.Logger == nil {
		opts := logging.Options{Level: cfg.LogLevel, File: cfg.LogFile}
		if tui && opts.File == "" {
			opts.File = logging.DefaultTUIFile()
		}
		logger, err := logging.New(opts)
		if err != nil {
			return err
		}
		a.Logger = logger
		a.closeLogger = func() { _ = logger.Sync() }
	}

	if a.Loader == nil {
		a.Loader = loader.New(loader.Config{
			Source:   cfg.Source,
			Timeout:  cfg.LoadTimeout,
			Observer: loader.NewZapObserver(a.Logger),
		})
	}
	return nil
}

func (a *App) teardown() {
	if a.closeLogger != nil {
		a.closeLogger()
		a.closeLogger = nil
	}
}

func (a *App) runTUI() error {
	if a.RunTUI != nil {
		return a.RunTUI(a)
	}
	return runProgram(a)
}

// loadBoard performs the one load of a printed command. A failed load is
// logged by the loader's observer and yields an empty board, never an error.
func (a *App) loadBoard(ctx context.Context) (*board.Board, bool) {
	b := board.New(nil)
	cases, err := a.Loader.Load(ctx)
	if err != nil {
		return b, false
	}
	b.Replace(cases)
	return b, true
}

// findCase resolves a command-line id against the loaded board.
func findCase(b *board.Board, arg string) (domain.Case, error) {
	c, ok := b.LookupText(arg)
	if !ok {
		return domain.Case{}, fmt.Errorf("%w: %s", ErrCaseNotFound, arg)
	}
	return c, nil
}
