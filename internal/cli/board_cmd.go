package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/casetracker/internal/board"
	"github.com/alexanderramin/casetracker/internal/cli/formatter"
	"github.com/alexanderramin/casetracker/internal/notice"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const printWidth = 80

func newBoardCmd(app *App) *cobra.Command {
	var expand bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the phase board once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBoard(cmd, app, expand)
		},
	}

	cmd.Flags().BoolVar(&expand, "expand", false, "print every case as an expanded card")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one case as an expanded card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _ := loadWithSpinner(cmd, app)
			c, err := findCase(b, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCard(c, formatter.CardOptions{
				Expanded: true,
				Width:    printWidth,
			}))
			return nil
		},
	}
}

func newNoticeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notice <id>",
		Short: "Draft the scheduling notice for a case's client",
		Long: "Drafts the deposition (Discovery) or mediation (Settlement Discussion)\n" +
			"notice for the case's client. Nothing is sent.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _ := loadWithSpinner(cmd, app)
			c, err := findCase(b, args[0])
			if err != nil {
				return err
			}
			n, ok := notice.Draft(c)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("No client notice for the %s phase.", c.LitigationPhase)))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), n.String())
			return nil
		},
	}
}

func printBoard(cmd *cobra.Command, app *App, expand bool) error {
	b, ok := loadWithSpinner(cmd, app)
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoard(b.Columns(), formatter.BoardOptions{
		Expanded:   expand,
		Width:      printWidth,
		LoadFailed: !ok,
	}))
	return nil
}

// loadWithSpinner loads the board, animating a spinner on stderr when it is
// a terminal.
func loadWithSpinner(cmd *cobra.Command, app *App) (*board.Board, bool) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f, isFile := cmd.ErrOrStderr().(*os.File); isFile && isatty.IsTerminal(f.Fd()) {
		stop := formatter.StartSpinner(f, "Loading cases...")
		defer stop()
	}
	return app.loadBoard(ctx)
}
