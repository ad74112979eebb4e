package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mvillan/patterndrill/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and toggle questions interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse requires an interactive terminal")
			}

			ctx := context.Background()
			account, err := app.account(ctx)
			if err != nil {
				return err
			}
			m, err := app.Progress.Get(ctx, account.ID)
			if err != nil {
				return err
			}

			model := tui.New(app.Catalog, app.Reconciler, app.Progress, account, m)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
