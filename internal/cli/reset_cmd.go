package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all completion state for the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			account, err := app.account(ctx)
			if err != nil {
				return err
			}

			if !force {
				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Clear all progress for %q?", account.Name)).
						Description("This discards the whole completion map.").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return fmt.Errorf("reading confirmation: %w", err)
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if _, err := app.Progress.BulkReplace(ctx, account.ID, domain.CompletionMap{}); err != nil {
				return err
			}
			fmt.Printf("Cleared progress for %s\n", account.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
