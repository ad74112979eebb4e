package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mvillan/patterndrill/internal/contract"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the completion map from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}
			var snapshot contract.ProgressSnapshot
			if err := json.Unmarshal(data, &snapshot); err != nil {
				return fmt.Errorf("parsing import file: %w", err)
			}
			if snapshot.CompletedQuestions == nil {
				return fmt.Errorf("import file has no completedQuestions map")
			}

			ctx := context.Background()
			account, err := app.account(ctx)
			if err != nil {
				return err
			}
			stored, err := app.Progress.BulkReplace(ctx, account.ID, snapshot.CompletedQuestions)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d entries for %s\n", len(stored), account.Name)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the completion map to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			account, err := app.account(ctx)
			if err != nil {
				return err
			}
			m, err := app.Progress.Get(ctx, account.ID)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(contract.ProgressSnapshot{CompletedQuestions: m}, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			if err := os.WriteFile(args[0], append(data, '\n'), 0644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}

			fmt.Printf("Exported %d entries to %s\n", len(m), args[0])
			return nil
		},
	}
}
