package cli

import (
	"context"
	"fmt"

	"github.com/mvillan/patterndrill/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage account profiles",
	}

	cmd.AddCommand(
		newAccountAddCmd(app),
		newAccountListCmd(app),
	)

	return cmd
}

func newAccountAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a named account profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Accounts.Create(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created account %s\n", a.Name)
			return nil
		},
	}
}

func newAccountListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List account profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := app.Accounts.List(context.Background())
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				fmt.Println("No accounts yet.")
				return nil
			}
			for _, a := range accounts {
				marker := "  "
				if a.Name == app.AccountName {
					marker = formatter.StyleGreen.Render("* ")
				}
				fmt.Printf("%s%s %s\n", marker, a.Name, formatter.Dim(a.CreatedAt.Format("2006-01-02")))
			}
			return nil
		},
	}
}
