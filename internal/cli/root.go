package cli

import (
	"context"

	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/reconcile"
	"github.com/mvillan/patterndrill/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Accounts service.AccountService
	Progress service.ProgressService
	Stats    service.StatsService

	Catalog    *domain.Catalog
	Reconciler *reconcile.Reconciler

	// AccountName is the profile every command operates on; bound to the
	// persistent --account flag with the env default applied in main.
	AccountName string

	// IsInteractive reports whether stdin is a terminal; browse refuses
	// to start otherwise.
	IsInteractive func() bool
}

// account resolves the selected profile, provisioning it on first use.
func (a *App) account(ctx context.Context) (*domain.Account, error) {
	return a.Accounts.Resolve(ctx, a.AccountName)
}

// NewRootCmd creates the top-level "patterndrill" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "patterndrill",
		Short: "Interview question study tracker",
	}

	root.PersistentFlags().StringVar(&app.AccountName, "account", app.AccountName, "Account profile to operate on")
	// Consumed before command dispatch; declared here so cobra accepts it
	// and help documents it.
	root.PersistentFlags().String("catalog", "", "Catalog file overriding the embedded one")

	root.AddCommand(
		newListCmd(app),
		newToggleCmd(app),
		newStatsCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newResetCmd(app),
		newAccountCmd(app),
		newBrowseCmd(app),
	)

	return root
}
