package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mvillan/patterndrill/internal/catalog"
	"github.com/mvillan/patterndrill/internal/cli"
	"github.com/mvillan/patterndrill/internal/db"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/reconcile"
	"github.com/mvillan/patterndrill/internal/repository"
	"github.com/mvillan/patterndrill/internal/service"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.patterndrill/patterndrill.db
	dbPath := os.Getenv("PATTERNDRILL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".patterndrill", "patterndrill.db")
	}
	// Services need the catalog before cobra parses flags, so --catalog is
	// pre-scanned here; the root command re-registers it for help and
	// validation.
	pre := pflag.NewFlagSet("pre", pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.SetOutput(io.Discard)
	pre.Usage = func() {}
	catalogPath := pre.String("catalog", os.Getenv("PATTERNDRILL_CATALOG"), "")
	_ = pre.Parse(os.Args[1:])

	// Load the catalog: an external file overrides the embedded default.
	cat, warnings, err := loadCatalog(*catalogPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	accountRepo := repository.NewSQLiteAccountRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	reconciler := reconcile.New(cat)

	accountName := os.Getenv("PATTERNDRILL_ACCOUNT")
	if accountName == "" {
		accountName = "default"
	}

	app := &cli.App{
		Accounts: service.NewAccountService(accountRepo),
		Progress: service.NewProgressService(progressRepo, uow),
		Stats:    service.NewStatsService(reconciler, cat, progressRepo),

		Catalog:     cat,
		Reconciler:  reconciler,
		AccountName: accountName,
	}

	// Detect interactive terminal for the browse entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func loadCatalog(path string) (*domain.Catalog, []catalog.Warning, error) {
	if path != "" {
		cat, warnings, err := catalog.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading catalog %s: %w", path, err)
		}
		return cat, warnings, nil
	}
	cat, warnings, err := catalog.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("loading embedded catalog: %w", err)
	}
	return cat, warnings, nil
}
