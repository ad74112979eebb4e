package cli

import (
	"context"
	"fmt"

	"github.com/mvillan/patterndrill/internal/cli/formatter"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// filterFlag is a pflag.Value accepting "solo" or "hybrid".
type filterFlag struct {
	id domain.FilterID
}

var _ pflag.Value = (*filterFlag)(nil)

func (f *filterFlag) String() string { return string(f.id) }

func (f *filterFlag) Set(v string) error {
	switch domain.FilterID(v) {
	case domain.FilterSolo, domain.FilterHybrid:
		f.id = domain.FilterID(v)
		return nil
	}
	return fmt.Errorf("unknown filter %q (want solo or hybrid)", v)
}

func (f *filterFlag) Type() string { return "filter" }

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle TITLE...",
		Short: "Flip completion for one or more question titles",
		Long: `Flip the completed state of each given question title.

Titles are matched exactly and case-sensitively; a title the catalog does
not contain is still recorded, since the store does not validate catalog
membership.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			account, err := app.account(ctx)
			if err != nil {
				return err
			}

			for _, title := range args {
				result, err := app.Progress.Toggle(ctx, account.ID, title)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s\n", formatter.Checkbox(result.Completed), result.Question)
			}
			return nil
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	var filter filterFlag

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show overall and recommended-study progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			account, err := app.account(ctx)
			if err != nil {
				return err
			}
			overview, err := app.Stats.Overview(ctx, account)
			if err != nil {
				return err
			}
			if filter.id != "" {
				kept := overview.Filters[:0]
				for _, f := range overview.Filters {
					if f.Filter == filter.id {
						kept = append(kept, f)
					}
				}
				overview.Filters = kept
			}
			fmt.Println(formatter.FormatStats(overview))
			return nil
		},
	}

	cmd.Flags().Var(&filter, "filter", "Limit the filter breakdown to solo or hybrid")

	return cmd
}
