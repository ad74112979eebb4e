package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvillan/patterndrill/internal/cli/formatter"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/spf13/cobra"
)

// resolvePart accepts a full part name, a bare number ("1"), or a unique
// name fragment.
func resolvePart(catalog *domain.Catalog, input string) (*domain.Part, error) {
	if p := catalog.Part(input); p != nil {
		return p, nil
	}

	needle := strings.ToLower(strings.TrimSpace(input))
	var matches []*domain.Part
	for i := range catalog.Parts {
		name := strings.ToLower(catalog.Parts[i].Name)
		if strings.HasPrefix(name, "part "+needle+":") || strings.Contains(name, needle) {
			matches = append(matches, &catalog.Parts[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("part not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("part %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [PART]",
		Short: "Show the catalog as a checklist",
		Args:  cobra.MaximumNArgs(1),
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

			parts := app.Catalog.Parts
			if len(args) == 1 {
				p, err := resolvePart(app.Catalog, args[0])
				if err != nil {
					return err
				}
				parts = []domain.Part{*p}
			}

			for i := range parts {
				fmt.Println(formatter.FormatPartChecklist(formatter.ChecklistData{
					Part:       &parts[i],
					Completion: m,
					Reconciler: app.Reconciler,
				}))
			}
			return nil
		},
	}
}
