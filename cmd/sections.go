package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-palette/pkg/filter"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/service"
	"github.com/mattsolo1/grove-palette/pkg/sidebar"
)

func NewSectionsCmd(svc **service.Service) *cobra.Command {
	var (
		filters    string
		favorites  []string
		expand     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "sections [tab]",
		Short: "Print the sections of a sidebar tab",
		Long: `Print the action sections shown under a navigation tab.

Tabs: favorites, apps, logic, interaction, files, advanced.

Examples:
  pal sections apps                     # Connectors, installed apps included
  pal sections files --filter premium   # Hide premium connector actions
  pal sections favorites --favorite "Launch Excel"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			tab := models.TabFavorites
			if len(args) == 1 {
				tab = models.Tab(args[0])
			}
			if err := s.SetActiveTab(tab); err != nil {
				return err
			}
			for _, name := range splitList(favorites) {
				s.ToggleFavorite(name)
			}

			set := filter.Parse(filters)
			for _, id := range set.IDs() {
				if !filter.Known(id) {
					return fmt.Errorf("unknown filter %q", id)
				}
			}
			s.SetFilters(set)

			secs, err := s.GetSections(tab)
			if err != nil {
				return err
			}
			if expand {
				for _, sec := range secs {
					for _, sg := range sec.Subgroups {
						if !s.Session.Expanded(sec.Category, sg.Name) {
							s.ToggleSubgroup(sec.Category, sg.Name)
						}
					}
				}
			}

			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), secs)
			}
			printRows(cmd.OutOrStdout(), s.Rows(secs))
			return nil
		},
	}

	cmd.Flags().StringVar(&filters, "filter", "", "Comma-separated filters to apply (dlp, premium)")
	cmd.Flags().StringSliceVar(&favorites, "favorite", nil, "Mark actions as favorites before printing")
	cmd.Flags().BoolVar(&expand, "expand", false, "Expand every subgroup")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output sections in JSON format")

	return cmd
}

func printRows(w io.Writer, rows []sidebar.Row) {
	for _, r := range rows {
		indent := strings.Repeat("  ", r.Indent)
		switch r.Kind {
		case sidebar.RowHeader:
			if r.Count > 0 {
				fmt.Fprintf(w, "%s (%d)\n", r.Label, r.Count)
			} else {
				fmt.Fprintln(w, r.Label)
			}
		case sidebar.RowSubgroup:
			marker := "▸"
			if r.Expanded {
				marker = "▾"
			}
			fmt.Fprintf(w, "  %s %s (%d)\n", marker, r.Label, r.Count)
		case sidebar.RowAction:
			var tags []string
			if r.Favorite {
				tags = append(tags, "★")
			}
			if r.Premium {
				tags = append(tags, "premium")
			}
			if r.Disabled {
				tags = append(tags, "disabled")
			}
			line := indent + r.Label
			if r.Path != "" {
				line += "  (" + r.Path + ")"
			}
			if len(tags) > 0 {
				line += "  [" + strings.Join(tags, ", ") + "]"
			}
			fmt.Fprintln(w, line)
		case sidebar.RowEmptyState:
			fmt.Fprintf(w, "  %s\n  %s\n", r.Label, r.Description)
		case sidebar.RowNoVisible:
			fmt.Fprintf(w, "  %s\n", r.Label)
		}
	}
}
