package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-palette/pkg/premium"
	"github.com/mattsolo1/grove-palette/pkg/service"
)

type premiumReport struct {
	Action   string `json:"action"`
	Premium  bool   `json:"premium"`
	Disabled bool   `json:"disabled"`
	ID       string `json:"id,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
	Name     string `json:"name,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
}

func NewPremiumCmd(svc **service.Service) *cobra.Command {
	var (
		listApps   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "premium [action...]",
		Short: "Explain premium classification of actions",
		Long: `Report whether each action belongs to a premium connector, which rule
matched, and whether it is disabled for the current account tier.

Examples:
  pal premium "Salesforce Create Record" "Launch Excel"
  pal premium --premium "Salesforce Create Record"   # As a premium user
  pal premium --apps                                  # List premium connectors`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			out := cmd.OutOrStdout()

			if listApps {
				apps := s.Catalog.PremiumApps()
				if jsonOutput {
					return outputJSON(out, apps)
				}
				printApps(out, apps)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("at least one action name is required")
			}

			reports := make([]premiumReport, 0, len(args))
			for _, action := range args {
				m := s.Classifier.Explain(action)
				reports = append(reports, premiumReport{
					Action:   action,
					Premium:  m.Premium(),
					Disabled: s.Session.IsDisabled(action),
					ID:       m.ID,
					Pattern:  m.Pattern,
					Name:     m.Name,
					Keyword:  m.Keyword,
				})
			}

			if jsonOutput {
				return outputJSON(out, reports)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ACTION\tPREMIUM\tDISABLED\tMATCHED")
			for _, r := range reports {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					truncateString(r.Action, 50),
					yesNo(r.Premium),
					yesNo(r.Disabled),
					describeMatch(premium.Match{ID: r.ID, Pattern: r.Pattern, Name: r.Name, Keyword: r.Keyword}),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&listApps, "apps", false, "List premium connectors instead")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func describeMatch(m premium.Match) string {
	var parts []string
	if m.ID != "" {
		parts = append(parts, "id="+m.ID)
	}
	if m.Pattern != "" {
		parts = append(parts, "pattern="+m.Pattern)
	}
	if m.Name != "" {
		parts = append(parts, "name="+m.Name)
	}
	if m.Keyword != "" {
		parts = append(parts, "keyword="+m.Keyword)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
