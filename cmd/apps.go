package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-palette/pkg/catalog"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/service"
)

// NewAppsCmd creates the `pal apps` command group.
func NewAppsCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "Manage connector apps",
	}

	cmd.AddCommand(newAppsListCmd(svc))
	cmd.AddCommand(newAppsShowCmd(svc))
	cmd.AddCommand(newAppsInstallCmd(svc))
	cmd.AddCommand(newAppsUninstallCmd(svc))

	return cmd
}

func newAppsListCmd(svc **service.Service) *cobra.Command {
	var (
		installedOnly bool
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connectors in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			var apps []models.App
			if installedOnly {
				var err error
				if apps, err = s.InstalledApps(); err != nil {
					return err
				}
			} else {
				res, err := s.Search("", models.CorpusLibrary)
				if err != nil {
					return err
				}
				apps = res.Library
			}

			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), apps)
			}
			if len(apps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No apps installed")
				return nil
			}
			printApps(cmd.OutOrStdout(), apps)
			return nil
		},
	}

	cmd.Flags().BoolVar(&installedOnly, "installed", false, "Only list installed connectors, in install order")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newAppsShowCmd(svc **service.Service) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a connector and the actions it adds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			app, ok := s.Catalog.App(args[0])
			if !ok {
				return fmt.Errorf("app %q not found", args[0])
			}
			section := catalog.AppSection(app)

			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), struct {
					App     models.App           `json:"app"`
					Section models.ActionSection `json:"section"`
				}{app, section})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", app.Name, app.ID)
			fmt.Fprintf(out, "Category:  %s\n", app.Category)
			fmt.Fprintf(out, "Premium:   %s\n", yesNo(app.Premium))
			if app.DateAdded != "" {
				fmt.Fprintf(out, "Added:     %s\n", app.DateAdded)
			}
			fmt.Fprintf(out, "\n%s\n\nActions:\n", app.Description)
			for _, item := range section.Items {
				fmt.Fprintf(out, "  %s\n", item)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newAppsInstallCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "install <id>...",
		Short: "Install connectors so their actions appear under Connectors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			for _, id := range args {
				if err := s.Install(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", id)
			}
			return nil
		},
	}
}

func newAppsUninstallCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall <id>...",
		Aliases: []string{"rm"},
		Short:   "Uninstall connectors",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			for _, id := range args {
				if err := s.Uninstall(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Uninstalled %s\n", id)
			}
			return nil
		},
	}
}
