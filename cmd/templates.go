package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/search"
	"github.com/mattsolo1/grove-palette/pkg/service"
)

func NewTemplatesCmd(svc **service.Service) *cobra.Command {
	var (
		categories []string
		authors    []string
		sortMode   string
		facets     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "templates [query]",
		Short: "Browse prebuilt flow templates",
		Long: `List templates, optionally filtered by a query and by category or author
facets. A template passes the facets when it matches any selected category
keyword or any selected author.

Examples:
  pal templates invoice
  pal templates --category Finance --author "Flow Team"
  pal templates --facets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			out := cmd.OutOrStdout()

			if facets {
				cats := s.Catalog.TemplateCategories()
				auths := s.Catalog.TemplateAuthors()
				if jsonOutput {
					return outputJSON(out, struct {
						Categories []models.TemplateCategory `json:"categories"`
						Authors    []string                  `json:"authors"`
					}{cats, auths})
				}
				fmt.Fprintln(out, "Categories:")
				for _, c := range cats {
					fmt.Fprintf(out, "  %s\n", c.Label)
				}
				fmt.Fprintln(out, "Authors:")
				for _, a := range auths {
					fmt.Fprintf(out, "  %s\n", a)
				}
				return nil
			}

			var opts []search.Option
			switch mode := models.SortMode(sortMode); mode {
			case "":
			case models.SortPopular, models.SortAlpha:
				opts = append(opts, search.SortedBy(mode))
			default:
				return fmt.Errorf("unknown sort mode %q (want popular or a-z)", sortMode)
			}
			if cats := splitList(categories); len(cats) > 0 {
				opts = append(opts, search.InCategories(cats...))
			}
			if len(authors) > 0 {
				opts = append(opts, search.ByAuthors(authors...))
			}

			templates := s.Templates(strings.Join(args, " "), opts...)
			if jsonOutput {
				return outputJSON(out, templates)
			}
			if len(templates) == 0 {
				fmt.Fprintln(out, "No templates found")
				return nil
			}
			printTemplates(out, templates)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "Restrict to template categories (repeatable)")
	cmd.Flags().StringArrayVar(&authors, "author", nil, "Restrict to authors (repeatable)")
	cmd.Flags().StringVar(&sortMode, "sort", "", "Sort order (popular, a-z)")
	cmd.Flags().BoolVar(&facets, "facets", false, "List the available categories and authors")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
