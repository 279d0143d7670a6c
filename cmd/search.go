package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/search"
	"github.com/mattsolo1/grove-palette/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var (
		corpus     string
		sortMode   string
		categories []string
		authors    []string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search actions, connectors or templates",
		Long: `Search one corpus for the query. Matching is a case-insensitive substring
match; an empty query lists the whole corpus.

Examples:
  pal search excel                            # Local actions, grouped by tab
  pal search mail --corpus library --sort date-added
  pal search --corpus templates --author "Flow Team"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			query := strings.Join(args, " ")

			c := models.Corpus(corpus)
			if !c.Valid() {
				return fmt.Errorf("unknown corpus %q (want local, library or templates)", corpus)
			}

			var opts []search.Option
			if sortMode != "" {
				mode := models.SortMode(sortMode)
				switch mode {
				case models.SortPopular, models.SortAlpha, models.SortDateAdded:
				default:
					return fmt.Errorf("unknown sort mode %q", sortMode)
				}
				opts = append(opts, search.SortedBy(mode))
			}
			if cats := splitList(categories); len(cats) > 0 {
				opts = append(opts, search.InCategories(cats...))
			}
			if len(authors) > 0 {
				opts = append(opts, search.ByAuthors(authors...))
			}

			res, err := s.Search(query, c, opts...)
			if err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			out := cmd.OutOrStdout()
			if res.Count() == 0 {
				fmt.Fprintf(out, "No results found for %q\n", query)
				return nil
			}
			switch res.Corpus {
			case models.CorpusLibrary:
				printApps(out, res.Library)
			case models.CorpusTemplates:
				printTemplates(out, res.Templates)
			default:
				printLocal(out, s, res.Local)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&corpus, "corpus", "c", string(models.CorpusLocal), "Corpus to search (local, library, templates)")
	cmd.Flags().StringVar(&sortMode, "sort", "", "Sort library and template results (popular, a-z, date-added)")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Restrict to categories (repeatable)")
	cmd.Flags().StringArrayVar(&authors, "author", nil, "Restrict templates to authors (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	return cmd
}

func printLocal(w io.Writer, s *service.Service, groups []search.LocalGroup) {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", g.Label, len(g.Matches))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, m := range g.Matches {
			premium := ""
			if s.IsPremiumConnectorAction(m.Action) {
				premium = "premium"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", m.Action, m.Path, premium)
		}
		tw.Flush()
	}
}

func printApps(w io.Writer, apps []models.App) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPREMIUM\tINSTALLED\tDESCRIPTION")
	for _, app := range apps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			app.ID,
			app.Name,
			app.Category,
			yesNo(app.Premium),
			yesNo(app.Installed),
			truncateString(app.Description, 50),
		)
	}
	tw.Flush()
}

func printTemplates(w io.Writer, templates []models.Template) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tDESCRIPTION")
	for _, tpl := range templates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			tpl.ID,
			truncateString(tpl.Title, 40),
			tpl.Author,
			truncateString(tpl.Description, 50),
		)
	}
	tw.Flush()
}
