// Package search answers free-text queries over the local action sections,
// the connector library and the template catalog.
package search

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-palette/pkg/catalog"
	"github.com/mattsolo1/grove-palette/pkg/models"
)

// PathSeparator joins a section and subgroup in a match path.
const PathSeparator = " › "

// Match is one local action hit.
type Match struct {
	Action string `json:"action"`
	Path   string `json:"path"`
	Icon   string `json:"icon,omitempty"`
	Color  string `json:"color,omitempty"`
}

// LocalGroup holds the hits of one top-level tab, sorted by action name.
type LocalGroup struct {
	Tab     models.Tab `json:"tab"`
	Label   string     `json:"label"`
	Matches []Match    `json:"matches"`
}

// Results is the answer to one query against one corpus.
type Results struct {
	Query     string            `json:"query"`
	Corpus    models.Corpus     `json:"corpus"`
	Local     []LocalGroup      `json:"local,omitempty"`
	Library   []models.App      `json:"library,omitempty"`
	Templates []models.Template `json:"templates,omitempty"`
}

// Count returns the number of hits in the corpus searched.
func (r Results) Count() int {
	switch r.Corpus {
	case models.CorpusLibrary:
		return len(r.Library)
	case models.CorpusTemplates:
		return len(r.Templates)
	default:
		n := 0
		for _, g := range r.Local {
			n += len(g.Matches)
		}
		return n
	}
}

// Engine searches a catalog. It holds no mutable state.
type Engine struct {
	store  *catalog.Store
	logger *logrus.Entry
}

// NewEngine creates an engine over store. A nil logger discards output.
func NewEngine(store *catalog.Store, logger *logrus.Entry) *Engine {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = logrus.NewEntry(l)
	}
	return &Engine{store: store, logger: logger.WithField("component", "search")}
}

// Search runs query against corpus. Unknown corpora search locally.
func (e *Engine) Search(query string, corpus models.Corpus, opts ...Option) Results {
	o := buildOptions(opts)
	res := Results{Query: query, Corpus: corpus}

	switch corpus {
	case models.CorpusLibrary:
		res.Library = e.library(query, o)
	case models.CorpusTemplates:
		res.Templates = e.templates(query, o)
	default:
		res.Corpus = models.CorpusLocal
		res.Local = e.local(query, o)
	}

	e.logger.WithFields(logrus.Fields{
		"query":  query,
		"corpus": res.Corpus,
		"count":  res.Count(),
	}).Debug("Search completed")
	return res
}

// local scans every section and subgroup of the five action tabs. Groups keep
// the fixed tab order; empty groups are dropped. An action found in several
// places within a tab is listed once, under the path that sorts first.
func (e *Engine) local(query string, o *searchOptions) []LocalGroup {
	var groups []LocalGroup
	for _, tab := range models.ActionTabs {
		sections := e.store.Sections(tab)
		if tab == models.TabApps {
			sections = append(sections, e.store.InstalledSections(o.installed)...)
		}

		var matches []Match
		for _, sec := range sections {
			for _, item := range sec.Items {
				if catalog.ContainsFold(item, query) {
					matches = append(matches, Match{Action: item, Path: sec.Category, Icon: sec.Icon, Color: sec.Color})
				}
			}
			for _, sg := range sec.Subgroups {
				for _, item := range sg.Items {
					if catalog.ContainsFold(item, query) {
						matches = append(matches, Match{
							Action: item,
							Path:   sec.Category + PathSeparator + sg.Name,
							Icon:   sec.Icon,
							Color:  sec.Color,
						})
					}
				}
			}
		}
		if len(matches) == 0 {
			continue
		}

		sort.SliceStable(matches, func(i, j int) bool {
			if c := catalog.Compare(matches[i].Action, matches[j].Action); c != 0 {
				return c < 0
			}
			return catalog.Less(matches[i].Path, matches[j].Path)
		})
		groups = append(groups, LocalGroup{Tab: tab, Label: tab.Label(), Matches: dedupe(matches)})
	}
	return groups
}

// dedupe keeps the first match of each action name. matches must be sorted
// by action.
func dedupe(matches []Match) []Match {
	out := matches[:0]
	for _, m := range matches {
		if len(out) > 0 && out[len(out)-1].Action == m.Action {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (e *Engine) library(query string, o *searchOptions) []models.App {
	installed := make(map[string]bool, len(o.installed))
	for _, id := range o.installed {
		installed[id] = true
	}

	var categoryIDs map[string]bool
	if len(o.categories) > 0 {
		categoryIDs = make(map[string]bool)
		for _, label := range o.categories {
			if id, ok := e.store.AppCategoryID(label); ok {
				categoryIDs[id] = true
			}
		}
	}

	var out []models.App
	for _, app := range e.store.Apps() {
		if !catalog.ContainsFold(app.Name, query) && !catalog.ContainsFold(app.Description, query) {
			continue
		}
		if categoryIDs != nil && !categoryIDs[app.Category] {
			continue
		}
		app.Installed = installed[app.ID]
		out = append(out, app)
	}

	switch o.sort {
	case models.SortAlpha:
		sort.SliceStable(out, func(i, j int) bool { return lessMissingLast(out[i].Name, out[j].Name) })
	case models.SortDateAdded:
		sort.SliceStable(out, func(i, j int) bool {
			ti, okI := out[i].AddedAt()
			tj, okJ := out[j].AddedAt()
			if okI != okJ {
				return okI
			}
			return okI && ti.After(tj)
		})
	}
	return out
}

func (e *Engine) templates(query string, o *searchOptions) []models.Template {
	var out []models.Template
	for _, tpl := range e.store.Templates() {
		if !catalog.ContainsFold(tpl.Title, query) && !catalog.ContainsFold(tpl.Description, query) {
			continue
		}
		if !facetMatch(tpl, o.categories, o.authors) {
			continue
		}
		out = append(out, tpl)
	}

	if o.sort == models.SortAlpha {
		sort.SliceStable(out, func(i, j int) bool { return lessMissingLast(out[i].Title, out[j].Title) })
	}
	return out
}

// facetMatch passes a template that mentions any selected category keyword or
// was written by any selected author. With no facets selected all pass.
// Templates without an author never match the author facet.
func facetMatch(tpl models.Template, categories, authors []string) bool {
	if len(categories) == 0 && len(authors) == 0 {
		return true
	}
	for _, cat := range categories {
		if cat == "" {
			continue
		}
		if catalog.ContainsFold(tpl.Title, cat) || catalog.ContainsFold(tpl.Description, cat) {
			return true
		}
	}
	if tpl.Author != "" {
		for _, a := range authors {
			if a == tpl.Author {
				return true
			}
		}
	}
	return false
}

// lessMissingLast sorts alphabetically with empty values after all others.
func lessMissingLast(a, b string) bool {
	if a == "" || b == "" {
		return a != "" && b == ""
	}
	return catalog.Less(a, b)
}
