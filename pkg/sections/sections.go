// Package sections composes catalog data into the section lists shown for
// each navigation tab.
package sections

import (
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-palette/pkg/catalog"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/search"
)

const (
	RecentlyUsedCategory    = "Recently Used"
	FavoriteActionsCategory = "Favorite Actions"
)

// RecentlyUsedEmpty is shown when nothing has been used yet this session.
var RecentlyUsedEmpty = models.EmptyState{
	Icon:        "History",
	Title:       "No recent actions",
	Description: "Actions you use will appear here",
}

// FavoritesEmpty is shown in place of grouped favorites when there are none.
var FavoritesEmpty = models.EmptyState{
	Icon:        "Star",
	Title:       "No favorite actions yet",
	Description: "Click the star icon to add actions to your favorites",
}

// Request describes what the sidebar is showing.
type Request struct {
	Tab       models.Tab
	Installed []string
	Favorites []string
	Recents   []string
	Searching bool
}

// Aggregator builds per-tab section lists. Returned sections are always
// fresh copies; catalog data is never mutated.
type Aggregator struct {
	store  *catalog.Store
	engine *search.Engine
	logger *logrus.Entry
}

// New creates an aggregator. A nil logger discards output.
func New(store *catalog.Store, engine *search.Engine, logger *logrus.Entry) *Aggregator {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = logrus.NewEntry(l)
	}
	return &Aggregator{store: store, engine: engine, logger: logger.WithField("component", "sections")}
}

// Sections returns the sections of req.Tab. Templates and library are not
// section tabs and yield nil, as do unknown tabs.
func (a *Aggregator) Sections(req Request) []models.ActionSection {
	var out []models.ActionSection
	switch req.Tab {
	case models.TabFavorites:
		out = a.favorites(req)
	case models.TabApps:
		merged := append(a.store.Sections(models.TabApps), a.store.InstalledSections(req.Installed)...)
		out = catalog.SortSections(merged)
	case models.TabLogic, models.TabInteraction:
		// Authored order carries meaning here ("Variables" first).
		out = a.store.Sections(req.Tab)
	case models.TabFiles, models.TabAdvanced:
		out = catalog.SortSections(a.store.Sections(req.Tab))
	}

	a.logger.WithFields(logrus.Fields{
		"tab":      req.Tab,
		"sections": len(out),
	}).Debug("Sections aggregated")
	return out
}

func (a *Aggregator) favorites(req Request) []models.ActionSection {
	recent := a.recentlyUsed(req.Recents)
	out := []models.ActionSection{recent}
	if req.Searching {
		return out
	}

	grouped := a.groupFavorites(req.Favorites, req.Installed)
	if len(grouped) == 0 {
		es := FavoritesEmpty
		return append(out, models.ActionSection{
			Category:   FavoriteActionsCategory,
			Icon:       "Star",
			Color:      "text-amber-600",
			Background: "bg-amber-100",
			Items:      []string{},
			EmptyState: &es,
		})
	}
	return append(out, grouped...)
}

func (a *Aggregator) recentlyUsed(recents []string) models.ActionSection {
	es := RecentlyUsedEmpty
	return models.ActionSection{
		Category:   RecentlyUsedCategory,
		Icon:       "History",
		Color:      "text-gray-600",
		Background: "bg-gray-100",
		Items:      append([]string{}, recents...),
		EmptyState: &es,
	}
}

// groupFavorites puts each favorited action back under the section (and
// subgroup) it was authored in. Sections and subgroups without a favorite are
// dropped. An action listed in several sections appears under each of them.
func (a *Aggregator) groupFavorites(favorites, installed []string) []models.ActionSection {
	if len(favorites) == 0 {
		return nil
	}
	fav := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		fav[f] = true
	}

	all := append(a.store.AllSections(), a.store.InstalledSections(installed)...)
	var out []models.ActionSection
	for _, sec := range all {
		kept := sec.Clone()
		kept.Items = keep(sec.Items, fav)
		kept.Subgroups = nil
		for _, sg := range sec.Subgroups {
			if items := keep(sg.Items, fav); len(items) > 0 {
				kept.Subgroups = append(kept.Subgroups, models.Subgroup{Name: sg.Name, Items: items})
			}
		}
		kept.EmptyState = nil
		if len(kept.Items) == 0 && len(kept.Subgroups) == 0 {
			continue
		}
		out = append(out, kept)
	}
	return catalog.SortSections(mergeByCategory(out))
}

// mergeByCategory folds sections sharing a category name into one, so a
// grouped favorites list keeps category names unique.
func mergeByCategory(sections []models.ActionSection) []models.ActionSection {
	index := make(map[string]int, len(sections))
	var out []models.ActionSection
	for _, sec := range sections {
		i, ok := index[sec.Category]
		if !ok {
			index[sec.Category] = len(out)
			out = append(out, sec)
			continue
		}
		dst := &out[i]
		dst.Items = appendUnique(dst.Items, sec.Items)
		for _, sg := range sec.Subgroups {
			merged := false
			for j := range dst.Subgroups {
				if dst.Subgroups[j].Name == sg.Name {
					dst.Subgroups[j].Items = appendUnique(dst.Subgroups[j].Items, sg.Items)
					merged = true
					break
				}
			}
			if !merged {
				dst.Subgroups = append(dst.Subgroups, sg)
			}
		}
	}
	return out
}

func keep(items []string, set map[string]bool) []string {
	var out []string
	for _, it := range items {
		if set[it] {
			out = append(out, it)
		}
	}
	return out
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			seen[s] = true
			dst = append(dst, s)
		}
	}
	return dst
}

// Templates returns the template list for the templates tab.
func (a *Aggregator) Templates(query string, opts ...search.Option) []models.Template {
	return a.engine.Search(query, models.CorpusTemplates, opts...).Templates
}

// FromLocalResults turns grouped local search hits into one section per
// top-level tab, with ItemPaths recording where each action was found.
func FromLocalResults(groups []search.LocalGroup) []models.ActionSection {
	out := make([]models.ActionSection, 0, len(groups))
	for _, g := range groups {
		sec := models.ActionSection{
			Category:   g.Label,
			Icon:       navIcon(g.Tab),
			Color:      "text-gray-600",
			Background: "bg-gray-100",
			Items:      make([]string, 0, len(g.Matches)),
			ItemPaths:  make(map[string]string, len(g.Matches)),
		}
		for _, m := range g.Matches {
			sec.Items = append(sec.Items, m.Action)
			sec.ItemPaths[m.Action] = m.Path
		}
		out = append(out, sec)
	}
	return out
}

func navIcon(tab models.Tab) string {
	for _, it := range models.MainNavItems {
		if it.ID == tab {
			return it.Icon
		}
	}
	return "Grid"
}
