package service

import (
	"context"
	"fmt"

	"github.com/mattsolo1/grove-palette/pkg/filter"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/search"
	"github.com/mattsolo1/grove-palette/pkg/sections"
	"github.com/mattsolo1/grove-palette/pkg/session"
	"github.com/mattsolo1/grove-palette/pkg/sidebar"
)

// GetSections returns the sections of tab for the current session.
func (s *Service) GetSections(tab models.Tab) ([]models.ActionSection, error) {
	ids, err := s.Installed.InstalledIDs()
	if err != nil {
		return nil, fmt.Errorf("list installed apps: %w", err)
	}
	return s.Aggregator.Sections(sections.Request{
		Tab:       tab,
		Installed: ids,
		Favorites: s.Session.Favorites(),
		Recents:   s.Session.Recents(),
		Searching: s.Session.Searching(),
	}), nil
}

// Search runs query against corpus, taking installed apps into account.
func (s *Service) Search(query string, corpus models.Corpus, opts ...search.Option) (search.Results, error) {
	withInstalled, err := s.installedOption(opts)
	if err != nil {
		return search.Results{}, err
	}
	return s.Engine.Search(query, corpus, withInstalled...), nil
}

func (s *Service) installedOption(opts []search.Option) ([]search.Option, error) {
	ids, err := s.Installed.InstalledIDs()
	if err != nil {
		return nil, fmt.Errorf("list installed apps: %w", err)
	}
	return append([]search.Option{search.WithInstalled(ids)}, opts...), nil
}

// Templates lists templates for the templates tab.
func (s *Service) Templates(query string, opts ...search.Option) []models.Template {
	return s.Aggregator.Templates(query, opts...)
}

// IsPremiumConnectorAction reports whether name belongs to a premium connector.
func (s *Service) IsPremiumConnectorAction(name string) bool {
	return s.Classifier.IsPremiumConnectorAction(name)
}

// ShouldHide reports whether filters hide name.
func (s *Service) ShouldHide(name string, filters filter.Set) bool {
	return s.Filter.ShouldHide(name, filters)
}

// ToggleFavorite adds or removes a favorite.
func (s *Service) ToggleFavorite(name string) bool {
	return s.Session.ToggleFavorite(name)
}

// RecordUsed activates an action.
func (s *Service) RecordUsed(name string) session.Outcome {
	return s.Session.RecordUsed(name)
}

// ToggleSubgroup expands or collapses a subgroup.
func (s *Service) ToggleSubgroup(section, subgroup string) bool {
	return s.Session.ToggleSubgroup(section, subgroup)
}

// SetFilters replaces the active visibility filters.
func (s *Service) SetFilters(set filter.Set) {
	s.Session.SetFilters(set)
}

// SetActiveTab switches the navigation tab.
func (s *Service) SetActiveTab(tab models.Tab) error {
	return s.Session.SetActiveTab(tab)
}

// Install adds a connector to the installed set.
func (s *Service) Install(id string) error {
	if err := s.Installed.Install(id); err != nil {
		return fmt.Errorf("install %s: %w", id, err)
	}
	s.logger.WithField("app", id).Info("App installed")
	return nil
}

// Uninstall removes a connector from the installed set.
func (s *Service) Uninstall(id string) error {
	if err := s.Installed.Uninstall(id); err != nil {
		return fmt.Errorf("uninstall %s: %w", id, err)
	}
	s.logger.WithField("app", id).Info("App uninstalled")
	return nil
}

// InstalledApps returns installed connectors in install order, skipping ids
// the catalog no longer knows.
func (s *Service) InstalledApps() ([]models.App, error) {
	recs, err := s.Installed.Records()
	if err != nil {
		return nil, fmt.Errorf("list installed apps: %w", err)
	}
	var out []models.App
	for _, r := range recs {
		if app, ok := s.Catalog.App(r.AppID); ok {
			app.Installed = true
			out = append(out, app)
		}
	}
	return out, nil
}

// CurrentSections returns what the sidebar shows for the session: local
// search results grouped by tab while searching locally, otherwise the
// sections of the active tab.
func (s *Service) CurrentSections() ([]models.ActionSection, error) {
	if s.Session.Searching() && s.Session.SearchTab() == models.CorpusLocal {
		res, err := s.Search(s.Session.Query(), models.CorpusLocal)
		if err != nil {
			return nil, err
		}
		return sections.FromLocalResults(res.Local), nil
	}
	return s.GetSections(s.Session.ActiveTab())
}

// Rows flattens sections into sidebar rows using the session's filters,
// favorites and expanded subgroups.
func (s *Service) Rows(secs []models.ActionSection) []sidebar.Row {
	views := sections.Views(secs, s.Filter.Predicate(s.Session.Filters()))
	return sidebar.Build(views, sidebar.Options{
		Expanded:    s.Session.Expanded,
		IsFavorite:  s.Session.IsFavorite,
		IsPremium:   s.Classifier.IsPremiumConnectorAction,
		PremiumUser: s.IsPremiumUser(),
		Searching:   s.Session.Searching(),
	})
}

// SidebarRows is Rows over CurrentSections.
func (s *Service) SidebarRows() ([]sidebar.Row, error) {
	secs, err := s.CurrentSections()
	if err != nil {
		return nil, err
	}
	return s.Rows(secs), nil
}

// Live returns a debounced search publishing to publish, with the configured
// per-corpus latencies.
func (s *Service) Live(publish func(search.Results)) *search.LiveSearch {
	opts := []search.LiveOption{search.WithLatency(s.Config.Latency)}
	if s.Config.LibraryLatency > 0 {
		opts = append(opts, search.WithCorpusLatency(models.CorpusLibrary, s.Config.LibraryLatency))
	}
	if s.Config.TemplatesLatency > 0 {
		opts = append(opts, search.WithCorpusLatency(models.CorpusTemplates, s.Config.TemplatesLatency))
	}
	return s.Engine.Live(publish, opts...)
}

// IssueSearch feeds the session query into live, including installed apps.
func (s *Service) IssueSearch(ctx context.Context, live *search.LiveSearch, opts ...search.Option) error {
	withInstalled, err := s.installedOption(opts)
	if err != nil {
		return err
	}
	live.Issue(ctx, s.Session.Query(), s.Session.SearchTab(), withInstalled...)
	return nil
}
