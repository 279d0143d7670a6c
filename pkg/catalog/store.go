package catalog

import (
	"errors"
	"fmt"

	"github.com/mattsolo1/grove-palette/pkg/models"
)

var (
	ErrDuplicateCategory = errors.New("duplicate section category")
	ErrDuplicateApp      = errors.New("duplicate app id")
	ErrUnknownTab        = errors.New("unknown tab")
)

// Data is the raw content of a catalog before validation.
type Data struct {
	Sections           map[models.Tab][]models.ActionSection
	AppCategories      []models.AppCategory
	Apps               []models.App
	TemplateCategories []models.TemplateCategory
	Templates          []models.Template
}

// Store holds the immutable action, connector and template registries.
// All accessors return copies; nothing handed out aliases internal state.
type Store struct {
	sections           map[models.Tab][]models.ActionSection
	apps               []models.App
	appIndex           map[string]int
	appCategories      []models.AppCategory
	templates          []models.Template
	templateCategories []models.TemplateCategory
}

// New validates d and builds a Store from a deep copy of it.
func New(d Data) (*Store, error) {
	s := &Store{
		sections: make(map[models.Tab][]models.ActionSection, len(models.ActionTabs)),
		appIndex: make(map[string]int, len(d.Apps)),
	}

	for tab, sections := range d.Sections {
		if !isActionTab(tab) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTab, tab)
		}
		seen := make(map[string]bool, len(sections))
		copied := make([]models.ActionSection, 0, len(sections))
		for _, sec := range sections {
			if seen[sec.Category] {
				return nil, fmt.Errorf("%w: %q in tab %s", ErrDuplicateCategory, sec.Category, tab)
			}
			seen[sec.Category] = true
			copied = append(copied, sec.Clone())
		}
		s.sections[tab] = copied
	}

	for _, app := range d.Apps {
		if _, dup := s.appIndex[app.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateApp, app.ID)
		}
		s.appIndex[app.ID] = len(s.apps)
		s.apps = append(s.apps, app)
	}

	s.appCategories = append(s.appCategories, d.AppCategories...)
	s.templateCategories = append(s.templateCategories, d.TemplateCategories...)
	for _, tpl := range d.Templates {
		tpl.UsedActions = append([]models.UsedAction(nil), tpl.UsedActions...)
		s.templates = append(s.templates, tpl)
	}

	return s, nil
}

func isActionTab(tab models.Tab) bool {
	for _, t := range models.ActionTabs {
		if t == tab {
			return true
		}
	}
	return false
}

// Sections returns the authored sections of an action tab in authored order.
// Unknown and non-action tabs yield nil.
func (s *Store) Sections(tab models.Tab) []models.ActionSection {
	src := s.sections[tab]
	if len(src) == 0 {
		return nil
	}
	out := make([]models.ActionSection, len(src))
	for i, sec := range src {
		out[i] = sec.Clone()
	}
	return out
}

// AllSections returns the sections of every action tab, tab by tab.
func (s *Store) AllSections() []models.ActionSection {
	var out []models.ActionSection
	for _, tab := range models.ActionTabs {
		out = append(out, s.Sections(tab)...)
	}
	return out
}

// TotalActionCount counts items and subgroup items across all action tabs.
func (s *Store) TotalActionCount() int {
	n := 0
	for _, tab := range models.ActionTabs {
		for _, sec := range s.sections[tab] {
			n += sec.ItemCount()
		}
	}
	return n
}

// Apps returns the connector catalog in catalog order.
func (s *Store) Apps() []models.App {
	return append([]models.App(nil), s.apps...)
}

// App looks up a connector by id.
func (s *Store) App(id string) (models.App, bool) {
	i, ok := s.appIndex[id]
	if !ok {
		return models.App{}, false
	}
	return s.apps[i], true
}

// PremiumApps returns the connectors flagged premium, in catalog order.
func (s *Store) PremiumApps() []models.App {
	var out []models.App
	for _, app := range s.apps {
		if app.Premium {
			out = append(out, app)
		}
	}
	return out
}

func (s *Store) AppCategories() []models.AppCategory {
	return append([]models.AppCategory(nil), s.appCategories...)
}

// AppCategoryID resolves a category label to its id.
func (s *Store) AppCategoryID(label string) (string, bool) {
	for _, c := range s.appCategories {
		if c.Label == label {
			return c.ID, true
		}
	}
	return "", false
}

func (s *Store) Templates() []models.Template {
	out := make([]models.Template, len(s.templates))
	for i, tpl := range s.templates {
		tpl.UsedActions = append([]models.UsedAction(nil), tpl.UsedActions...)
		out[i] = tpl
	}
	return out
}

func (s *Store) TemplateCategories() []models.TemplateCategory {
	return append([]models.TemplateCategory(nil), s.templateCategories...)
}

// TemplateAuthors returns the distinct non-empty authors in catalog order.
func (s *Store) TemplateAuthors() []string {
	seen := make(map[string]bool)
	var out []string
	for _, tpl := range s.templates {
		if tpl.Author == "" || seen[tpl.Author] {
			continue
		}
		seen[tpl.Author] = true
		out = append(out, tpl.Author)
	}
	return out
}
