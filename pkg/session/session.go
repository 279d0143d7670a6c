// Package session holds the sidebar's transient per-session state: favorites,
// recently used actions, expanded subgroups, active filters and navigation.
// Nothing here is persisted; a new State starts empty.
package session

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-palette/pkg/filter"
	"github.com/mattsolo1/grove-palette/pkg/models"
)

// MaxRecents bounds the recently used list.
const MaxRecents = 5

var ErrUnknownTab = errors.New("unknown tab")

// Tier reports the user's account tier.
type Tier interface {
	IsPremiumUser() bool
}

// StaticTier is a fixed Tier.
type StaticTier bool

func (t StaticTier) IsPremiumUser() bool { return bool(t) }

// Gate decides whether an action is disabled for a tier.
type Gate interface {
	IsActionDisabled(actionName string, isPremiumUser bool) bool
}

// Outcome reports what an activation did.
type Outcome string

const (
	OutcomeRecorded Outcome = "recorded"
	OutcomeDisabled Outcome = "disabled"
	OutcomeIgnored  Outcome = "ignored"
)

// SubgroupKey identifies a subgroup within a section.
type SubgroupKey struct {
	Section  string
	Subgroup string
}

// State is single-writer session state. It is not safe for concurrent use.
type State struct {
	gate   Gate
	tier   Tier
	logger *logrus.Entry

	favorites map[string]bool
	favOrder  []string
	recents   []string
	expanded  map[SubgroupKey]bool
	filters   filter.Set
	tab       models.Tab
	searchTab models.Corpus
	query     string
}

// Option configures a State.
type Option func(*State)

// WithTier sets the tier consulted by RecordUsed. The default is non-premium.
func WithTier(t Tier) Option {
	return func(s *State) {
		s.tier = t
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logrus.Entry) Option {
	return func(s *State) {
		s.logger = l
	}
}

// New creates empty session state on the favorites tab with the local search
// tab selected. gate may be nil, in which case nothing is ever disabled.
func New(gate Gate, opts ...Option) *State {
	s := &State{
		gate:      gate,
		tier:      StaticTier(false),
		favorites: make(map[string]bool),
		expanded:  make(map[SubgroupKey]bool),
		filters:   filter.NewSet(),
		tab:       models.TabFavorites,
		searchTab: models.CorpusLocal,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		s.logger = logrus.NewEntry(l)
	}
	s.logger = s.logger.WithField("component", "session")
	return s
}

// ToggleFavorite adds or removes name and reports whether it is now a favorite.
func (s *State) ToggleFavorite(name string) bool {
	if s.favorites[name] {
		delete(s.favorites, name)
		for i, f := range s.favOrder {
			if f == name {
				s.favOrder = append(s.favOrder[:i], s.favOrder[i+1:]...)
				break
			}
		}
		return false
	}
	s.favorites[name] = true
	s.favOrder = append(s.favOrder, name)
	return true
}

// IsFavorite reports whether name is a favorite.
func (s *State) IsFavorite(name string) bool {
	return s.favorites[name]
}

// Favorites returns the favorites in the order they were added.
func (s *State) Favorites() []string {
	return append([]string(nil), s.favOrder...)
}

// IsDisabled reports whether name cannot be activated by the current tier.
func (s *State) IsDisabled(name string) bool {
	return s.gate != nil && s.gate.IsActionDisabled(name, s.tier.IsPremiumUser())
}

// RecordUsed activates name. A disabled action leaves every piece of state
// untouched and reports OutcomeDisabled. Otherwise name moves to the front of
// the recents list, which keeps at most MaxRecents entries.
func (s *State) RecordUsed(name string) Outcome {
	log := s.logger.WithField("action", name)
	if name == "" {
		log.WithField("outcome", OutcomeIgnored).Debug("Activation ignored")
		return OutcomeIgnored
	}
	if s.IsDisabled(name) {
		log.WithField("outcome", OutcomeDisabled).Debug("Premium action activated without premium access")
		return OutcomeDisabled
	}

	next := make([]string, 0, MaxRecents)
	next = append(next, name)
	for _, r := range s.recents {
		if r != name && len(next) < MaxRecents {
			next = append(next, r)
		}
	}
	s.recents = next
	log.WithField("outcome", OutcomeRecorded).Debug("Action recorded")
	return OutcomeRecorded
}

// Recents returns the recently used actions, most recent first.
func (s *State) Recents() []string {
	return append([]string(nil), s.recents...)
}

// ToggleSubgroup flips the expanded state of a subgroup and returns the new state.
func (s *State) ToggleSubgroup(section, subgroup string) bool {
	k := SubgroupKey{Section: section, Subgroup: subgroup}
	s.expanded[k] = !s.expanded[k]
	return s.expanded[k]
}

// Expanded reports whether a subgroup is expanded. Subgroups start collapsed.
func (s *State) Expanded(section, subgroup string) bool {
	return s.expanded[SubgroupKey{Section: section, Subgroup: subgroup}]
}

// SetFilters replaces the active filters. Unknown ids are kept but match nothing.
func (s *State) SetFilters(set filter.Set) {
	s.filters = set.Clone()
}

// ToggleFilter flips one filter.
func (s *State) ToggleFilter(id filter.ID) {
	s.filters = s.filters.Toggle(id)
}

// Filters returns a copy of the active filters.
func (s *State) Filters() filter.Set {
	return s.filters.Clone()
}

// SetActiveTab switches navigation and clears the query. Unknown tabs are
// rejected without changing anything.
func (s *State) SetActiveTab(tab models.Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	s.tab = tab
	s.query = ""
	return nil
}

// ActiveTab returns the navigation tab.
func (s *State) ActiveTab() models.Tab {
	return s.tab
}

// SetSearchTab selects the corpus shown while a query is active. Unknown
// corpora are ignored.
func (s *State) SetSearchTab(c models.Corpus) {
	if c.Valid() {
		s.searchTab = c
	}
}

// SearchTab returns the corpus shown while a query is active.
func (s *State) SearchTab() models.Corpus {
	return s.searchTab
}

// SetQuery updates the query. Starting to type on the templates tab selects
// the templates search tab.
func (s *State) SetQuery(q string) {
	if s.tab == models.TabTemplates && s.query == "" && q != "" {
		s.searchTab = models.CorpusTemplates
	}
	s.query = q
}

// Query returns the current query.
func (s *State) Query() string {
	return s.query
}

// Searching reports whether a query is active.
func (s *State) Searching() bool {
	return s.query != ""
}
