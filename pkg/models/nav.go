package models

// Tab identifies a sidebar navigation entry.
type Tab string

const (
	TabFavorites   Tab = "favorites"
	TabApps        Tab = "apps" // labelled "Connectors"
	TabLogic       Tab = "logic"
	TabInteraction Tab = "interaction"
	TabFiles       Tab = "files"
	TabAdvanced    Tab = "advanced"
	TabTemplates   Tab = "templates"
	TabLibrary     Tab = "library"
)

// ActionTabs are the five tabs backed by static action sections, in the fixed
// order used when grouping local search results.
var ActionTabs = []Tab{TabApps, TabLogic, TabInteraction, TabFiles, TabAdvanced}

// NavItem is a navigation entry.
type NavItem struct {
	ID    Tab    `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var MainNavItems = []NavItem{
	{ID: TabFavorites, Label: "Favorites", Icon: "Star"},
	{ID: TabApps, Label: "Connectors", Icon: "AppWindow"},
	{ID: TabLogic, Label: "Logic", Icon: "Zap"},
	{ID: TabInteraction, Label: "Interaction", Icon: "MousePointerClick"},
	{ID: TabFiles, Label: "Files", Icon: "FolderOpen"},
	{ID: TabAdvanced, Label: "Advanced", Icon: "Settings2"},
}

var BottomNavItems = []NavItem{
	{ID: TabTemplates, Label: "Templates", Icon: "LayoutPanelTop"},
	{ID: TabLibrary, Label: "Library", Icon: "Library"},
}

// Label returns the display label of a tab, or the raw id when unknown.
func (t Tab) Label() string {
	for _, items := range [][]NavItem{MainNavItems, BottomNavItems} {
		for _, it := range items {
			if it.ID == t {
				return it.Label
			}
		}
	}
	return string(t)
}

// Valid reports whether t is a known navigation entry.
func (t Tab) Valid() bool {
	for _, items := range [][]NavItem{MainNavItems, BottomNavItems} {
		for _, it := range items {
			if it.ID == t {
				return true
			}
		}
	}
	return false
}

// Corpus is one of the independently searchable data sets.
type Corpus string

const (
	CorpusLocal     Corpus = "local"
	CorpusLibrary   Corpus = "library"
	CorpusTemplates Corpus = "templates"
)

// Valid reports whether c is a known corpus.
func (c Corpus) Valid() bool {
	return c == CorpusLocal || c == CorpusLibrary || c == CorpusTemplates
}

// SortMode orders library and template listings.
type SortMode string

const (
	SortPopular   SortMode = "popular" // catalog order
	SortAlpha     SortMode = "a-z"
	SortDateAdded SortMode = "date-added" // library only, newest first
)
