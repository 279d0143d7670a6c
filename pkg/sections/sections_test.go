package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-palette/pkg/catalog"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/search"
)

func newAggregator(t *testing.T) *Aggregator {
	t.Helper()
	store, err := catalog.New(catalog.Data{
		Sections: map[models.Tab][]models.ActionSection{
			models.TabApps: {
				{Category: "excel", Items: []string{"Launch Excel", "Close Excel"}},
				{Category: "Email", Items: []string{"Send email", "Retrieve email messages"}, Subgroups: []models.Subgroup{
					{Name: "Outlook", Items: []string{"Send Outlook message", "Move Outlook message"}},
					{Name: "Exchange", Items: []string{"Connect to Exchange server"}},
				}},
			},
			models.TabLogic: {
				{Category: "Variables", Items: []string{"Set variable"}},
				{Category: "Conditionals", Items: []string{"If", "Else"}},
			},
			models.TabFiles: {
				{Category: "Folders", Items: []string{"Create folder"}},
				{Category: "Files", Items: []string{"Delete file", "Copy file"}},
			},
		},
		Apps: []models.App{
			{ID: "asana", Name: "Asana", Color: "text-rose-600", Premium: true},
			{ID: "toggl", Name: "Toggl"},
		},
		Templates: []models.Template{
			{ID: "t1", Title: "Zeta"},
			{ID: "t2", Title: "alpha"},
		},
	})
	require.NoError(t, err)
	return New(store, search.NewEngine(store, nil), nil)
}

func categories(sections []models.ActionSection) []string {
	var out []string
	for _, s := range sections {
		out = append(out, s.Category)
	}
	return out
}

func TestAppsTabIsAlphabetized(t *testing.T) {
	a := newAggregator(t)

	got := a.Sections(Request{Tab: models.TabApps, Installed: []string{"toggl", "asana", "missing"}})
	assert.Equal(t, []string{"Asana", "Email", "excel", "Toggl"}, categories(got))

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, catalog.Compare(got[i-1].Category, got[i].Category), 0)
	}
	for _, sec := range got {
		assert.True(t, isSorted(sec.Items), sec.Category)
	}

	email := got[1]
	assert.Equal(t, []string{"Retrieve email messages", "Send email"}, email.Items)
	require.Len(t, email.Subgroups, 2)
	assert.Equal(t, "Exchange", email.Subgroups[0].Name)
	assert.Equal(t, []string{"Move Outlook message", "Send Outlook message"}, email.Subgroups[1].Items)

	assert.Equal(t, "bg-rose-100/80", got[0].Background)
	assert.Len(t, got[0].Items, 7)
}

func isSorted(items []string) bool {
	for i := 1; i < len(items); i++ {
		if catalog.Less(items[i], items[i-1]) {
			return false
		}
	}
	return true
}

func TestAuthoredOrderTabs(t *testing.T) {
	a := newAggregator(t)

	assert.Equal(t, []string{"Variables", "Conditionals"}, categories(a.Sections(Request{Tab: models.TabLogic})))
	assert.Equal(t, []string{"Files", "Folders"}, categories(a.Sections(Request{Tab: models.TabFiles})))

	files := a.Sections(Request{Tab: models.TabFiles})
	assert.Equal(t, []string{"Copy file", "Delete file"}, files[0].Items)

	assert.Nil(t, a.Sections(Request{Tab: models.TabTemplates}))
	assert.Nil(t, a.Sections(Request{Tab: models.TabLibrary}))
	assert.Nil(t, a.Sections(Request{Tab: models.Tab("nope")}))
}

func TestSectionsDoNotAliasCatalog(t *testing.T) {
	a := newAggregator(t)

	got := a.Sections(Request{Tab: models.TabLogic})
	got[0].Items[0] = "mutated"

	again := a.Sections(Request{Tab: models.TabLogic})
	assert.Equal(t, "Set variable", again[0].Items[0])
}

func TestFavoritesTab(t *testing.T) {
	a := newAggregator(t)

	t.Run("empty", func(t *testing.T) {
		got := a.Sections(Request{Tab: models.TabFavorites})
		require.Len(t, got, 2)
		assert.Equal(t, RecentlyUsedCategory, got[0].Category)
		assert.Empty(t, got[0].Items)
		require.NotNil(t, got[0].EmptyState)
		assert.Equal(t, "No recent actions", got[0].EmptyState.Title)

		assert.Equal(t, FavoriteActionsCategory, got[1].Category)
		require.NotNil(t, got[1].EmptyState)
		assert.Equal(t, "No favorite actions yet", got[1].EmptyState.Title)
	})

	t.Run("grouped", func(t *testing.T) {
		got := a.Sections(Request{
			Tab:       models.TabFavorites,
			Recents:   []string{"If", "Send email"},
			Favorites: []string{"Send Outlook message", "Set variable", "Close Excel", "Launch Excel", "Search Toggl"},
			Installed: []string{"toggl"},
		})

		assert.Equal(t, []string{RecentlyUsedCategory, "Email", "excel", "Toggl", "Variables"}, categories(got))
		assert.Equal(t, []string{"If", "Send email"}, got[0].Items, "recents keep recency order")

		email := got[1]
		assert.Empty(t, email.Items)
		require.Len(t, email.Subgroups, 1)
		assert.Equal(t, "Outlook", email.Subgroups[0].Name)
		assert.Equal(t, []string{"Send Outlook message"}, email.Subgroups[0].Items)

		assert.Equal(t, []string{"Close Excel", "Launch Excel"}, got[2].Items)
		assert.Equal(t, []string{"Search Toggl"}, got[3].Items)
	})

	t.Run("searching hides favorites", func(t *testing.T) {
		got := a.Sections(Request{Tab: models.TabFavorites, Favorites: []string{"If"}, Searching: true})
		assert.Equal(t, []string{RecentlyUsedCategory}, categories(got))
	})

	t.Run("stale favorites fall back to placeholder", func(t *testing.T) {
		got := a.Sections(Request{Tab: models.TabFavorites, Favorites: []string{"Search Toggl"}})
		assert.Equal(t, []string{RecentlyUsedCategory, FavoriteActionsCategory}, categories(got))
	})
}

func TestTemplates(t *testing.T) {
	a := newAggregator(t)

	var titles []string
	for _, tpl := range a.Templates("") {
		titles = append(titles, tpl.Title)
	}
	assert.Equal(t, []string{"alpha", "Zeta"}, titles)
}

func TestFromLocalResults(t *testing.T) {
	got := FromLocalResults([]search.LocalGroup{
		{Tab: models.TabApps, Label: "Connectors", Matches: []search.Match{
			{Action: "Send email", Path: "Email"},
			{Action: "Send Outlook message", Path: "Email › Outlook"},
		}},
		{Tab: models.TabFiles, Label: "Files", Matches: []search.Match{{Action: "Send file", Path: "Files"}}},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Connectors", got[0].Category)
	assert.Equal(t, "AppWindow", got[0].Icon)
	assert.Equal(t, []string{"Send email", "Send Outlook message"}, got[0].Items)
	assert.Equal(t, "Email", got[0].ItemPaths["Send email"])
	assert.Equal(t, "Email › Outlook", got[0].ItemPaths["Send Outlook message"])
	assert.Equal(t, "FolderOpen", got[1].Icon)
}

func TestViews(t *testing.T) {
	hideEmail := func(name string) bool { return strings.Contains(name, "email") }

	sections := []models.ActionSection{
		{Category: "Email", Items: []string{"Send email", "Retrieve email"}, Subgroups: []models.Subgroup{
			{Name: "Outlook", Items: []string{"Send Outlook message"}},
			{Name: "Gmail", Items: []string{"Read email"}},
		}},
		{Category: "Mail only", Items: []string{"Send email"}},
		{Category: "Recently Used", Items: []string{}, EmptyState: &RecentlyUsedEmpty},
		{Category: "Bare"},
	}

	views := Views(sections, hideEmail)
	require.Len(t, views, 4)

	email := views[0]
	assert.Empty(t, email.VisibleItems)
	require.Len(t, email.Subgroups, 1, "fully hidden subgroups are dropped")
	assert.Equal(t, "Outlook", email.Subgroups[0].Name)
	assert.Equal(t, 1, email.Subgroups[0].Total)
	assert.False(t, email.AllHidden)
	assert.Equal(t, 1, email.VisibleCount())

	assert.True(t, views[1].AllHidden)
	assert.False(t, views[1].ShowEmptyState)

	assert.True(t, views[2].ShowEmptyState)
	assert.False(t, views[2].AllHidden, "an empty section is not a filter artifact")

	assert.False(t, views[3].AllHidden)
	assert.False(t, views[3].ShowEmptyState)

	all := Views(sections, nil)
	assert.Equal(t, []string{"Send email"}, all[1].VisibleItems)
	assert.False(t, all[1].AllHidden)
}
