package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-palette/pkg/filter"
	"github.com/mattsolo1/grove-palette/pkg/installed"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/search"
	"github.com/mattsolo1/grove-palette/pkg/sections"
	"github.com/mattsolo1/grove-palette/pkg/session"
	"github.com/mattsolo1/grove-palette/pkg/sidebar"
)

func newTestService(t *testing.T, mutate ...func(*Config)) *Service {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	for _, m := range mutate {
		m(cfg)
	}
	svc, err := New(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestNewLoadsEmbeddedCatalog(t *testing.T) {
	svc := newTestService(t)

	logic, err := svc.GetSections(models.TabLogic)
	require.NoError(t, err)
	require.NotEmpty(t, logic)
	assert.Equal(t, "Variables", logic[0].Category)

	assert.True(t, svc.IsPremiumConnectorAction("SharePoint - Create file"))
	assert.True(t, svc.IsPremiumConnectorAction("Send with Adobe Sign"))
	assert.False(t, svc.IsPremiumConnectorAction("Send email"))
}

func TestNewInMemory(t *testing.T) {
	svc, err := New(nil, nil)
	require.NoError(t, err)
	_, ok := svc.Installed.(*installed.Memory)
	assert.True(t, ok)
	assert.NoError(t, svc.Close())
}

func TestNewRejectsBadCatalogDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(dir, "apps.yaml", "apps: [unclosed"))

	_, err := New(&Config{CatalogDir: dir}, nil)
	assert.ErrorContains(t, err, "load catalog")
}

func TestInstallAddsConnectorSection(t *testing.T) {
	svc := newTestService(t)

	before, err := svc.GetSections(models.TabApps)
	require.NoError(t, err)

	require.NoError(t, svc.Install("asana"))
	require.NoError(t, svc.Install("asana"))
	err = svc.Install("not-an-app")
	assert.ErrorIs(t, err, installed.ErrUnknownApp)

	after, err := svc.GetSections(models.TabApps)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	for i := 1; i < len(after); i++ {
		assert.LessOrEqual(t, compareFold(after[i-1].Category, after[i].Category), 0)
	}

	apps, err := svc.InstalledApps()
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Asana", apps[0].Name)
	assert.True(t, apps[0].Installed)

	res, err := svc.Search("asana", models.CorpusLocal)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Count())

	lib, err := svc.Search("asana", models.CorpusLibrary)
	require.NoError(t, err)
	require.Len(t, lib.Library, 1)
	assert.True(t, lib.Library[0].Installed)

	require.NoError(t, svc.Uninstall("asana"))
	final, err := svc.GetSections(models.TabApps)
	require.NoError(t, err)
	assert.Len(t, final, len(before))
}

func TestInstallsPersistAcrossServices(t *testing.T) {
	dir := t.TempDir()
	first, err := New(&Config{DataDir: dir}, nil)
	require.NoError(t, err)
	require.NoError(t, first.Install("toggl"))
	require.NoError(t, first.Close())

	second, err := New(&Config{DataDir: dir}, nil)
	require.NoError(t, err)
	defer second.Close()

	ids, err := second.Installed.InstalledIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"toggl"}, ids)
}

func TestPremiumGating(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Install("asana"))
	const action = "Get Asana data"

	assert.Equal(t, session.OutcomeDisabled, svc.RecordUsed(action))
	assert.Empty(t, svc.Session.Recents())

	svc.SetPremiumUser(true)
	assert.Equal(t, session.OutcomeRecorded, svc.RecordUsed(action))
	assert.Equal(t, []string{action}, svc.Session.Recents())
}

func TestPremiumFilterHidesRows(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Install("asana"))
	require.NoError(t, svc.SetActiveTab(models.TabApps))
	svc.ToggleFavorite("Launch Excel")

	find := func(rows []sidebar.Row, label string) (sidebar.Row, bool) {
		for _, r := range rows {
			if r.Label == label {
				return r, true
			}
		}
		return sidebar.Row{}, false
	}

	rows, err := svc.SidebarRows()
	require.NoError(t, err)
	row, ok := find(rows, "Get Asana data")
	require.True(t, ok)
	assert.True(t, row.Premium)
	assert.True(t, row.Disabled)

	svc.SetFilters(filter.NewSet(filter.Premium))
	assert.True(t, svc.ShouldHide("Get Asana data", svc.Session.Filters()))
	rows, err = svc.SidebarRows()
	require.NoError(t, err)
	_, ok = find(rows, "Get Asana data")
	assert.False(t, ok)
	header, ok := find(rows, "Asana")
	require.True(t, ok)
	assert.Equal(t, sidebar.RowHeader, header.Kind)
	_, ok = find(rows, sidebar.NoVisibleMessage)
	assert.True(t, ok)

	svc.SetFilters(filter.NewSet())
	rows, err = svc.SidebarRows()
	require.NoError(t, err)
	_, ok = find(rows, "Get Asana data")
	assert.True(t, ok)
	assert.Equal(t, []string{"Launch Excel"}, svc.Session.Favorites())

	excel, ok := find(rows, "Launch Excel")
	require.True(t, ok)
	assert.True(t, excel.Favorite)
}

func TestCurrentSectionsWhileSearching(t *testing.T) {
	svc := newTestService(t)
	svc.Session.SetQuery("outlook")

	secs, err := svc.CurrentSections()
	require.NoError(t, err)
	require.NotEmpty(t, secs)
	assert.Equal(t, "Connectors", secs[0].Category)
	assert.Equal(t, "Outlook", secs[0].ItemPaths["Close Outlook"])

	svc.Session.SetSearchTab(models.CorpusLibrary)
	secs, err = svc.CurrentSections()
	require.NoError(t, err)
	require.NotEmpty(t, secs)
	assert.Equal(t, sections.RecentlyUsedCategory, secs[0].Category)
	assert.Len(t, secs, 1, "favorites are hidden while searching")
}

func TestLiveUsesConfiguredLatency(t *testing.T) {
	svc := newTestService(t, func(c *Config) {
		c.Latency = 20 * time.Millisecond
		c.LibraryLatency = 300 * time.Millisecond
	})

	var mu sync.Mutex
	var got []search.Results
	live := svc.Live(func(r search.Results) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, r)
	})
	assert.Equal(t, 20*time.Millisecond, live.Latency(models.CorpusLocal))
	assert.Equal(t, 300*time.Millisecond, live.Latency(models.CorpusLibrary))
	assert.Equal(t, 20*time.Millisecond, live.Latency(models.CorpusTemplates))

	svc.Session.SetQuery("o")
	require.NoError(t, svc.IssueSearch(context.Background(), live))
	svc.Session.SetQuery("outlook")
	require.NoError(t, svc.IssueSearch(context.Background(), live))
	live.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "outlook", got[0].Query)
}

func TestTemplates(t *testing.T) {
	svc := newTestService(t)
	all := svc.Templates("")
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		if all[i].Title == "" {
			continue
		}
		assert.LessOrEqual(t, compareFold(all[i-1].Title, all[i].Title), 0)
	}
}

func TestSearchCountsMatchSidebarRows(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Search("connection", models.CorpusLocal)
	require.NoError(t, err)

	var advanced []string
	for _, g := range res.Local {
		if g.Tab == models.TabAdvanced {
			for _, m := range g.Matches {
				advanced = append(advanced, m.Action)
			}
		}
	}
	n := 0
	for _, a := range advanced {
		if a == "Close connection" {
			n++
		}
	}
	assert.Equal(t, 1, n, "Close connection is listed under two Advanced sections")

	items := 0
	for _, sec := range sections.FromLocalResults(res.Local) {
		items += len(sec.Items)
	}
	assert.Equal(t, res.Count(), items)
}
