package palette

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-palette/internal/tui/components/confirm"
	"github.com/mattsolo1/grove-palette/pkg/canvas"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/service"
	"github.com/mattsolo1/grove-palette/pkg/sidebar"
)

func newTestModel(t *testing.T) (Model, *canvas.Flow) {
	t.Helper()
	svc, err := service.New(nil, nil)
	require.NoError(t, err)
	flow := canvas.New()
	m := New(svc, flow)
	m.height = 200
	return m, flow
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeQuery(t *testing.T, m Model, q string) Model {
	t.Helper()
	m = press(t, m, "/")
	require.True(t, m.typing)
	for _, r := range q {
		m = press(t, m, string(r))
	}
	m = press(t, m, "enter")

	msg := waitForResults(m.results)()
	next, _ := m.Update(msg)
	return next.(Model)
}

func cursorTo(t *testing.T, m Model, label string) Model {
	t.Helper()
	for i, r := range m.rows {
		if r.Label == label && r.Selectable() {
			m.cursor = i
			return m
		}
	}
	t.Fatalf("row %q not found", label)
	return m
}

func TestStartsOnFavorites(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, modeSections, m.mode)
	require.NotEmpty(t, m.rows)
	assert.Equal(t, sidebar.RowHeader, m.rows[0].Kind)
	assert.Equal(t, "Recently Used", m.rows[0].Label)
	assert.Contains(t, m.View(), "No recent actions")
}

func TestTabCyclesNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "tab")
	assert.Equal(t, models.TabApps, m.service.Session.ActiveTab())
	r, ok := m.selectedRow()
	require.True(t, ok)
	assert.True(t, r.Selectable(), "cursor lands on a selectable row")

	for i := 0; i < 5; i++ {
		m = press(t, m, "tab")
	}
	assert.Equal(t, models.TabTemplates, m.service.Session.ActiveTab())
	assert.Equal(t, modeTemplates, m.mode)
	assert.NotEmpty(t, m.templates)

	m = press(t, m, "tab")
	assert.Equal(t, models.TabLibrary, m.service.Session.ActiveTab())
	assert.Equal(t, modeLibrary, m.mode)

	m = press(t, m, "tab")
	assert.Equal(t, models.TabFavorites, m.service.Session.ActiveTab())
}

func TestSearchFavoriteAndUse(t *testing.T) {
	m, flow := newTestModel(t)

	m = typeQuery(t, m, "outlook")
	assert.Equal(t, "outlook", m.service.Session.Query())
	assert.Equal(t, modeSections, m.mode)
	assert.Positive(t, m.counts[models.CorpusLocal])
	assert.Equal(t, "Connectors", m.rows[0].Label)

	m = cursorTo(t, m, "Close Outlook")
	r, _ := m.selectedRow()
	assert.Equal(t, "Outlook", r.Path)

	m = press(t, m, "f")
	assert.True(t, m.service.Session.IsFavorite("Close Outlook"))
	r, _ = m.selectedRow()
	assert.True(t, r.Favorite, "rows are rebuilt while searching")

	m = press(t, m, "enter")
	assert.Equal(t, []string{"Close Outlook"}, m.service.Session.Recents())

	m = press(t, m, " ")
	nodes := flow.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "Close Outlook", nodes[0].Data.Label)
	assert.Equal(t, sidebar.NodeTypeAction, nodes[0].Type)
	assert.Equal(t, sidebar.ActionKindAPI, nodes[0].Data.Type)
	assert.True(t, strings.HasPrefix(nodes[0].ID, sidebar.NodeTypeAction+"_"))
	assert.Contains(t, m.status, nodes[0].ID)

	m = press(t, m, "esc")
	assert.False(t, m.service.Session.Searching())
	assert.Equal(t, "Recently Used", m.rows[0].Label)
	assert.Equal(t, "Close Outlook", m.rows[1].Label)
}

func TestStaleResultsAreIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeQuery(t, m, "excel")
	before := len(m.rows)

	m.apply(m.service.Engine.Search("outlook", models.CorpusLocal))
	assert.Len(t, m.rows, before)
}

func TestCorpusSwitchAndInstall(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeQuery(t, m, "toggl")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(Model)
	assert.Equal(t, models.CorpusLibrary, m.service.Session.SearchTab())
	next, _ = m.Update(waitForResults(m.results)())
	m = next.(Model)

	require.Equal(t, modeLibrary, m.mode)
	require.Len(t, m.apps, 1)
	assert.False(t, m.apps[0].Installed)

	m = press(t, m, "enter")
	next, _ = m.Update(waitForResults(m.results)())
	m = next.(Model)
	require.Len(t, m.apps, 1)
	assert.True(t, m.apps[0].Installed)

	m = press(t, m, "x")
	require.True(t, m.confirm.Active)
	assert.Contains(t, m.View(), "Uninstall Toggl?")

	next, _ = m.Update(confirm.ConfirmedMsg{Subject: "toggl"})
	m = next.(Model)
	ids, err := m.service.Installed.InstalledIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPremiumFilterToggle(t *testing.T) {
	m, _ := newTestModel(t)
	require.NoError(t, m.service.Install("asana"))
	m = press(t, m, "tab")

	find := func(m Model) bool {
		for _, r := range m.rows {
			if r.Label == "Get Asana data" {
				return true
			}
		}
		return false
	}
	assert.True(t, find(m))

	m = press(t, m, "p")
	assert.False(t, find(m))
	assert.Contains(t, m.View(), "[x] Hide Premium actions")

	m = press(t, m, "p")
	assert.True(t, find(m))
}

func TestMoveSkipsHeaders(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "tab")
	for i := 0; i < 30; i++ {
		m = press(t, m, "down")
		r, ok := m.selectedRow()
		require.True(t, ok)
		assert.True(t, r.Selectable())
	}
}

func TestNextSort(t *testing.T) {
	assert.Equal(t, models.SortDateAdded, nextSort(models.SortAlpha, true))
	assert.Equal(t, models.SortPopular, nextSort(models.SortDateAdded, true))
	assert.Equal(t, models.SortAlpha, nextSort(models.SortPopular, true))
	assert.Equal(t, models.SortPopular, nextSort(models.SortAlpha, false))
}
