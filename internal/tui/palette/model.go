// Package palette is the interactive action sidebar.
package palette

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-palette/internal/tui/components/confirm"
	"github.com/mattsolo1/grove-palette/pkg/canvas"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/search"
	"github.com/mattsolo1/grove-palette/pkg/service"
	"github.com/mattsolo1/grove-palette/pkg/sidebar"
)

type listMode int

const (
	modeSections listMode = iota
	modeLibrary
	modeTemplates
)

// chrome is the number of lines used around the list: nav, search, corpus
// tabs, filters, status and help.
const chrome = 7

// navOrder is the order tab/shift+tab cycle through.
var navOrder = func() []models.Tab {
	var out []models.Tab
	for _, it := range models.MainNavItems {
		out = append(out, it.ID)
	}
	for _, it := range models.BottomNavItems {
		out = append(out, it.ID)
	}
	return out
}()

var corpora = []models.Corpus{models.CorpusLocal, models.CorpusLibrary, models.CorpusTemplates}

// Model is the main model for the palette TUI
type Model struct {
	service *service.Service
	flow    *canvas.Flow
	live    *search.LiveSearch
	results chan search.Results
	ctx     context.Context
	cancel  context.CancelFunc

	keys    KeyMap
	help    help.Model
	input   textinput.Model
	confirm confirm.Model

	mode      listMode
	sections  []models.ActionSection
	rows      []sidebar.Row
	apps      []models.App
	templates []models.Template
	counts    map[models.Corpus]int
	sortMode  models.SortMode

	cursor int
	offset int
	width  int
	height int

	typing bool
	status string
	err    error
}

// New creates the palette model. Nodes dropped with the drop key are added
// to flow.
func New(svc *service.Service, flow *canvas.Flow) Model {
	input := textinput.New()
	input.Placeholder = "Search across all actions"
	input.Prompt = "/ "
	input.CharLimit = 120

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan search.Results, 1)

	m := Model{
		service:  svc,
		flow:     flow,
		results:  results,
		ctx:      ctx,
		cancel:   cancel,
		keys:     keys,
		help:     help.New(),
		input:    input,
		confirm:  confirm.New(),
		counts:   make(map[models.Corpus]int),
		sortMode: models.SortAlpha,
		height:   24,
	}
	m.live = svc.Live(latest(results))
	m.reload()
	return m
}

// Init starts listening for search results.
func (m Model) Init() tea.Cmd {
	return waitForResults(m.results)
}

// listLen returns the number of entries the cursor moves over.
func (m *Model) listLen() int {
	switch m.mode {
	case modeLibrary:
		return len(m.apps)
	case modeTemplates:
		return len(m.templates)
	}
	return len(m.rows)
}

func (m *Model) bodyHeight() int {
	h := m.height - chrome
	if m.help.ShowAll {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	return h
}

// selectedRow returns the row under the cursor in sections mode.
func (m *Model) selectedRow() (sidebar.Row, bool) {
	if m.mode != modeSections || m.cursor < 0 || m.cursor >= len(m.rows) {
		return sidebar.Row{}, false
	}
	return m.rows[m.cursor], true
}
