package palette

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-palette/internal/tui/components/confirm"
	"github.com/mattsolo1/grove-palette/pkg/canvas"
	"github.com/mattsolo1/grove-palette/pkg/filter"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/search"
	"github.com/mattsolo1/grove-palette/pkg/sections"
	"github.com/mattsolo1/grove-palette/pkg/session"
	"github.com/mattsolo1/grove-palette/pkg/sidebar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.follow()
		return m, nil

	case resultsMsg:
		m.apply(msg.results)
		return m, waitForResults(m.results)

	case confirm.ConfirmedMsg:
		if err := m.service.Uninstall(msg.Subject); err != nil {
			m.err = err
		} else {
			m.status = fmt.Sprintf("Uninstalled %s", msg.Subject)
		}
		m.refresh()
		return m, nil

	case confirm.CancelledMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return m, cmd
		}
		if m.typing {
			return m.updateTyping(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.typing = false
		m.input.Blur()
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.service.Session.SetQuery(v)
		m.cursor, m.offset = 0, 0
		m.issue()
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.service.Session
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.live.Cancel()
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.move(-m.bodyHeight() / 2)
	case key.Matches(msg, m.keys.PageDown):
		m.move(m.bodyHeight() / 2)
	case key.Matches(msg, m.keys.GoToTop):
		m.cursor = 0
		m.clampCursor(1)
	case key.Matches(msg, m.keys.GoToBottom):
		m.cursor = m.listLen() - 1
		m.clampCursor(-1)

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)

	case key.Matches(msg, m.keys.Search):
		m.typing = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		if s.Searching() {
			s.SetQuery("")
			m.input.SetValue("")
			m.cursor, m.offset = 0, 0
			m.issue()
		}

	case key.Matches(msg, m.keys.NextCorpus):
		if s.Searching() {
			s.SetSearchTab(nextCorpus(s.SearchTab()))
			m.cursor, m.offset = 0, 0
			m.issue()
		}

	case key.Matches(msg, m.keys.Activate):
		m.activate()
	case key.Matches(msg, m.keys.Favorite):
		if r, ok := m.selectedRow(); ok && r.Kind == sidebar.RowAction && r.Starrable {
			if s.ToggleFavorite(r.Label) {
				m.status = fmt.Sprintf("Added %q to favorites", r.Label)
			} else {
				m.status = fmt.Sprintf("Removed %q from favorites", r.Label)
			}
			m.afterMutation()
		}
	case key.Matches(msg, m.keys.Drop):
		m.drop()

	case key.Matches(msg, m.keys.FilterPremium):
		s.ToggleFilter(filter.Premium)
		m.afterMutation()
	case key.Matches(msg, m.keys.FilterDLP):
		s.ToggleFilter(filter.DLP)
		m.afterMutation()

	case key.Matches(msg, m.keys.Sort):
		m.sortMode = nextSort(m.sortMode, m.mode == modeLibrary)
		m.refresh()

	case key.Matches(msg, m.keys.Uninstall):
		if m.mode == modeLibrary && m.cursor < len(m.apps) && m.apps[m.cursor].Installed {
			app := m.apps[m.cursor]
			m.confirm.Activate(fmt.Sprintf("Uninstall %s?", app.Name), app.ID)
		}
	}
	return m, nil
}

func (m *Model) activate() {
	switch m.mode {
	case modeLibrary:
		if m.cursor >= len(m.apps) {
			return
		}
		app := m.apps[m.cursor]
		if app.Installed {
			m.status = fmt.Sprintf("%s is installed (x to uninstall)", app.Name)
			return
		}
		if err := m.service.Install(app.ID); err != nil {
			m.err = err
			return
		}
		m.status = fmt.Sprintf("Installed %s", app.Name)
		m.refresh()

	case modeTemplates:
		if m.cursor >= len(m.templates) {
			return
		}
		tpl := m.templates[m.cursor]
		m.status = fmt.Sprintf("Template %q", tpl.Title)
		if tpl.Author != "" {
			m.status += " by " + tpl.Author
		}

	default:
		r, ok := m.selectedRow()
		if !ok {
			return
		}
		switch r.Kind {
		case sidebar.RowSubgroup:
			m.service.Session.ToggleSubgroup(r.Section, r.Subgroup)
			m.rebuild()
		case sidebar.RowAction:
			switch m.service.Session.RecordUsed(r.Label) {
			case session.OutcomeDisabled:
				m.status = fmt.Sprintf("Premium feature: %s", r.Label)
			case session.OutcomeRecorded:
				m.status = fmt.Sprintf("Executed %s", r.Label)
				m.afterMutation()
			}
		}
	}
}

func (m *Model) drop() {
	r, ok := m.selectedRow()
	if !ok || m.flow == nil {
		return
	}
	payload, err := sidebar.DragPayloadFor(r)
	if err != nil {
		return
	}
	b, err := payload.Encode()
	if err != nil {
		m.err = err
		return
	}
	pos := canvas.Position{X: 100, Y: float64(40 * (len(m.flow.Nodes()) + 1))}
	node, err := m.flow.DropEncoded(b, pos)
	if err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("Added node %s", node.ID)
}

func (m *Model) switchTab(delta int) {
	s := m.service.Session
	idx := 0
	for i, t := range navOrder {
		if t == s.ActiveTab() {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(navOrder)) % len(navOrder)
	if err := s.SetActiveTab(navOrder[idx]); err != nil {
		m.err = err
		return
	}
	m.live.Cancel()
	m.input.SetValue("")
	m.cursor, m.offset = 0, 0
	m.status = ""
	m.reload()
}

// issue starts a search for the session query, or shows the unsearched tab
// when the query is empty.
func (m *Model) issue() {
	if !m.service.Session.Searching() {
		m.live.Cancel()
		m.reload()
		return
	}
	if err := m.service.IssueSearch(m.ctx, m.live, search.SortedBy(m.sortMode)); err != nil {
		m.err = err
	}
}

// refresh recomputes content after the installed set or sort changed.
func (m *Model) refresh() {
	if m.service.Session.Searching() {
		m.issue()
		return
	}
	m.reload()
}

// afterMutation updates rows after favorites, recents or filters changed.
func (m *Model) afterMutation() {
	if m.service.Session.Searching() {
		m.rebuild()
		return
	}
	m.reload()
}

// reload computes the unsearched content of the active tab.
func (m *Model) reload() {
	s := m.service.Session
	if s.Searching() {
		return
	}
	switch s.ActiveTab() {
	case models.TabTemplates:
		m.mode = modeTemplates
		m.templates = m.service.Templates("", search.SortedBy(m.sortMode))
	case models.TabLibrary:
		res, err := m.service.Search("", models.CorpusLibrary, search.SortedBy(m.sortMode))
		if err != nil {
			m.err = err
			return
		}
		m.mode = modeLibrary
		m.apps = res.Library
	default:
		secs, err := m.service.CurrentSections()
		if err != nil {
			m.err = err
			return
		}
		m.mode = modeSections
		m.sections = secs
		m.rebuild()
	}
	m.clampCursor(1)
}

func (m *Model) rebuild() {
	m.rows = m.service.Rows(m.sections)
	m.clampCursor(1)
}

// apply shows published results unless the query has moved on since.
func (m *Model) apply(r search.Results) {
	s := m.service.Session
	if r.Query != s.Query() || r.Corpus != s.SearchTab() {
		return
	}

	m.counts[r.Corpus] = r.Count()
	for _, c := range corpora {
		if c == r.Corpus {
			continue
		}
		if res, err := m.service.Search(r.Query, c); err == nil {
			m.counts[c] = res.Count()
		}
	}

	switch r.Corpus {
	case models.CorpusLibrary:
		m.mode = modeLibrary
		m.apps = r.Library
	case models.CorpusTemplates:
		m.mode = modeTemplates
		m.templates = r.Templates
	default:
		m.mode = modeSections
		m.sections = sections.FromLocalResults(r.Local)
		m.rows = m.service.Rows(m.sections)
	}
	m.clampCursor(1)
}

// move steps the cursor by delta entries, skipping rows that cannot be
// selected.
func (m *Model) move(delta int) {
	if m.listLen() == 0 {
		return
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	target := m.cursor + delta
	if target < 0 {
		target = 0
	}
	if target >= m.listLen() {
		target = m.listLen() - 1
	}
	prev := m.cursor
	m.cursor = target
	if !m.clampCursor(dir) {
		m.cursor = prev
	}
	m.follow()
}

// clampCursor brings the cursor into range and onto a selectable entry,
// searching in direction dir first. It reports whether one was found.
func (m *Model) clampCursor(dir int) bool {
	n := m.listLen()
	if n == 0 {
		m.cursor, m.offset = 0, 0
		return false
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.mode != modeSections {
		m.follow()
		return true
	}
	for _, d := range []int{dir, -dir} {
		for i := m.cursor; i >= 0 && i < n; i += d {
			if m.rows[i].Selectable() {
				m.cursor = i
				m.follow()
				return true
			}
		}
	}
	m.follow()
	return false
}

func (m *Model) follow() {
	m.offset = sidebar.Follow(m.offset, m.cursor, m.listLen(), m.bodyHeight())
}

func nextCorpus(c models.Corpus) models.Corpus {
	for i, cc := range corpora {
		if cc == c {
			return corpora[(i+1)%len(corpora)]
		}
	}
	return models.CorpusLocal
}

func nextSort(mode models.SortMode, library bool) models.SortMode {
	switch mode {
	case models.SortAlpha:
		if library {
			return models.SortDateAdded
		}
		return models.SortPopular
	case models.SortDateAdded:
		return models.SortPopular
	}
	return models.SortAlpha
}
