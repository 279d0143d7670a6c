package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-palette/internal/tui/theme"
	"github.com/mattsolo1/grove-palette/pkg/filter"
	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/sidebar"
)

func (m Model) View() string {
	t := theme.DefaultTheme
	var b strings.Builder

	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderCorpusTabs())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n")

	if m.confirm.Active {
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderBody())
	}

	switch {
	case m.err != nil:
		b.WriteString(t.Error.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(t.Info.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderNav() string {
	t := theme.DefaultTheme
	active := m.service.Session.ActiveTab()
	var parts []string
	for _, tab := range navOrder {
		style := t.Tab
		if tab == active {
			style = t.ActiveTab
		}
		parts = append(parts, style.Render(tab.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderCorpusTabs() string {
	t := theme.DefaultTheme
	s := m.service.Session
	if !s.Searching() {
		return t.Muted.Render(fmt.Sprintf("%d actions", m.service.Catalog.TotalActionCount()))
	}
	labels := map[models.Corpus]string{
		models.CorpusLocal:     "Local",
		models.CorpusLibrary:   "Library",
		models.CorpusTemplates: "Templates",
	}
	var parts []string
	for _, c := range corpora {
		style := t.Tab
		if c == s.SearchTab() {
			style = t.ActiveTab
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s (%d)", labels[c], m.counts[c])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderFilters() string {
	t := theme.DefaultTheme
	active := m.service.Session.Filters()
	var parts []string
	for _, opt := range filter.Options() {
		mark := "[ ]"
		if active.Has(opt.ID) {
			mark = "[x]"
		}
		parts = append(parts, fmt.Sprintf("%s %s", mark, opt.Label))
	}
	line := strings.Join(parts, "  ")
	if m.mode != modeSections {
		line += "  sort: " + string(m.sortMode)
	}
	return t.Muted.Render(line)
}

func (m Model) renderBody() string {
	h := m.bodyHeight()
	var lines []string

	switch m.mode {
	case modeLibrary:
		lines = m.renderApps(h)
	case modeTemplates:
		lines = m.renderTemplates(h)
	default:
		w := sidebar.Slice(m.rows, m.offset, h)
		for i, r := range w.Rows {
			selected := w.Offset+i == m.cursor && !(w.Sticky && i == 0)
			lines = append(lines, m.renderRow(r, selected))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, theme.DefaultTheme.Muted.Render(m.emptyMessage()))
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) emptyMessage() string {
	switch m.mode {
	case modeLibrary:
		return "No connectors found. Try searching for something else or browse the library"
	case modeTemplates:
		return "No templates found"
	}
	return "No matching actions"
}

func cursorPrefix(selected bool) string {
	if selected {
		return theme.DefaultTheme.Highlight.Render(theme.IconCursor)
	}
	return "  "
}

func (m Model) renderRow(r sidebar.Row, selected bool) string {
	t := theme.DefaultTheme
	switch r.Kind {
	case sidebar.RowHeader:
		line := theme.Token(r.Color).Render("■") + " " + t.Header.Render(r.Label)
		if r.Count > 0 {
			line += " " + t.Muted.Render(fmt.Sprintf("%d results", r.Count))
		}
		return line
	case sidebar.RowEmptyState:
		return "    " + r.Label + " " + t.Muted.Render(r.Description)
	case sidebar.RowNoVisible:
		return "    " + t.Disabled.Render(r.Label)
	case sidebar.RowSubgroup:
		icon := theme.IconFolded
		if r.Expanded {
			icon = theme.IconExpanded
		}
		line := fmt.Sprintf("%s %s %s", icon, r.Label, t.Muted.Render(fmt.Sprintf("(%d)", r.Count)))
		if selected {
			line = t.Selected.Render(line)
		}
		return cursorPrefix(selected) + line
	}

	star := " "
	if r.Starrable {
		star = t.Muted.Render(theme.IconStarOff)
		if r.Favorite {
			star = t.Favorite.Render(theme.IconStar)
		}
	}
	label := r.Label
	if r.Disabled {
		label = t.Disabled.Render(label)
	}
	if r.Premium && r.Disabled {
		label += " " + t.Premium.Render(theme.IconPremium)
	}
	if r.Path != "" {
		label += "  " + t.Muted.Render(r.Path)
	}
	line := strings.Repeat(" ", r.Indent*2) + star + " " + label
	if selected {
		line = t.Selected.Render(line)
	}
	return cursorPrefix(selected) + line
}

func window(offset, total, height int) (int, int) {
	offset = sidebar.ClampOffset(offset, total, height)
	end := offset + height
	if end > total {
		end = total
	}
	return offset, end
}

func (m Model) renderApps(h int) []string {
	t := theme.DefaultTheme
	start, end := window(m.offset, len(m.apps), h)
	var lines []string
	for i := start; i < end; i++ {
		app := m.apps[i]
		mark := "  "
		if app.Installed {
			mark = t.Success.Render("✓ ")
		}
		name := theme.Token(app.Color).Render(app.Name)
		if app.Premium {
			name += " " + t.Premium.Render(theme.IconPremium)
		}
		line := mark + name + "  " + t.Muted.Render(app.Description)
		if i == m.cursor {
			line = t.Selected.Render(line)
		}
		lines = append(lines, cursorPrefix(i == m.cursor)+line)
	}
	return lines
}

func (m Model) renderTemplates(h int) []string {
	t := theme.DefaultTheme
	start, end := window(m.offset, len(m.templates), h)
	var lines []string
	for i := start; i < end; i++ {
		tpl := m.templates[i]
		title := tpl.Title
		if title == "" {
			title = "(untitled)"
		}
		var dots []string
		for _, ua := range tpl.PreviewActions() {
			dots = append(dots, theme.Token(ua.Color).Render("●"))
		}
		line := strings.Join(dots, "") + " " + title
		if tpl.Author != "" {
			line += "  " + t.Muted.Render("by "+tpl.Author)
		}
		if i == m.cursor {
			line = t.Selected.Render(line)
		}
		lines = append(lines, cursorPrefix(i == m.cursor)+line)
	}
	return lines
}
