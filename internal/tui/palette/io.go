package palette

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-palette/pkg/search"
)

type resultsMsg struct {
	results search.Results
}

// latest returns a publisher that keeps only the newest result in ch.
// Publishing runs under the debouncer lock and must not block.
func latest(ch chan search.Results) func(search.Results) {
	return func(r search.Results) {
		for {
			select {
			case ch <- r:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	}
}

func waitForResults(ch <-chan search.Results) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return resultsMsg{results: r}
	}
}
