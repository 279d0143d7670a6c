package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mattsolo1/grove-palette/pkg/models"
)

// Fold returns the case-folded form of s used for every case-insensitive
// comparison in the palette. A Caser is stateful, so one is made per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr is within s, ignoring case.
// The empty substring matches everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(Fold(s), Fold(substr))
}

// Compare orders strings case-insensitively, breaking ties on the raw bytes
// so the order is total and stable across runs.
func Compare(a, b string) int {
	if c := strings.Compare(Fold(a), Fold(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less is Compare(a, b) < 0.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// SortedStrings returns a sorted copy of items.
func SortedStrings(items []string) []string {
	out := append([]string(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// SortSections returns copies of sections ordered by category, with items and
// subgroups (by name, then their items) sorted as well.
func SortSections(sections []models.ActionSection) []models.ActionSection {
	out := make([]models.ActionSection, len(sections))
	for i, sec := range sections {
		c := sec.Clone()
		c.Items = SortedStrings(c.Items)
		for j := range c.Subgroups {
			c.Subgroups[j].Items = SortedStrings(c.Subgroups[j].Items)
		}
		sort.SliceStable(c.Subgroups, func(a, b int) bool {
			return Less(c.Subgroups[a].Name, c.Subgroups[b].Name)
		})
		out[i] = c
	}
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i].Category, out[j].Category) })
	return out
}
