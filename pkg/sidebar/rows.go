// Package sidebar flattens section views into the rows a sidebar renders,
// and windows them for a fixed-height viewport.
package sidebar

import (
	"github.com/mattsolo1/grove-palette/pkg/sections"
)

// NoVisibleMessage is shown under a section whose items are all filtered out.
const NoVisibleMessage = "No actions visible with current filters"

// RowKind discriminates rendered rows.
type RowKind int

const (
	RowHeader RowKind = iota
	RowSubgroup
	RowAction
	RowEmptyState
	RowNoVisible
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowSubgroup:
		return "subgroup"
	case RowAction:
		return "action"
	case RowEmptyState:
		return "empty"
	case RowNoVisible:
		return "no-visible"
	}
	return "unknown"
}

// Row is one line of the sidebar.
type Row struct {
	Kind     RowKind
	Section  string
	Subgroup string

	// Label is the action name, subgroup name, section title or empty-state title.
	Label       string
	Description string
	Path        string
	Icon        string
	Color       string

	// Count is the result count on a header while searching and the visible
	// item count on a subgroup.
	Count    int
	Expanded bool
	Indent   int

	Favorite  bool
	Starrable bool
	Premium   bool
	Disabled  bool
}

// Selectable reports whether the row reacts to activation.
func (r Row) Selectable() bool {
	return r.Kind == RowAction || r.Kind == RowSubgroup
}

// Options supplies per-row state to Build.
type Options struct {
	Expanded    func(section, subgroup string) bool
	IsFavorite  func(action string) bool
	IsPremium   func(action string) bool
	PremiumUser bool
	Searching   bool
}

func (o Options) withDefaults() Options {
	if o.Expanded == nil {
		o.Expanded = func(string, string) bool { return false }
	}
	if o.IsFavorite == nil {
		o.IsFavorite = func(string) bool { return false }
	}
	if o.IsPremium == nil {
		o.IsPremium = func(string) bool { return false }
	}
	return o
}

// Build flattens views into rows. Within a section, subgroups come before
// top-level items, and collapsed subgroups contribute only their header row.
func Build(views []sections.View, opts Options) []Row {
	o := opts.withDefaults()
	var rows []Row
	for _, v := range views {
		sec := v.Section
		header := Row{
			Kind:    RowHeader,
			Section: sec.Category,
			Label:   sec.Category,
			Icon:    sec.Icon,
			Color:   sec.Color,
		}
		if o.Searching {
			header.Count = sec.ItemCount()
		}
		rows = append(rows, header)

		switch {
		case v.ShowEmptyState:
			rows = append(rows, Row{
				Kind:        RowEmptyState,
				Section:     sec.Category,
				Label:       sec.EmptyState.Title,
				Description: sec.EmptyState.Description,
				Icon:        sec.EmptyState.Icon,
			})
			continue
		case v.AllHidden:
			rows = append(rows, Row{Kind: RowNoVisible, Section: sec.Category, Label: NoVisibleMessage})
			continue
		}

		starrable := sec.Category != sections.RecentlyUsedCategory
		action := func(name, subgroup string, indent int) Row {
			premium := o.IsPremium(name)
			return Row{
				Kind:      RowAction,
				Section:   sec.Category,
				Subgroup:  subgroup,
				Label:     name,
				Path:      sec.ItemPaths[name],
				Icon:      sec.Icon,
				Color:     sec.Color,
				Indent:    indent,
				Favorite:  o.IsFavorite(name),
				Starrable: starrable,
				Premium:   premium,
				Disabled:  premium && !o.PremiumUser,
			}
		}

		for _, sg := range v.Subgroups {
			expanded := o.Expanded(sec.Category, sg.Name)
			rows = append(rows, Row{
				Kind:     RowSubgroup,
				Section:  sec.Category,
				Subgroup: sg.Name,
				Label:    sg.Name,
				Count:    len(sg.Items),
				Expanded: expanded,
			})
			if !expanded {
				continue
			}
			for _, it := range sg.Items {
				rows = append(rows, action(it, sg.Name, 2))
			}
		}
		for _, it := range v.VisibleItems {
			rows = append(rows, action(it, "", 1))
		}
	}
	return rows
}
