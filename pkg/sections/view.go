package sections

import "github.com/mattsolo1/grove-palette/pkg/models"

// SubgroupView is a subgroup with at least one visible item.
type SubgroupView struct {
	Name  string
	Items []string
	Total int
}

// View is a section annotated with its visibility under the active filters.
type View struct {
	Section      models.ActionSection
	VisibleItems []string
	Subgroups    []SubgroupView

	// AllHidden is set when the section has items but the filters hide every
	// one of them. It is never set for a section that is simply empty.
	AllHidden bool

	// ShowEmptyState is set when the section has no items at all and carries
	// an empty-state descriptor.
	ShowEmptyState bool
}

// VisibleCount returns the number of visible items including subgroups.
func (v View) VisibleCount() int {
	n := len(v.VisibleItems)
	for _, sg := range v.Subgroups {
		n += len(sg.Items)
	}
	return n
}

// Views applies hide to every item. A nil hide shows everything.
func Views(sections []models.ActionSection, hide func(string) bool) []View {
	if hide == nil {
		hide = func(string) bool { return false }
	}
	out := make([]View, 0, len(sections))
	for _, sec := range sections {
		v := View{Section: sec}
		for _, it := range sec.Items {
			if !hide(it) {
				v.VisibleItems = append(v.VisibleItems, it)
			}
		}
		for _, sg := range sec.Subgroups {
			sv := SubgroupView{Name: sg.Name, Total: len(sg.Items)}
			for _, it := range sg.Items {
				if !hide(it) {
					sv.Items = append(sv.Items, it)
				}
			}
			if len(sv.Items) > 0 {
				v.Subgroups = append(v.Subgroups, sv)
			}
		}

		total := sec.ItemCount()
		v.ShowEmptyState = len(sec.Items) == 0 && sec.EmptyState != nil
		v.AllHidden = total > 0 && v.VisibleCount() == 0
		out = append(out, v)
	}
	return out
}
