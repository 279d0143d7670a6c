package models

// EmptyState describes what to show when a section legitimately has no items.
type EmptyState struct {
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Subgroup is a second-level grouping of actions inside a section.
type Subgroup struct {
	Name  string   `yaml:"name" json:"name"`
	Items []string `yaml:"items" json:"items"`
}

// ActionSection is a named category of actions.
//
// Actions are identified by their display name only. Two different actions
// that share a literal name are indistinguishable to favorites, recents and
// premium classification.
type ActionSection struct {
	Category   string      `yaml:"category" json:"category"`
	Icon       string      `yaml:"icon,omitempty" json:"icon,omitempty"`
	Color      string      `yaml:"color,omitempty" json:"color,omitempty"`
	Background string      `yaml:"background,omitempty" json:"background,omitempty"`
	Items      []string    `yaml:"items" json:"items"`
	Subgroups  []Subgroup  `yaml:"subgroups,omitempty" json:"subgroups,omitempty"`
	EmptyState *EmptyState `yaml:"emptyState,omitempty" json:"empty_state,omitempty"`

	// ItemPaths maps an action to the category path it was found under
	// ("Section" or "Section › Subgroup"). Only set on search result sections.
	ItemPaths map[string]string `yaml:"-" json:"item_paths,omitempty"`
}

// Clone returns a deep copy of the section so derived views never share
// backing arrays with catalog data.
func (s ActionSection) Clone() ActionSection {
	out := s
	out.Items = append([]string(nil), s.Items...)
	if s.Subgroups != nil {
		out.Subgroups = make([]Subgroup, len(s.Subgroups))
		for i, sg := range s.Subgroups {
			out.Subgroups[i] = Subgroup{Name: sg.Name, Items: append([]string(nil), sg.Items...)}
		}
	}
	if s.EmptyState != nil {
		es := *s.EmptyState
		out.EmptyState = &es
	}
	if s.ItemPaths != nil {
		out.ItemPaths = make(map[string]string, len(s.ItemPaths))
		for k, v := range s.ItemPaths {
			out.ItemPaths[k] = v
		}
	}
	return out
}

// ItemCount returns the number of top-level and subgroup items.
func (s ActionSection) ItemCount() int {
	n := len(s.Items)
	for _, sg := range s.Subgroups {
		n += len(sg.Items)
	}
	return n
}

// AllItems returns top-level items followed by every subgroup's items.
func (s ActionSection) AllItems() []string {
	out := make([]string, 0, s.ItemCount())
	out = append(out, s.Items...)
	for _, sg := range s.Subgroups {
		out = append(out, sg.Items...)
	}
	return out
}
