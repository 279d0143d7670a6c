package models

// UsedAction is an icon/colour pair previewed on a template card.
type UsedAction struct {
	Icon  string `yaml:"icon" json:"icon"`
	Color string `yaml:"color" json:"color"`
}

// TemplateCategory is a keyword facet for templates. Templates carry no
// category field; a category matches by keyword in title or description.
type TemplateCategory struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Template is a prebuilt example flow.
type Template struct {
	ID          string       `yaml:"id" json:"id"`
	Title       string       `yaml:"title" json:"title"`
	Description string       `yaml:"description" json:"description"`
	Author      string       `yaml:"author,omitempty" json:"author,omitempty"`
	UsedActions []UsedAction `yaml:"usedActions,omitempty" json:"used_actions,omitempty"`
}

// PreviewActions returns at most the first three used actions.
func (t Template) PreviewActions() []UsedAction {
	if len(t.UsedActions) <= 3 {
		return t.UsedActions
	}
	return t.UsedActions[:3]
}
