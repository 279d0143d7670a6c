package models

import "time"

// AppCategory is one of the fixed connector categories.
type AppCategory struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// App is an installable third-party connector.
type App struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	Category    string `yaml:"category" json:"category"`
	Premium     bool   `yaml:"premium,omitempty" json:"premium"`
	DateAdded   string `yaml:"dateAdded,omitempty" json:"date_added,omitempty"`

	// Installed is filled in by callers that know the installed set.
	Installed bool `yaml:"-" json:"installed"`
}

// AddedAt parses DateAdded. The boolean is false when the date is missing or
// malformed.
func (a App) AddedAt() (time.Time, bool) {
	if a.DateAdded == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, a.DateAdded)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
