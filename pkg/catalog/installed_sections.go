package catalog

import (
	"fmt"

	"github.com/mattsolo1/grove-palette/pkg/models"
)

var appActionTemplates = []string{
	"Get %s data",
	"Create %s item",
	"Update %s item",
	"Delete %s item",
	"Search %s",
	"Connect to %s",
	"Authenticate with %s",
}

// AppSection synthesizes the action section shown for an installed app.
func AppSection(app models.App) models.ActionSection {
	items := make([]string, len(appActionTemplates))
	for i, tpl := range appActionTemplates {
		items[i] = fmt.Sprintf(tpl, app.Name)
	}
	return models.ActionSection{
		Category:   app.Name,
		Icon:       app.Icon,
		Color:      app.Color,
		Background: BackgroundColor(app.Color),
		Items:      SortedStrings(items),
	}
}

// InstalledSections returns one synthesized section per installed id, in the
// given order. Ids missing from the catalog are skipped.
func (s *Store) InstalledSections(installedIDs []string) []models.ActionSection {
	var out []models.ActionSection
	for _, id := range installedIDs {
		app, ok := s.App(id)
		if !ok {
			continue
		}
		out = append(out, AppSection(app))
	}
	return out
}
