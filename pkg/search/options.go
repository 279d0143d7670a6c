package search

import "github.com/mattsolo1/grove-palette/pkg/models"

type searchOptions struct {
	installed  []string
	sort       models.SortMode
	categories []string
	authors    []string
}

// Option configures a search.
type Option func(*searchOptions)

// WithInstalled supplies the installed connector ids. They add synthesized
// sections to the Connectors group of local results and set App.Installed on
// library results.
func WithInstalled(ids []string) Option {
	return func(o *searchOptions) {
		o.installed = append([]string(nil), ids...)
	}
}

// SortedBy selects the ordering of library and template results.
// The default is alphabetical.
func SortedBy(mode models.SortMode) Option {
	return func(o *searchOptions) {
		o.sort = mode
	}
}

// InCategories restricts library results to app categories (by label) and
// template results to those mentioning one of the category keywords.
func InCategories(labels ...string) Option {
	return func(o *searchOptions) {
		o.categories = append(o.categories, labels...)
	}
}

// ByAuthors restricts template results to the given authors.
func ByAuthors(authors ...string) Option {
	return func(o *searchOptions) {
		o.authors = append(o.authors, authors...)
	}
}

func buildOptions(opts []Option) *searchOptions {
	o := &searchOptions{sort: models.SortAlpha}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
