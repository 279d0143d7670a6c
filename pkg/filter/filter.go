// Package filter implements the named visibility filters of the sidebar.
package filter

import (
	"sort"
	"strings"
)

// ID names a visibility filter.
type ID string

const (
	DLP     ID = "dlp"
	Premium ID = "premium"
)

// Option describes a filter for display in a picker.
type Option struct {
	ID          ID
	Label       string
	Description string
}

var options = []Option{
	{ID: DLP, Label: "Hide DLP actions", Description: "Data Loss Prevention actions"},
	{ID: Premium, Label: "Hide Premium actions", Description: "Premium-tier features"},
}

// Options lists the recognised filters.
func Options() []Option {
	return append([]Option(nil), options...)
}

// Known reports whether id is a recognised filter.
func Known(id ID) bool {
	for _, o := range options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Set is a set of active filter ids. Unknown ids may be present and are inert.
type Set map[ID]struct{}

// NewSet builds a Set from ids.
func NewSet(ids ...ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Parse builds a Set from comma separated ids, as given on the command line.
func Parse(csv string) Set {
	s := make(Set)
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			s[ID(part)] = struct{}{}
		}
	}
	return s
}

func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Toggle returns a copy with id flipped.
func (s Set) Toggle(id ID) Set {
	out := s.Clone()
	if out.Has(id) {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the members in sorted order.
func (s Set) IDs() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PremiumChecker classifies action names as premium.
type PremiumChecker interface {
	IsPremiumConnectorAction(actionName string) bool
}

// Filter evaluates visibility of actions.
type Filter struct {
	premium PremiumChecker
}

func New(premium PremiumChecker) *Filter {
	return &Filter{premium: premium}
}

// ShouldHide reports whether actionName is hidden under active. It is a pure
// predicate; callers re-evaluate it whenever the active set changes.
func (f *Filter) ShouldHide(actionName string, active Set) bool {
	if active.Has(Premium) && f.premium != nil && f.premium.IsPremiumConnectorAction(actionName) {
		return true
	}
	if active.Has(DLP) && strings.Contains(strings.ToLower(actionName), "dlp") {
		return true
	}
	return false
}

// Predicate binds an active set, for code that only needs a func(string) bool.
func (f *Filter) Predicate(active Set) func(string) bool {
	bound := active.Clone()
	return func(actionName string) bool {
		return f.ShouldHide(actionName, bound)
	}
}
