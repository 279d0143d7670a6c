package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePremium map[string]bool

func (f fakePremium) IsPremiumConnectorAction(name string) bool { return f[name] }

func TestShouldHide(t *testing.T) {
	f := New(fakePremium{"Send SharePoint file": true})

	tests := []struct {
		name   string
		action string
		active Set
		hidden bool
	}{
		{"no filters", "Send SharePoint file", NewSet(), false},
		{"premium filter hides premium", "Send SharePoint file", NewSet(Premium), true},
		{"premium filter keeps regular", "Send email", NewSet(Premium), false},
		{"dlp filter", "Apply DLP policy", NewSet(DLP), true},
		{"dlp filter is case insensitive", "Run dlp scan", NewSet(DLP), true},
		{"dlp filter keeps premium", "Send SharePoint file", NewSet(DLP), false},
		{"both filters", "Send SharePoint file", NewSet(DLP, Premium), true},
		{"unknown filter is inert", "Apply DLP policy", NewSet("hidden-stuff"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hidden, f.ShouldHide(tt.action, tt.active))
		})
	}
}

func TestNilSetHidesNothing(t *testing.T) {
	f := New(fakePremium{"x": true})
	assert.False(t, f.ShouldHide("x", nil))
}

func TestPredicateSnapshotsSet(t *testing.T) {
	f := New(fakePremium{"x": true})
	active := NewSet(Premium)
	hide := f.Predicate(active)
	delete(active, Premium)

	assert.True(t, hide("x"))
}

func TestSetOperations(t *testing.T) {
	s := Parse("premium, dlp,,bogus")
	assert.True(t, s.Has(Premium))
	assert.True(t, s.Has(DLP))
	assert.Equal(t, []ID{"bogus", DLP, Premium}, s.IDs())

	toggled := s.Toggle(DLP)
	assert.False(t, toggled.Has(DLP))
	assert.True(t, s.Has(DLP), "toggle returns a copy")

	assert.True(t, Known(DLP))
	assert.False(t, Known("bogus"))
	assert.Len(t, Options(), 2)
}
