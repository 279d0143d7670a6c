package sidebar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-palette/pkg/models"
	"github.com/mattsolo1/grove-palette/pkg/sections"
)

func kinds(rows []Row) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r.Kind.String()+":"+r.Label)
	}
	return out
}

func fixtureViews(hide func(string) bool) []sections.View {
	recent := sections.RecentlyUsedEmpty
	return sections.Views([]models.ActionSection{
		{Category: sections.RecentlyUsedCategory, Items: []string{}, EmptyState: &recent},
		{Category: "Email", Icon: "Mail", Items: []string{"Send email", "DocuSign send"}, Subgroups: []models.Subgroup{
			{Name: "Outlook", Items: []string{"Move message", "Send message"}},
			{Name: "Gmail", Items: []string{"Label message"}},
		}},
		{Category: "DLP", Items: []string{"Apply DLP policy"}},
	}, hide)
}

func TestBuildRows(t *testing.T) {
	views := fixtureViews(func(s string) bool { return strings.Contains(strings.ToLower(s), "dlp") })

	rows := Build(views, Options{
		Expanded:   func(sec, sg string) bool { return sec == "Email" && sg == "Outlook" },
		IsFavorite: func(a string) bool { return a == "Send email" },
		IsPremium:  func(a string) bool { return strings.HasPrefix(a, "DocuSign") },
	})

	assert.Equal(t, []string{
		"header:Recently Used",
		"empty:No recent actions",
		"header:Email",
		"subgroup:Outlook",
		"action:Move message",
		"action:Send message",
		"subgroup:Gmail",
		"action:Send email",
		"action:DocuSign send",
		"header:DLP",
		"no-visible:" + NoVisibleMessage,
	}, kinds(rows))

	outlook := rows[3]
	assert.True(t, outlook.Expanded)
	assert.Equal(t, 2, outlook.Count)
	assert.False(t, rows[6].Expanded)

	assert.Equal(t, 2, rows[4].Indent)
	assert.Equal(t, "Outlook", rows[4].Subgroup)

	send := rows[7]
	assert.True(t, send.Favorite)
	assert.True(t, send.Starrable)
	assert.Equal(t, "Mail", send.Icon)
	assert.False(t, send.Premium)

	docusign := rows[8]
	assert.True(t, docusign.Premium)
	assert.True(t, docusign.Disabled)

	assert.Zero(t, rows[2].Count, "counts only show while searching")
}

func TestBuildPremiumUserAndRecents(t *testing.T) {
	recent := sections.RecentlyUsedEmpty
	views := sections.Views([]models.ActionSection{
		{Category: sections.RecentlyUsedCategory, Items: []string{"DocuSign send"}, EmptyState: &recent},
	}, nil)

	rows := Build(views, Options{
		IsPremium:   func(string) bool { return true },
		PremiumUser: true,
		Searching:   true,
	})
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Count)
	assert.True(t, rows[1].Premium)
	assert.False(t, rows[1].Disabled)
	assert.False(t, rows[1].Starrable, "recently used rows have no star")
}

func TestBuildSearchPaths(t *testing.T) {
	views := sections.Views(sections.FromLocalResults(nil), nil)
	assert.Empty(t, Build(views, Options{}))

	sec := models.ActionSection{
		Category:  "Connectors",
		Items:     []string{"Send Outlook message"},
		ItemPaths: map[string]string{"Send Outlook message": "Email › Outlook"},
	}
	rows := Build(sections.Views([]models.ActionSection{sec}, nil), Options{Searching: true})
	require.Len(t, rows, 2)
	assert.Equal(t, "Email › Outlook", rows[1].Path)
}

func numberedRows() []Row {
	// h0 a1 a2 a3 h4 a5 a6
	var rows []Row
	for i, k := range []RowKind{RowHeader, RowAction, RowAction, RowAction, RowHeader, RowAction, RowAction} {
		rows = append(rows, Row{Kind: k, Label: string(rune('0' + i))})
	}
	return rows
}

func TestSlice(t *testing.T) {
	rows := numberedRows()

	w := Slice(rows, 0, 3)
	assert.False(t, w.Sticky)
	assert.Equal(t, []string{"header:0", "action:1", "action:2"}, kinds(w.Rows))

	w = Slice(rows, 2, 3)
	assert.True(t, w.Sticky)
	assert.Equal(t, []string{"header:0", "action:3", "header:4"}, kinds(w.Rows))

	w = Slice(rows, 4, 3)
	assert.False(t, w.Sticky)

	w = Slice(rows, 100, 3)
	assert.Equal(t, 4, w.Offset)

	w = Slice(rows, -5, 100)
	assert.Equal(t, 0, w.Offset)
	assert.Len(t, w.Rows, len(rows))

	assert.Empty(t, Slice(nil, 0, 3).Rows)
	assert.Empty(t, Slice(rows, 0, 0).Rows)
}

func TestSliceDoesNotMutateRows(t *testing.T) {
	rows := numberedRows()
	Slice(rows, 2, 3)
	assert.Equal(t, RowAction, rows[2].Kind)
}

func TestFollow(t *testing.T) {
	assert.Equal(t, 0, Follow(0, 2, 7, 3))
	assert.Equal(t, 2, Follow(0, 4, 7, 3))
	assert.Equal(t, 1, Follow(3, 2, 7, 3), "cursor under the sticky line scrolls up")
	assert.Equal(t, 0, Follow(3, 0, 7, 3))
	assert.Equal(t, 4, Follow(0, 6, 7, 3))
	assert.Equal(t, 0, Follow(5, 1, 7, 0))
}

func TestDragPayload(t *testing.T) {
	_, err := DragPayloadFor(Row{Kind: RowHeader, Label: "Email"})
	assert.Error(t, err)

	p, err := DragPayloadFor(Row{Kind: RowAction, Label: "DocuSign send", Premium: true})
	require.NoError(t, err)

	b, err := p.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"action","data":{"label":"DocuSign send","type":"api","premium":true}}`, string(b))

	back, err := DecodeDragPayload(b)
	require.NoError(t, err)
	assert.Equal(t, p, back)

	b, err = DragPayload{Type: NodeTypeAction, Data: DragData{Label: "Send email", Type: ActionKindAPI}}.Encode()
	require.NoError(t, err)
	assert.NotContains(t, string(b), "premium")

	_, err = DecodeDragPayload([]byte(`{"data":{}}`))
	assert.Error(t, err)
	_, err = DecodeDragPayload([]byte(`not json`))
	assert.Error(t, err)
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		name                  string
		offset, total, height int
		want                  int
	}{
		{"in range", 3, 20, 5, 3},
		{"past the end", 18, 20, 5, 15},
		{"negative", -2, 20, 5, 0},
		{"shorter than viewport", 4, 3, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampOffset(tt.offset, tt.total, tt.height))
		})
	}
}
