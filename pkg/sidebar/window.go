package sidebar

// Window is the slice of rows visible in a viewport.
type Window struct {
	// Offset is the clamped index of the first visible row.
	Offset int
	Rows   []Row

	// Sticky is set when the first line shows the header of a section whose
	// own header row has scrolled out of view.
	Sticky bool
}

// Slice returns the rows visible at offset in a viewport of height lines.
// When the top row is not a header, the header of its section is pinned in
// the first line in place of it.
func Slice(rows []Row, offset, height int) Window {
	if height <= 0 || len(rows) == 0 {
		return Window{}
	}
	offset = ClampOffset(offset, len(rows), height)
	end := offset + height
	if end > len(rows) {
		end = len(rows)
	}

	w := Window{Offset: offset, Rows: append([]Row(nil), rows[offset:end]...)}
	if rows[offset].Kind == RowHeader {
		return w
	}
	for i := offset - 1; i >= 0; i-- {
		if rows[i].Kind == RowHeader {
			w.Rows[0] = rows[i]
			w.Sticky = true
			break
		}
	}
	return w
}

// ClampOffset keeps offset within [0, total-height].
func ClampOffset(offset, total, height int) int {
	limit := total - height
	if limit < 0 {
		limit = 0
	}
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Follow returns the offset that keeps cursor visible, scrolling as little as
// possible. The first line may be covered by a sticky header, so a cursor
// above the top row's successor scrolls up.
func Follow(offset, cursor, total, height int) int {
	if height <= 0 {
		return 0
	}
	switch {
	case cursor < offset+1 && cursor > 0:
		offset = cursor - 1
	case cursor <= 0:
		offset = 0
	case cursor >= offset+height:
		offset = cursor - height + 1
	}
	return ClampOffset(offset, total, height)
}
