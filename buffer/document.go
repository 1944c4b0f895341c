package buffer

// Document is the ordered list of rows being edited. Every mutating method
// validates its indices before touching anything, so a call either applies
// fully or not at all.
type Document struct {
	rows  []*Row
	dirty int
}

// NewDocument returns an empty, clean document.
func NewDocument() *Document {
	return &Document{}
}

// NumRows returns the number of rows.
func (d *Document) NumRows() int { return len(d.rows) }

// Row returns row y, or nil when y is out of range.
func (d *Document) Row(y int) *Row {
	if y < 0 || y >= len(d.rows) {
		return nil
	}
	return d.rows[y]
}

// Dirty reports whether there are changes since the last save.
func (d *Document) Dirty() bool { return d.dirty > 0 }

// DirtyCount returns the number of changes since the last save.
func (d *Document) DirtyCount() int { return d.dirty }

// ClearDirty marks the document as saved.
func (d *Document) ClearDirty() { d.dirty = 0 }

// InsertRow inserts a row holding a copy of b at index at. Inserting at
// NumRows appends.
func (d *Document) InsertRow(at int, b []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = NewRow(b)
	d.dirty++
}

// DeleteRow removes row at.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty++
}

// InsertChar inserts c into row y at offset at, clamping at to the end of the row.
func (d *Document) InsertChar(y, at int, c byte) {
	row := d.Row(y)
	if row == nil {
		return
	}
	row.insertChar(at, c)
	d.dirty++
}

// DeleteChar removes the byte at offset at of row y.
func (d *Document) DeleteChar(y, at int) {
	row := d.Row(y)
	if row == nil {
		return
	}
	if row.deleteChar(at) {
		d.dirty++
	}
}

// AppendBytes appends b to the end of row y.
func (d *Document) AppendBytes(y int, b []byte) {
	row := d.Row(y)
	if row == nil {
		return
	}
	row.appendBytes(b)
	d.dirty++
}

// Truncate cuts row y down to its first at bytes.
func (d *Document) Truncate(y, at int) {
	row := d.Row(y)
	if row == nil {
		return
	}
	row.truncate(at)
	d.dirty++
}
