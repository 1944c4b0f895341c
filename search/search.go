// Package search implements incremental search over a document's rendered
// rows, driven one keystroke at a time by the editor's prompt.
package search

import (
	"bytes"

	"kilo/buffer"
	"kilo/screen"
	"kilo/terminal"
)

// Finder moves the cursor to matches as the query changes. It remembers the
// last matching row so arrow keys step to the next or previous match.
type Finder struct {
	doc  *buffer.Document
	view *screen.View

	saved     screen.View
	lastMatch int // -1 when there is none
	direction int // 1 forward, -1 backward
}

// NewFinder returns a finder for doc that moves v, saving v so a cancelled
// search can put it back.
func NewFinder(doc *buffer.Document, v *screen.View) *Finder {
	return &Finder{
		doc:       doc,
		view:      v,
		saved:     *v,
		lastMatch: -1,
		direction: 1,
	}
}

// OnKey is called after every keystroke in the search prompt with the
// current query and the key just pressed.
func (f *Finder) OnKey(query string, key terminal.Key) {
	switch key {
	case terminal.Enter, terminal.Escape:
		f.lastMatch = -1
		f.direction = 1
		if key == terminal.Escape {
			*f.view = f.saved
		}
		return
	case terminal.ArrowRight, terminal.ArrowDown:
		f.direction = 1
	case terminal.ArrowLeft, terminal.ArrowUp:
		f.direction = -1
	default:
		f.lastMatch = -1
		f.direction = 1
	}

	if f.lastMatch == -1 {
		f.direction = 1
	}
	// An empty query matches at the start of the next row.
	f.find([]byte(query))
}

func (f *Finder) find(query []byte) {
	n := f.doc.NumRows()
	current := f.lastMatch
	for i := 0; i < n; i++ {
		current += f.direction
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}

		row := f.doc.Row(current)
		match := bytes.Index(row.Render(), query)
		if match < 0 {
			continue
		}
		f.lastMatch = current
		f.view.CY = current
		f.view.CX = row.RxToCx(match)
		// Past the last row, so the next scroll brings the match to the top.
		f.view.RowOff = n
		return
	}
}

// LastMatch returns the row of the most recent match, or -1.
func (f *Finder) LastMatch() int {
	return f.lastMatch
}
