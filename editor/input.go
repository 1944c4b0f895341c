package editor

import (
	"fmt"

	"kilo/logging"
	"kilo/terminal"
)

// ProcessKey applies one key press. quit is true when the editor should
// exit; err is only set when reading further keys (in a prompt) failed.
func (e *Editor) ProcessKey(key terminal.Key) (quit bool, err error) {
	switch key {
	case terminal.Enter:
		e.insertNewline()

	case terminal.Ctrl('q'):
		if e.doc.Dirty() && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING!!! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitTimes)
			logging.LogAlert(fmt.Sprintf("quit requested with unsaved changes, %d confirmations left", e.quitTimes))
			e.quitTimes--
			return false, nil
		}
		logging.LogEvent("QUIT", e.filename)
		return true, e.screen.Clear()

	case terminal.Ctrl('s'):
		err = e.save()

	case terminal.Home:
		e.view.CX = 0
	case terminal.End:
		if row := e.doc.Row(e.view.CY); row != nil {
			e.view.CX = row.Size()
		}

	case terminal.Ctrl('f'):
		err = e.find()

	case terminal.Backspace, terminal.Ctrl('h'), terminal.Delete:
		if key == terminal.Delete {
			e.moveCursor(terminal.ArrowRight)
		}
		e.deleteChar()

	case terminal.PageUp, terminal.PageDown:
		if key == terminal.PageUp {
			e.view.CY = e.view.RowOff
		} else {
			e.view.CY = e.view.RowOff + e.screen.Rows - 1
			if e.view.CY > e.doc.NumRows() {
				e.view.CY = e.doc.NumRows()
			}
		}
		dir := terminal.ArrowDown
		if key == terminal.PageUp {
			dir = terminal.ArrowUp
		}
		for i := 0; i < e.screen.Rows; i++ {
			e.moveCursor(dir)
		}

	case terminal.ArrowUp, terminal.ArrowDown, terminal.ArrowLeft, terminal.ArrowRight:
		e.moveCursor(key)

	case terminal.Ctrl('l'), terminal.Escape:
		// nothing to do

	default:
		if key >= 0 && key <= 255 {
			e.insertChar(byte(key))
		}
	}

	// Any key other than Ctrl-Q starts the countdown again.
	e.quitTimes = e.cfg.QuitTimes
	return false, err
}

// moveCursor moves one step and snaps CX to the length of the new row.
func (e *Editor) moveCursor(key terminal.Key) {
	v := &e.view
	row := e.doc.Row(v.CY)

	switch key {
	case terminal.ArrowLeft:
		if v.CX != 0 {
			v.CX--
		} else if v.CY > 0 {
			v.CY--
			v.CX = e.doc.Row(v.CY).Size()
		}
	case terminal.ArrowRight:
		if row != nil && v.CX < row.Size() {
			v.CX++
		} else if row != nil && v.CX == row.Size() {
			v.CY++
			v.CX = 0
		}
	case terminal.ArrowUp:
		if v.CY != 0 {
			v.CY--
		}
	case terminal.ArrowDown:
		if v.CY < e.doc.NumRows() {
			v.CY++
		}
	}

	rowLen := 0
	if row := e.doc.Row(v.CY); row != nil {
		rowLen = row.Size()
	}
	if v.CX > rowLen {
		v.CX = rowLen
	}
}

// insertChar inserts c at the cursor, opening a row first when the cursor
// is on the line past the end.
func (e *Editor) insertChar(c byte) {
	if e.view.CY == e.doc.NumRows() {
		e.doc.InsertRow(e.doc.NumRows(), nil)
	}
	e.doc.InsertChar(e.view.CY, e.view.CX, c)
	e.view.CX++
}

// insertNewline splits the current row at the cursor.
func (e *Editor) insertNewline() {
	v := &e.view
	if v.CX == 0 {
		e.doc.InsertRow(v.CY, nil)
	} else {
		row := e.doc.Row(v.CY)
		e.doc.InsertRow(v.CY+1, row.Chars()[v.CX:])
		e.doc.Truncate(v.CY, v.CX)
	}
	v.CY++
	v.CX = 0
}

// deleteChar removes the byte left of the cursor. At the start of a row it
// joins the row onto the previous one.
func (e *Editor) deleteChar() {
	v := &e.view
	if v.CY == e.doc.NumRows() {
		return
	}
	if v.CX == 0 && v.CY == 0 {
		return
	}

	if v.CX > 0 {
		e.doc.DeleteChar(v.CY, v.CX-1)
		v.CX--
		return
	}
	prev := e.doc.Row(v.CY - 1)
	v.CX = prev.Size()
	e.doc.AppendBytes(v.CY-1, e.doc.Row(v.CY).Chars())
	e.doc.DeleteRow(v.CY)
	v.CY--
}
