// Package screen draws the editor: the visible slice of the document, a
// status bar and a message line, assembled into one frame and written with
// a single call.
package screen

import (
	"bytes"
	"fmt"
	"io"

	"kilo/buffer"
	"kilo/config"
	"kilo/terminal"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// View is the cursor and the viewport origin. CX indexes the row's chars,
// RX the row's render; RowOff and ColOff are the first visible row and
// render column. CY may equal NumRows, the empty line past the end.
type View struct {
	CX, CY         int
	RX             int
	RowOff, ColOff int
}

// StatusBar is the text drawn below the document.
type StatusBar struct {
	Filename string
	Dirty    bool
	Message  string
}

// Screen renders frames of Rows text lines by Cols columns, plus the two
// bar lines beneath them.
type Screen struct {
	Rows, Cols int

	w       io.Writer
	printer *message.Printer
}

// New returns a screen writing to w. rows is the number of text lines,
// i.e. the window height less the status bar and message line.
func New(w io.Writer, rows, cols int) *Screen {
	return &Screen{
		Rows:    rows,
		Cols:    cols,
		w:       w,
		printer: message.NewPrinter(language.English),
	}
}

// Scroll recomputes v.RX and moves the viewport by the least amount that
// brings the cursor back into view.
func (s *Screen) Scroll(doc *buffer.Document, v *View) {
	v.RX = 0
	if row := doc.Row(v.CY); row != nil {
		v.RX = row.CxToRx(v.CX)
	}

	if v.CY < v.RowOff {
		v.RowOff = v.CY
	}
	if v.CY >= v.RowOff+s.Rows {
		v.RowOff = v.CY - s.Rows + 1
	}
	if v.RX < v.ColOff {
		v.ColOff = v.RX
	}
	if v.RX >= v.ColOff+s.Cols {
		v.ColOff = v.RX - s.Cols + 1
	}
}

// Refresh scrolls, then draws one complete frame.
func (s *Screen) Refresh(doc *buffer.Document, v *View, bar StatusBar) error {
	s.Scroll(doc, v)

	var frame bytes.Buffer
	frame.WriteString(terminal.HideCursor)
	frame.WriteString(terminal.CursorHome)

	s.drawRows(&frame, doc, v)
	s.drawStatusBar(&frame, doc, v, bar)
	s.drawMessageBar(&frame, bar.Message)

	frame.WriteString(terminal.MoveCursor(v.CY-v.RowOff+1, v.RX-v.ColOff+1))
	frame.WriteString(terminal.ShowCursor)

	if _, err := s.w.Write(frame.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Clear blanks the terminal and homes the cursor.
func (s *Screen) Clear() error {
	_, err := io.WriteString(s.w, terminal.ClearScreen+terminal.CursorHome)
	return err
}

func (s *Screen) drawRows(frame *bytes.Buffer, doc *buffer.Document, v *View) {
	for y := 0; y < s.Rows; y++ {
		fileRow := y + v.RowOff
		if row := doc.Row(fileRow); row != nil {
			n := row.RSize() - v.ColOff
			if n > s.Cols {
				n = s.Cols
			}
			if n > 0 {
				frame.Write(row.Render()[v.ColOff : v.ColOff+n])
			}
		} else if doc.NumRows() == 0 && y == s.Rows/3 {
			s.drawWelcome(frame)
		} else {
			frame.WriteByte('~')
		}

		frame.WriteString(terminal.ClearLineRight)
		frame.WriteString("\r\n")
	}
}

func (s *Screen) drawWelcome(frame *bytes.Buffer) {
	welcome := fmt.Sprintf("Kilo editor -- version %s", config.Version)
	if len(welcome) > s.Cols {
		welcome = welcome[:s.Cols]
	}
	padding := (s.Cols - len(welcome)) / 2
	if padding > 0 {
		frame.WriteByte('~')
		padding--
	}
	frame.Write(bytes.Repeat([]byte{' '}, padding))
	frame.WriteString(welcome)
}

func (s *Screen) drawStatusBar(frame *bytes.Buffer, doc *buffer.Document, v *View, bar StatusBar) {
	name := bar.Filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if bar.Dirty {
		modified = " (modified)"
	}
	status := s.printer.Sprintf("%.20s - %d lines%s", name, doc.NumRows(), modified)
	rstatus := s.printer.Sprintf("%d/%d", v.CY+1, doc.NumRows())

	if len(status) > s.Cols {
		status = status[:s.Cols]
	}
	frame.WriteString(terminal.ReverseVideo)
	frame.WriteString(status)
	for n := len(status); n < s.Cols; n++ {
		if s.Cols-n == len(rstatus) {
			frame.WriteString(rstatus)
			break
		}
		frame.WriteByte(' ')
	}
	frame.WriteString(terminal.ResetVideo)
	frame.WriteString("\r\n")
}

func (s *Screen) drawMessageBar(frame *bytes.Buffer, msg string) {
	frame.WriteString(terminal.ClearLineRight)
	if len(msg) > s.Cols {
		msg = msg[:s.Cols]
	}
	frame.WriteString(msg)
}
