// Package editor ties the pieces together: it owns the document, cursor and
// screen, reads one key at a time and applies it.
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"kilo/buffer"
	"kilo/config"
	"kilo/logging"
	"kilo/screen"
	"kilo/terminal"
)

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Editor holds the state of the text editor
type Editor struct {
	doc    *buffer.Document
	view   screen.View
	screen *screen.Screen
	keys   *terminal.Decoder
	cfg    *config.Config

	filename   string // empty until the buffer has been named
	statusMsg  string
	statusTime time.Time
	quitTimes  int // Ctrl-Q presses left before a dirty buffer is discarded

	now func() time.Time
}

// New returns an editor with an empty document.
func New(keys *terminal.Decoder, scr *screen.Screen, cfg *config.Config) *Editor {
	e := &Editor{
		doc:       buffer.NewDocument(),
		screen:    scr,
		keys:      keys,
		cfg:       cfg,
		quitTimes: cfg.QuitTimes,
		now:       time.Now,
	}
	e.SetStatusMessage(helpMessage)
	return e
}

// Open loads filename into the editor. A file that does not exist yet
// gives an empty buffer that will be created on save.
func (e *Editor) Open(filename string) error {
	doc, err := buffer.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.doc = buffer.NewDocument()
			e.filename = filename
			e.view = screen.View{}
			e.SetStatusMessage("New file: %s", filename)
			logging.LogEvent("OPEN", filename+" (new)")
			return nil
		}
		return err
	}
	e.doc = doc
	e.filename = filename
	e.view = screen.View{}
	logging.LogEvent("OPEN", fmt.Sprintf("%s (%d lines)", filename, doc.NumRows()))
	return nil
}

// Document returns the buffer being edited.
func (e *Editor) Document() *buffer.Document { return e.doc }

// View returns a copy of the cursor and viewport state.
func (e *Editor) View() screen.View { return e.view }

// Filename returns the file the buffer is saved to, or "" if it has none.
func (e *Editor) Filename() string { return e.filename }

// StatusMessage returns the message line text, or "" once it has expired.
func (e *Editor) StatusMessage() string {
	if e.now().Sub(e.statusTime) >= e.cfg.MessageTimeout {
		return ""
	}
	return e.statusMsg
}

// SetStatusMessage shows a formatted message on the message line.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = e.now()
}

// Run draws, reads a key and applies it until the user quits. The returned
// error is a failure of the terminal, which the caller treats as fatal.
func (e *Editor) Run() error {
	for {
		if err := e.refresh(); err != nil {
			return err
		}
		key, err := e.keys.ReadKey()
		if err != nil {
			return err
		}
		quit, err := e.ProcessKey(key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (e *Editor) refresh() error {
	return e.screen.Refresh(e.doc, &e.view, screen.StatusBar{
		Filename: e.filename,
		Dirty:    e.doc.Dirty(),
		Message:  e.StatusMessage(),
	})
}
