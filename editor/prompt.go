package editor

import (
	"fmt"

	"kilo/logging"
	"kilo/search"
	"kilo/terminal"
)

// PromptHook is told about every key typed into a prompt, along with the
// text entered so far.
type PromptHook interface {
	OnKey(input string, key terminal.Key)
}

// PromptFunc adapts an ordinary function to a PromptHook.
type PromptFunc func(input string, key terminal.Key)

// OnKey calls f(input, key).
func (f PromptFunc) OnKey(input string, key terminal.Key) { f(input, key) }

// Prompt shows format (with %s replaced by the input) on the message line
// and collects a line of text. ok is false when the user pressed Escape.
// hook may be nil.
func (e *Editor) Prompt(format string, hook PromptHook) (input string, ok bool, err error) {
	var buf []byte
	for {
		e.SetStatusMessage(format, buf)
		if err := e.refresh(); err != nil {
			return "", false, err
		}

		key, err := e.keys.ReadKey()
		if err != nil {
			return "", false, err
		}

		switch {
		case key == terminal.Delete || key == terminal.Ctrl('h') || key == terminal.Backspace:
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}
		case key == terminal.Escape:
			e.SetStatusMessage("")
			if hook != nil {
				hook.OnKey(string(buf), key)
			}
			return "", false, nil
		case key == terminal.Enter:
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if hook != nil {
					hook.OnKey(string(buf), key)
				}
				return string(buf), true, nil
			}
		case !key.IsControl() && key < 128:
			buf = append(buf, byte(key))
		}

		if hook != nil {
			hook.OnKey(string(buf), key)
		}
	}
}

// find runs an incremental search. Escape puts the cursor back where it was.
func (e *Editor) find() error {
	finder := search.NewFinder(e.doc, &e.view)
	_, _, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", finder)
	return err
}

// save writes the buffer to its file, asking for a name the first time.
// Failures to write are reported on the message line, not returned.
func (e *Editor) save() error {
	if e.filename == "" {
		name, ok, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if !ok {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.filename = name
	}

	n, err := e.doc.WriteFile(e.filename)
	if err != nil {
		logging.LogError("save "+e.filename, err)
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	logging.LogEvent("SAVE", fmt.Sprintf("%s (%d bytes)", e.filename, n))
	e.SetStatusMessage("%d bytes written to disk", n)
	return nil
}
