package terminal

import "fmt"

// VT100 sequences used by the editor.
const (
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	CursorHome     = "\x1b[H"
	ClearScreen    = "\x1b[2J"
	ClearLineRight = "\x1b[K"
	ReverseVideo   = "\x1b[7m"
	ResetVideo     = "\x1b[m"
	AltScreenOn    = "\x1b[?1049h"
	AltScreenOff   = "\x1b[?1049l"

	// Moving 999 right and down clamps at the bottom-right corner.
	cursorFarCorner = "\x1b[999C\x1b[999B"
	cursorReport    = "\x1b[6n"
)

// MoveCursor returns the sequence placing the cursor at the 1-indexed row and column.
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}
