package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"kilo/logging"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by EnterRawMode when input is not a tty.
var ErrNotTerminal = errors.New("not a terminal")

// Session owns the terminal mode transition and the attributes captured
// before it, and puts them back on every exit path.
type Session struct {
	in  *os.File
	out *os.File

	// mutex to protect the saved state from the signal watcher
	mu       sync.Mutex
	original unix.Termios
	inRaw    bool
	inAlt    bool
	sigs     chan os.Signal
	done     chan struct{}

	exit func(code int)
}

// NewSession returns a session reading keys from in and drawing to out.
func NewSession(in, out *os.File) *Session {
	return &Session{in: in, out: out, exit: os.Exit}
}

// EnterRawMode saves the current attributes and switches the terminal to raw
// mode with a 100ms read timeout. Restoration is guaranteed by LeaveRawMode
// (which callers defer), by Die, and by a watcher for termination signals.
func (s *Session) EnterRawMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inRaw {
		return nil
	}
	fd := s.in.Fd()
	if !term.IsTerminal(int(fd)) {
		return fmt.Errorf("tcgetattr: %w", ErrNotTerminal)
	}
	if err := termios.Tcgetattr(fd, &s.original); err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	raw := s.original
	// Input modes: no break, no CR-to-NL, no parity check, no strip char, no start/stop control.
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output modes: disable post processing.
	raw.Oflag &^= unix.OPOST
	// Control modes: set 8-bit chars.
	raw.Cflag |= unix.CS8
	// Local modes: echoing off, canonical off, no extended functions, no signal chars.
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// Return from read after at most a tenth of a second, even with nothing read.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := termios.Tcsetattr(fd, termios.TCSAFLUSH, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	s.inRaw = true
	s.watchSignals()
	return nil
}

// EnterAlternateScreen switches to the terminal's alternate screen buffer so
// the shell's scrollback is left untouched. LeaveRawMode switches back.
func (s *Session) EnterAlternateScreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inAlt {
		return nil
	}
	if _, err := io.WriteString(s.out, AltScreenOn); err != nil {
		return fmt.Errorf("alternate screen: %w", err)
	}
	s.inAlt = true
	return nil
}

// LeaveRawMode leaves the alternate screen and restores the attributes
// captured by EnterRawMode, draining pending output and discarding unread
// input first. Safe to call repeatedly.
func (s *Session) LeaveRawMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restoreLocked()
}

func (s *Session) restoreLocked() error {
	if s.inAlt {
		io.WriteString(s.out, AltScreenOff)
		s.inAlt = false
	}
	if !s.inRaw {
		return nil
	}
	if s.sigs != nil {
		signal.Stop(s.sigs)
		close(s.done)
		s.sigs, s.done = nil, nil
	}
	s.inRaw = false
	if err := termios.Tcsetattr(s.in.Fd(), termios.TCSAFLUSH, &s.original); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// watchSignals takes the Die path if the process is told to terminate.
// ISIG is off, so these only arrive from outside (kill, hangup).
func (s *Session) watchSignals() {
	s.sigs = make(chan os.Signal, 1)
	s.done = make(chan struct{})
	signal.Notify(s.sigs, unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT)

	sigs, done := s.sigs, s.done
	go func() {
		select {
		case sig := <-sigs:
			s.dieTo(s.out, "signal", errors.New(sig.String()))
		case <-done:
		}
	}()
}

// Die is the fatal error path: clear the screen so the message is legible,
// restore the terminal, report err and exit with status 1.
func (s *Session) Die(context string, err error) {
	s.dieTo(s.out, context, err)
}

func (s *Session) dieTo(w io.Writer, context string, err error) {
	io.WriteString(w, ClearScreen)
	io.WriteString(w, CursorHome)
	s.LeaveRawMode()
	logging.LogError(context, err)
	fmt.Fprintf(os.Stderr, "kilo: %s: %v\n", context, err)
	s.exit(1)
}

// NextByte performs one bounded-wait read. ok is false when the read timed
// out with nothing available.
func (s *Session) NextByte() (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := unix.Read(int(s.in.Fd()), buf[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read: %w", err)
	}
	if n != 1 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// WindowSize returns the terminal dimensions in rows and columns. When the
// ioctl route is unavailable it asks the terminal where the cursor ends up
// after being pushed into the bottom-right corner.
func (s *Session) WindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(s.out.Fd()))
	if err == nil && cols != 0 {
		return rows, cols, nil
	}
	if _, err := io.WriteString(s.out, cursorFarCorner); err != nil {
		return 0, 0, fmt.Errorf("getWindowSize: %w", err)
	}
	return s.cursorPosition()
}

func (s *Session) cursorPosition() (rows, cols int, err error) {
	if _, err := io.WriteString(s.out, cursorReport); err != nil {
		return 0, 0, fmt.Errorf("getCursorPosition: %w", err)
	}
	var reply []byte
	for len(reply) < 31 {
		b, ok, err := s.NextByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok || b == 'R' {
			break
		}
		reply = append(reply, b)
	}
	return ParseCursorReport(reply)
}

// ParseCursorReport parses a device status reply of the form ESC [ rows ; cols,
// with or without the terminating R.
func ParseCursorReport(reply []byte) (rows, cols int, err error) {
	reply = bytes.TrimSuffix(reply, []byte("R"))
	if len(reply) < 2 || reply[0] != '\x1b' || reply[1] != '[' {
		return 0, 0, fmt.Errorf("malformed cursor report %q", reply)
	}
	if n, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil || n != 2 {
		return 0, 0, fmt.Errorf("malformed cursor report %q", reply)
	}
	return rows, cols, nil
}
