package terminal

// Key is one logical key event. Values 0-255 are raw bytes; named keys that
// arrive as escape sequences are numbered from 1000 up.
type Key int

const (
	Enter     Key = '\r'
	Escape    Key = '\x1b'
	Backspace Key = 127
)

const (
	ArrowLeft Key = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	Delete
	Home
	End
	PageUp
	PageDown
)

// Ctrl returns the key produced by holding Ctrl with c.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// IsControl reports whether k is an ASCII control byte.
func (k Key) IsControl() bool {
	return (k >= 0 && k < 32) || k == 127
}

// ByteSource is the raw input stream. NextByte waits a bounded time for one
// byte; ok is false when that wait elapsed with nothing to read.
type ByteSource interface {
	NextByte() (b byte, ok bool, err error)
}

type decodeState int

const (
	stateStart decodeState = iota
	stateEscape
	stateForeign // ESC followed by something other than '['
	stateBracket
	stateDigit
)

// Decoder turns the byte stream into key events.
type Decoder struct {
	src ByteSource
}

// NewDecoder returns a decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// ReadKey blocks until one key event is available. Escape sequences are read
// with bounded lookahead; a timeout or an unknown sequence yields Escape.
// Only a failure of the underlying source is returned as an error.
func (d *Decoder) ReadKey() (Key, error) {
	state := stateStart
	var digit byte
	for {
		b, ok, err := d.src.NextByte()
		if err != nil {
			return 0, err
		}
		if !ok {
			if state == stateStart {
				continue
			}
			return Escape, nil
		}

		switch state {
		case stateStart:
			if b != '\x1b' {
				return Key(b), nil
			}
			state = stateEscape
		case stateEscape:
			if b == '[' {
				state = stateBracket
			} else {
				state = stateForeign
			}
		case stateForeign:
			return Escape, nil
		case stateBracket:
			if b >= '0' && b <= '9' {
				digit = b
				state = stateDigit
				continue
			}
			return bracketKey(b), nil
		case stateDigit:
			if b != '~' {
				return Escape, nil
			}
			return tildeKey(digit), nil
		}
	}
}

// bracketKey maps ESC [ letter.
func bracketKey(b byte) Key {
	switch b {
	case 'A':
		return ArrowUp
	case 'B':
		return ArrowDown
	case 'C':
		return ArrowRight
	case 'D':
		return ArrowLeft
	case 'H':
		return Home
	case 'F':
		return End
	}
	return Escape
}

// tildeKey maps ESC [ digit ~.
func tildeKey(digit byte) Key {
	switch digit {
	case '1', '7':
		return Home
	case '3':
		return Delete
	case '4', '8':
		return End
	case '5':
		return PageUp
	case '6':
		return PageDown
	}
	return Escape
}
