package buffer

// TabStop is the column multiple a tab advances to.
const TabStop = 8

// Row is one line of text. chars holds the raw bytes with an explicit length,
// so zero bytes are ordinary data; render is chars with tabs expanded and is
// rebuilt after every change to chars.
type Row struct {
	chars  []byte
	render []byte
}

// NewRow returns a row holding a copy of b.
func NewRow(b []byte) *Row {
	r := &Row{chars: append([]byte(nil), b...)}
	r.update()
	return r
}

// Chars returns the row's bytes. The slice must not be modified.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the row as drawn, with tabs expanded.
func (r *Row) Render() []byte { return r.render }

// Size returns the number of bytes in the row.
func (r *Row) Size() int { return len(r.chars) }

// RSize returns the width of the rendered row.
func (r *Row) RSize() int { return len(r.render) }

// update rebuilds render from chars.
func (r *Row) update() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(r.chars)+tabs*(TabStop-1))
	for _, c := range r.chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%TabStop != 0 {
			render = append(render, ' ')
		}
	}
	r.render = render
}

// CxToRx converts an offset into chars to a column in render.
func (r *Row) CxToRx(cx int) int {
	cx = clamp(cx, 0, len(r.chars))
	rx := 0
	for _, c := range r.chars[:cx] {
		rx = advance(rx, c)
	}
	return rx
}

// RxToCx converts a render column back to an offset into chars. A column
// inside a tab's expansion maps to the tab; a column past the end maps to
// Size().
func (r *Row) RxToCx(rx int) int {
	cur := 0
	for cx, c := range r.chars {
		cur = advance(cur, c)
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}

// advance returns the render column following byte c drawn at column rx.
func advance(rx int, c byte) int {
	if c == '\t' {
		rx += (TabStop - 1) - rx%TabStop
	}
	return rx + 1
}

func (r *Row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.update()
}

func (r *Row) deleteChar(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update()
	return true
}

func (r *Row) appendBytes(b []byte) {
	r.chars = append(r.chars, b...)
	r.update()
}

func (r *Row) truncate(at int) {
	r.chars = r.chars[:clamp(at, 0, len(r.chars))]
	r.update()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
