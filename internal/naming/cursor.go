package naming

// Cursor is a read position within a name. It is a value type: every step
// returns a new Cursor and leaves the receiver untouched.
type Cursor struct {
	src string
	pos int
}

// NewCursor returns a Cursor positioned at the first byte of s.
func NewCursor(s string) Cursor {
	return Cursor{src: s}
}

// Pos returns the byte offset of the cursor within the source.
func (c Cursor) Pos() int {
	return c.pos
}

// Done reports whether the cursor has consumed the whole source.
func (c Cursor) Done() bool {
	return c.pos >= len(c.src)
}

// Peek returns the byte under the cursor, or 0 when Done.
func (c Cursor) Peek() byte {
	if c.Done() {
		return 0
	}
	return c.src[c.pos]
}

// Prev returns the byte immediately before the cursor.
// ok is false at the start of the source.
func (c Cursor) Prev() (b byte, ok bool) {
	if c.pos == 0 || c.pos > len(c.src) {
		return 0, false
	}
	return c.src[c.pos-1], true
}

// Advance returns a cursor moved one byte forward.
// Advancing a Done cursor returns it unchanged.
func (c Cursor) Advance() Cursor {
	if c.Done() {
		return c
	}
	return Cursor{src: c.src, pos: c.pos + 1}
}

// SkipRun returns a cursor moved past every consecutive occurrence of b,
// together with the number of bytes skipped.
func (c Cursor) SkipRun(b byte) (Cursor, int) {
	next := c
	for !next.Done() && next.src[next.pos] == b {
		next.pos++
	}
	return next, next.pos - c.pos
}

// Rest returns the unread part of the source.
func (c Cursor) Rest() string {
	if c.Done() {
		return ""
	}
	return c.src[c.pos:]
}
