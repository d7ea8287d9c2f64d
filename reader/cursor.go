// SPDX-License-Identifier: MIT
package reader

type (
	// Cursor tracks the read position over some input text.
	//
	// Positions are codepoint offsets; the text is decoded once on creation so that lookahead
	// never splits a multi-byte rune.
	Cursor struct {
		text []rune
		pos  int
	}
)

// NewCursor instantiates a Cursor at the start of text.
func NewCursor(text string) *Cursor { return &Cursor{text: []rune(text)} }

// AtEnd reports whether the whole text has been consumed.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.text) }

// Current returns the rune at the cursor, without updating the position.
func (c *Cursor) Current() (r rune, err error) {
	if c.AtEnd() {
		err = &SyntaxError{Err: ErrUnexpectedEndOfInput, Pos: c.pos}
		return
	}
	r = c.text[c.pos]

	return
}

// Advance steps forward one rune.
//
// The position saturates at the end of the text.
func (c *Cursor) Advance() {
	if c.pos < len(c.text) {
		c.pos++
	}
}

// Pos obtains the current codepoint offset.
func (c *Cursor) Pos() int { return c.pos }

// Len obtains the length of the text in codepoints.
func (c *Cursor) Len() int { return len(c.text) }

// span obtains the text between start & the current position.
func (c *Cursor) span(start int) string { return string(c.text[start:c.pos]) }
