// SPDX-License-Identifier: MIT
package reader

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"gitlab.com/fisherprime/sexpr"
)

type (
	// Reader reads expressions from a Cursor.
	//
	// A Reader is single use & not safe for concurrent use, it mutates its Cursor.
	Reader struct {
		cfg    *Config
		cursor *Cursor
	}

	// ValidationFunction type for functions that validate rune identities.
	ValidationFunction func(rune) bool
)

const (
	listStart   = '('
	listEnd     = ')'
	stringDelim = '"'
)

// Lookup tables for the ASCII range.
var (
	whitespace = [utf8.RuneSelf]bool{
		' ':  true,
		'\r': true,
		'\n': true,
	}

	symbolPunct = [utf8.RuneSelf]bool{
		'+': true,
		'-': true,
		'/': true,
		'*': true,
	}
)

// New instantiates a Reader over a Cursor.
func New(cursor *Cursor, opts ...Option) *Reader {
	return &Reader{
		cfg:    newConfig(opts...),
		cursor: cursor,
	}
}

// Cursor obtains the Reader's Cursor.
func (r *Reader) Cursor() *Cursor { return r.cursor }

// ReadExpression reads exactly one expression, skipping leading whitespace.
//
// On success the Cursor is left immediately past the expression.
func (r *Reader) ReadExpression() (v sexpr.Value, err error) {
	for {
		var ch rune
		if ch, err = r.cursor.Current(); err != nil {
			return
		}

		switch {
		case ch == listStart:
			return r.readList()
		case r.isWhitespace(ch):
			r.cursor.Advance()
			continue
		case ch == stringDelim:
			return r.readString()
		case isDigit(ch):
			return r.readNumber()
		case isSymbol(ch):
			return r.readSymbol()
		default:
			if r.cfg.Debug {
				r.cfg.Logger.Debugf("reader: no expression starts with %q at %d", ch, r.cursor.Pos())
			}
			err = &SyntaxError{Err: ErrInvalidCharacter, Char: ch, Pos: r.cursor.Pos()}

			return
		}
	}
}

// SkipWhitespace consumes runes while they are whitespace.
func (r *Reader) SkipWhitespace() { r.acceptWhile(r.isWhitespace) }

// readList reads a parenthesized list, recursing for each item.
func (r *Reader) readList() (v sexpr.Value, err error) {
	start := r.cursor.Pos()
	r.cursor.Advance()

	items := make([]sexpr.Value, 0)
	for {
		r.SkipWhitespace()

		var ch rune
		if ch, err = r.cursor.Current(); err != nil {
			if r.cfg.Debug {
				r.cfg.Logger.Debugf("reader: list opened at %d is not closed", start)
			}
			return
		}
		if ch == listEnd {
			break
		}

		var item sexpr.Value
		if item, err = r.ReadExpression(); err != nil {
			return
		}
		items = append(items, item)
	}
	r.cursor.Advance()

	if r.cfg.Debug {
		r.cfg.Logger.Debugf("reader: list [%d, %d) with %d item(s)", start, r.cursor.Pos(), len(items))
	}
	v = sexpr.NewList(items...)

	return
}

// readSymbol reads a bare identifier; the end of input terminates it normally.
func (r *Reader) readSymbol() (v sexpr.Value, err error) {
	start := r.cursor.Pos()
	r.acceptWhile(isSymbol)
	v = sexpr.Symbol(r.cursor.span(start))

	return
}

// readString reads a quoted string; there are no escape sequences.
func (r *Reader) readString() (v sexpr.Value, err error) {
	r.cursor.Advance()
	start := r.cursor.Pos()

	for {
		var ch rune
		if ch, err = r.cursor.Current(); err != nil {
			return
		}
		if ch == stringDelim {
			break
		}
		r.cursor.Advance()
	}
	v = sexpr.Str(r.cursor.span(start))

	// Closing quote.
	r.cursor.Advance()

	return
}

// readNumber reads a sequence of decimal digits.
func (r *Reader) readNumber() (v sexpr.Value, err error) {
	start := r.cursor.Pos()
	r.acceptWhile(isDigit)

	text := r.cursor.span(start)
	n, pErr := strconv.ParseUint(text, 10, 64)
	if pErr != nil {
		// Only reachable on overflow.
		err = &SyntaxError{Err: ErrNotANumber, Text: text, Pos: start}
		return
	}
	v = sexpr.Number(n)

	return
}

// acceptWhile consumes runes while condition is true, stopping without error at the end of input.
func (r *Reader) acceptWhile(fn ValidationFunction) {
	for !r.cursor.AtEnd() {
		if ch, _ := r.cursor.Current(); !fn(ch) {
			return
		}
		r.cursor.Advance()
	}
}

// isWhitespace returns true for space, newline & carriage return; tab when configured.
func (r *Reader) isWhitespace(ch rune) bool {
	if ch == '\t' {
		return r.cfg.TabWhitespace
	}

	return ch >= 0 && ch < utf8.RuneSelf && whitespace[ch]
}

// isDigit returns true for an ASCII decimal digit.
func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

// isSymbol returns true for a letter, a number or one of `+ - / *`.
func isSymbol(ch rune) bool {
	return (ch >= 0 && ch < utf8.RuneSelf && symbolPunct[ch]) || unicode.IsLetter(ch) || unicode.IsNumber(ch)
}
