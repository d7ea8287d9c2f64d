// SPDX-License-Identifier: MIT
package reader

import (
	"errors"
	"fmt"
)

// SyntaxError records the position at which a read failed.
type SyntaxError struct {
	Err error

	// Text is the offending digit sequence for ErrNotANumber.
	Text string

	// Pos is the codepoint offset of the failure.
	Pos int

	// Char is the offending rune for ErrInvalidCharacter.
	Char rune
}

// Reading errors.
var (
	ErrEmptyInput           = errors.New("empty input")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrInvalidCharacter     = errors.New("invalid character")
	ErrNotANumber           = errors.New("not a number")
)

func (e *SyntaxError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidCharacter):
		return fmt.Sprintf("%v %q at position %d", e.Err, e.Char, e.Pos)
	case errors.Is(e.Err, ErrNotANumber):
		return fmt.Sprintf("%v: %q at position %d", e.Err, e.Text, e.Pos)
	default:
		return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
	}
}

func (e *SyntaxError) Unwrap() error { return e.Err }
