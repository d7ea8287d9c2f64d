// SPDX-License-Identifier: MIT
package reader

import (
	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/sexpr"
)

// ParseAll reads every top-level expression in text, in order.
//
// The first failure aborts the parse; no partial result is returned. Whitespace-only text yields
// an empty sequence.
func ParseAll(text string, opts ...Option) (values []sexpr.Value, err error) {
	return parse(text, newConfig(opts...))
}

func parse(text string, cfg *Config) (values []sexpr.Value, err error) {
	if len(text) < 1 {
		err = ErrEmptyInput
		return
	}

	r := &Reader{cfg: cfg, cursor: NewCursor(text)}

	values, err = r.readAll()
	if err != nil {
		values = nil
		return
	}

	if r.cfg.Debug {
		// Skip expensive operation if not debug.
		r.cfg.Logger.Debugf("parsed %d value(s): %s", len(values), spew.Sdump(values))
	}

	return
}

func (r *Reader) readAll() (values []sexpr.Value, err error) {
	values = make([]sexpr.Value, 0)

	for {
		// Consume trailing whitespace before checking for the end.
		r.SkipWhitespace()
		if r.cursor.AtEnd() {
			return
		}

		var v sexpr.Value
		if v, err = r.ReadExpression(); err != nil {
			return
		}
		values = append(values, v)
	}
}
