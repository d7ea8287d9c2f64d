// SPDX-License-Identifier: MIT
package sexpr

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type (
	// Kind identifies the variant of a Value.
	Kind int

	// Value defines a parsed node.
	//
	// The set of implementations is closed: Symbol, Str, Number, Boolean & List.
	Value interface {
		// Kind obtains the Value's variant.
		Kind() Kind

		value()
	}

	// Symbol is a bare identifier or operator token.
	Symbol string

	// Str holds the content of a quoted string, without the quotes.
	Str string

	// Number is a non-negative integer.
	Number uint64

	// Boolean is reserved; the reader has no syntax that produces it.
	Boolean bool

	// List is an ordered sequence of Values.
	//
	// A List is immutable, its items are copied on construction & retrieval.
	List struct {
		items []Value
	}
)

// Value kinds.
const (
	KindInvalid Kind = iota
	KindSymbol
	KindString
	KindNumber
	KindBoolean
	KindList
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindSymbol:  "symbol",
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindList:    "list",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kind implements Value.
func (Symbol) Kind() Kind { return KindSymbol }

// Kind implements Value.
func (Str) Kind() Kind { return KindString }

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// Kind implements Value.
func (Boolean) Kind() Kind { return KindBoolean }

// Kind implements Value.
func (List) Kind() Kind { return KindList }

func (Symbol) value()  {}
func (Str) value()     {}
func (Number) value()  {}
func (Boolean) value() {}
func (List) value()    {}

// NewNumber converts any unsigned integer into a Number.
func NewNumber[T constraints.Unsigned](v T) Number { return Number(v) }

// NewList instantiates a List holding a copy of items.
func NewList(items ...Value) List {
	if len(items) < 1 {
		return List{}
	}

	return List{items: slices.Clone(items)}
}

// Len is the number of items in the List.
func (l List) Len() int { return len(l.items) }

// At retrieves the item at index i.
//
// Panics if i is out of range, like a slice index.
func (l List) At(i int) Value { return l.items[i] }

// Items retrieves a copy of the List's items.
func (l List) Items() []Value { return slices.Clone(l.items) }

// Equal reports whether a & b are structurally identical.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case List:
		bv, ok := b.(List)
		if !ok {
			return false
		}

		return slices.EqualFunc(av.items, bv.items, Equal)
	default:
		return a == b
	}
}
