// SPDX-License-Identifier: MIT
package reader

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/sexpr"
)

func TestParseBatch(t *testing.T) {
	logger := logrus.New()

	sources := []Source{
		{Name: "list", Text: "(+ 1 2)"},
		{Name: "empty", Text: ""},
		{Name: "unclosed", Text: "(a"},
		{Name: "values", Text: `x "y" 3`},
	}

	results, err := ParseBatch(context.Background(), sources, WithLogger(logger), WithPoolSize(2))
	if err != nil {
		t.Fatalf("ParseBatch() error = %v", err)
	}
	if len(results) != len(sources) {
		t.Fatalf("ParseBatch() returned %d results, want %d", len(results), len(sources))
	}

	want := []struct {
		values []sexpr.Value
		err    error
	}{
		{values: []sexpr.Value{sexpr.NewList(sexpr.Symbol("+"), sexpr.Number(1), sexpr.Number(2))}},
		{err: ErrEmptyInput},
		{err: ErrUnexpectedEndOfInput},
		{values: []sexpr.Value{sexpr.Symbol("x"), sexpr.Str("y"), sexpr.Number(3)}},
	}

	for index, res := range results {
		if res.Name != sources[index].Name {
			t.Errorf("result %d name = %s, want %s", index, res.Name, sources[index].Name)
		}
		if !errors.Is(res.Err, want[index].err) {
			t.Errorf("result %s error = %v, wantErr %v", res.Name, res.Err, want[index].err)
			continue
		}
		if want[index].err == nil && !equalValues(res.Values, want[index].values) {
			t.Errorf("result %s = %s, want %s", res.Name, spew.Sdump(res.Values), spew.Sdump(want[index].values))
		}
	}
}

func TestParseBatch_many(t *testing.T) {
	const count = 200

	sources := make([]Source, count)
	for index := range sources {
		sources[index] = Source{Name: fmt.Sprint(index), Text: fmt.Sprintf("(n %d)", index)}
	}

	results, err := ParseBatch(context.Background(), sources, WithPoolSize(4))
	if err != nil {
		t.Fatalf("ParseBatch() error = %v", err)
	}

	for index, res := range results {
		if res.Err != nil {
			t.Fatalf("result %d error = %v", index, res.Err)
		}

		want := sexpr.NewList(sexpr.Symbol("n"), sexpr.NewNumber(uint(index)))
		if len(res.Values) != 1 || !sexpr.Equal(res.Values[0], want) {
			t.Errorf("result %d = %s, want %s", index, spew.Sdump(res.Values), spew.Sdump(want))
		}
	}
}

func TestParseBatch_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []Source{{Name: "a", Text: "a"}, {Name: "b", Text: "b"}}

	results, err := ParseBatch(ctx, sources)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParseBatch() error = %v, wantErr %v", err, context.Canceled)
	}

	for _, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("result %s error = %v, wantErr %v", res.Name, res.Err, context.Canceled)
		}
	}
}

func TestParseBatch_canceledWhileSubmitting(t *testing.T) {
	const count = 2000

	sources := make([]Source, count)
	for index := range sources {
		sources[index] = Source{Name: fmt.Sprint(index), Text: fmt.Sprintf("(n %d (m %d))", index, index)}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go cancel()

	results, err := ParseBatch(ctx, sources, WithPoolSize(1))
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("ParseBatch() error = %v, wantErr %v", err, context.Canceled)
	}

	canceled := 0
	for index, res := range results {
		if res.Name != sources[index].Name {
			t.Errorf("result %d name = %s, want %s", index, res.Name, sources[index].Name)
		}

		switch {
		case res.Err == nil:
			if canceled > 0 {
				t.Errorf("result %d parsed after a canceled result", index)
			}
			if len(res.Values) != 1 {
				t.Errorf("result %d = %s, want one value", index, spew.Sdump(res.Values))
			}
		case errors.Is(res.Err, context.Canceled):
			canceled++
		default:
			t.Errorf("result %d error = %v", index, res.Err)
		}
	}

	if (err != nil) != (canceled > 0) {
		t.Errorf("ParseBatch() error = %v with %d canceled result(s)", err, canceled)
	}
}

func TestParseBatch_noSources(t *testing.T) {
	results, err := ParseBatch(context.Background(), nil)
	if err != nil || len(results) != 0 {
		t.Errorf("ParseBatch() = %v, %v; want no results", results, err)
	}
}
