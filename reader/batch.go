// SPDX-License-Identifier: MIT
package reader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/sexpr"
)

type (
	// Source is a named text to be parsed by ParseBatch.
	Source struct {
		Name string
		Text string
	}

	// Result holds the outcome of parsing a single Source.
	Result struct {
		Err    error
		Name   string
		Values []sexpr.Value
	}
)

// Batch errors.
var (
	ErrPool     = errors.New("failed to set up the parse pool")
	ErrPanicked = errors.New("recovery from panic")
)

// ParseBatch parses independent sources concurrently on a bounded worker pool.
//
// Each Source is parsed with its own Cursor; a failure affects only that Source's Result. The
// results follow the order of sources. Sources not yet submitted when ctx is canceled carry
// ctx.Err(), which is also returned.
//
// Submission waits for a free worker, a cancellation during that wait is observed immediately.
func ParseBatch(ctx context.Context, sources []Source, opts ...Option) (results []Result, err error) {
	cfg := newConfig(opts...)
	results = make([]Result, len(sources))
	if len(sources) < 1 {
		return
	}

	pool, err := ants.NewPool(cfg.PoolSize, ants.WithLogger(cfg.Logger))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrPool, err)
		return
	}
	defer pool.Release()

	wg := new(sync.WaitGroup)

	// slots bounds the in-flight tasks; waiting on it, rather than in pool.Submit, observes ctx.
	slots := make(chan struct{}, cfg.PoolSize)

	cancelFrom := func(index int) {
		err = ctx.Err()
		for ; index < len(sources); index++ {
			results[index] = Result{Name: sources[index].Name, Err: err}
		}
	}

submit:
	for index := range sources {
		if ctx.Err() != nil {
			cancelFrom(index)
			break submit
		}

		select {
		case <-ctx.Done():
			cancelFrom(index)
			break submit
		case slots <- struct{}{}:
		}

		src, res := sources[index], &results[index]
		res.Name = src.Name

		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer func() { <-slots }()
			defer func() {
				if r := recover(); r != nil {
					res.Values, res.Err = nil, fmt.Errorf("%w: %v", ErrPanicked, r)
				}
			}()

			res.Values, res.Err = parse(src.Text, cfg)
			if res.Err != nil && cfg.Debug {
				cfg.Logger.WithField("source", src.Name).Debugf("parse failed: %v", res.Err)
			}
		}

		if sErr := pool.Submit(task); sErr != nil {
			<-slots
			wg.Done()
			res.Err = sErr
		}
	}
	wg.Wait()

	return
}
