// Package tilerunner implements the bounded-concurrency primitive
// the tiled executor submits one stage's independent tile-update
// closures to. A pool exists for exactly one stage and is drained at
// the stage barrier, rather than kept running across stages.
package tilerunner

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool runs up to workers tile-update closures concurrently and
// reports the first error any of them returns via Drain.
type Pool struct {
	workers int
	sem     chan struct{}
	group   *errgroup.Group
	ctx     context.Context

	submitted int64
}

// New creates a Pool with the given worker cap. A cap of 0 or less
// means unbounded (GOMAXPROCS-equivalent callers should pass
// runtime.GOMAXPROCS(0) explicitly; this package does not guess).
func New(ctx context.Context, workers int) *Pool {
	group, groupCtx := errgroup.WithContext(ctx)
	p := &Pool{
		workers: workers,
		group:   group,
		ctx:     groupCtx,
	}
	if workers > 0 {
		p.sem = make(chan struct{}, workers)
	}
	return p
}

// Submit schedules fn to run, blocking only if the pool is already at
// its worker cap. If a prior submission has already failed or the
// pool's context has been cancelled, Submit may skip running fn; the
// original error is what Drain reports.
func (p *Pool) Submit(fn func() error) {
	atomic.AddInt64(&p.submitted, 1)
	if p.sem != nil {
		select {
		case p.sem <- struct{}{}:
		case <-p.ctx.Done():
			return
		}
	}
	p.group.Go(func() error {
		if p.sem != nil {
			defer func() { <-p.sem }()
		}
		return fn()
	})
}

// Drain waits for every submitted closure to finish and returns the
// first error any of them reported, implementing the stage barrier:
// the caller must not begin the next stage's
// submissions until Drain returns.
func (p *Pool) Drain() error {
	return p.group.Wait()
}

// Submitted reports how many closures have been handed to Submit so
// far, including any that Submit skipped.
func (p *Pool) Submitted() int64 {
	return atomic.LoadInt64(&p.submitted)
}
