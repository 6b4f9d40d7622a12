// Package errgroup binds golang.org/x/sync/errgroup to a shutdown manager.
// The group's context is canceled when a shutdown is triggered, and the
// shutdown cannot complete until the group has been waited on. It enables
// incremental adoption in code already structured around errgroup.
package errgroup

import (
	"context"

	xerrgroup "golang.org/x/sync/errgroup"

	"github.com/NetPo4ki/go-shutdown/shutdown"
)

// Group is an errgroup.Group whose lifetime delays shutdown completion.
type Group[T any] struct {
	g     *xerrgroup.Group
	token *shutdown.DelayToken[T]
}

// WithManager creates a Group bound to ctx and m. The returned context is
// canceled when any function passed to Go returns a non-nil error, when ctx
// is canceled, or when a shutdown is triggered on m.
//
// The group holds a delay token until Wait returns, so it fails with a
// *shutdown.AlreadyCompletedError if the shutdown has already completed.
func WithManager[T any](ctx context.Context, m *shutdown.Manager[T]) (*Group[T], context.Context, error) {
	token, err := m.DelayToken()
	if err != nil {
		return nil, nil, err
	}
	cctx, cancel := context.WithCancel(ctx)
	g, gctx := xerrgroup.WithContext(cctx)
	go func() {
		defer cancel()
		select {
		case <-m.Triggered():
		case <-gctx.Done():
		}
	}()
	return &Group[T]{g: g, token: token}, gctx, nil
}

// Go starts a function. It should return a non-nil error to signal failure.
func (g *Group[T]) Go(f func() error) {
	if f == nil {
		return
	}
	g.g.Go(f)
}

// SetLimit limits the number of active goroutines in the group to at most n.
// See errgroup.Group.SetLimit.
func (g *Group[T]) SetLimit(n int) {
	g.g.SetLimit(n)
}

// Wait blocks until all functions have returned, then releases the group's
// delay token. It returns the first non-nil error, if any.
func (g *Group[T]) Wait() error {
	err := g.g.Wait()
	g.token.Release()
	return err
}
