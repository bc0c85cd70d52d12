// Package group runs test bodies on other goroutines and collects their results.
package group

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vutung2311/kix"
	"github.com/vutung2311/kix/logger"
)

// Handle is a running body started by Spawn.
type Handle[T any] struct {
	done   chan struct{}
	result kix.Of[T]
}

// Spawn runs fn on a new goroutine. Check and Try inside fn are caught there.
func Spawn[T any](fn func() kix.Of[T]) *Handle[T] {
	h := &Handle[T]{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.result = kix.Catch(fn)
	}()
	return h
}

// Join waits for the body to finish and returns its result. It may be called
// any number of times.
func (h *Handle[T]) Join() kix.Of[T] {
	<-h.done
	return h.result
}

// Run runs every fn concurrently. The first failure cancels ctx for the others
// and is returned once all of them have finished.
func Run(ctx context.Context, fns ...func(context.Context) kix.Result) kix.Result {
	var (
		once  sync.Once
		first kix.Result
	)
	g, ctx := errgroup.WithContext(ctx)
	for i, fn := range fns {
		i, fn := i, fn
		g.Go(func() error {
			result := kix.Catch(func() kix.Result {
				return fn(ctx)
			})
			e, failed := result.Err()
			if !failed {
				return nil
			}
			logger.Logger.Debug("worker failed", zap.Int("worker", i), zap.Error(e.AsStdError()))
			once.Do(func() {
				first = result
			})
			return e.AsStdError()
		})
	}
	if g.Wait() == nil {
		return kix.Success()
	}
	return first
}
