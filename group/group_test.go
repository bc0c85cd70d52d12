package group_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/vutung2311/kix"
	"github.com/vutung2311/kix/group"
	"github.com/vutung2311/kix/logger"
	kixMock "github.com/vutung2311/kix/mock"
)

func TestSpawn(t *testing.T) {
	t.Run("failure crosses goroutines", func(t *testing.T) {
		h := group.Spawn(func() kix.Result {
			return kix.Failure(errors.New("An error happened"))
		})
		result := h.Join()
		e, failed := result.Err()
		require.True(t, failed)
		require.Equal(t, "An error happened", e.AsStdError().Error())
		require.Contains(t, e.String(), "Backtrace: ")

		again, _ := h.Join().Err()
		require.Equal(t, e.String(), again.String())
	})
	t.Run("value crosses goroutines", func(t *testing.T) {
		h := group.Spawn(func() kix.Of[string] {
			return kix.Ok("done")
		})
		got, e := h.Join().Get()
		require.Nil(t, e)
		require.Equal(t, "done", got)
	})
	t.Run("check is caught on the worker", func(t *testing.T) {
		action := new(kixMock.Action)
		action.On("Open", "/tmp/not_existed_file").Return("", errors.New("no such file"))
		h := group.Spawn(func() kix.Of[string] {
			return kix.Ok(kix.Try(action.Open("/tmp/not_existed_file")))
		})
		require.True(t, h.Join().IsErr())
		action.AssertExpectations(t)
	})
}

func TestRun(t *testing.T) {
	logger.SetLogger(zaptest.NewLogger(t))
	t.Cleanup(func() { logger.SetLogger(zap.NewNop()) })

	t.Run("all succeed", func(t *testing.T) {
		var calls int32
		work := func(context.Context) kix.Result {
			atomic.AddInt32(&calls, 1)
			return kix.Success()
		}
		require.True(t, group.Run(context.Background(), work, work, work).IsOk())
		require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})
	t.Run("no workers", func(t *testing.T) {
		require.True(t, group.Run(context.Background()).IsOk())
	})
	t.Run("first failure cancels the rest", func(t *testing.T) {
		workerErr := errors.New("worker error")
		failing := new(kixMock.Action)
		failing.On("DoContext", mock.Anything).Return(workerErr)

		result := group.Run(
			context.Background(),
			func(ctx context.Context) kix.Result {
				kix.Check(failing.DoContext(ctx))
				return kix.Success()
			},
			func(ctx context.Context) kix.Result {
				select {
				case <-ctx.Done():
					return kix.Failure(ctx.Err())
				case <-time.After(5 * time.Second):
					return kix.Success()
				}
			},
		)
		e, failed := result.Err()
		require.True(t, failed)
		require.ErrorIs(t, e.AsStdError(), workerErr)
		failing.AssertExpectations(t)
	})
}
