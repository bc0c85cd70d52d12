package timeout

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vutung2311/kix"
	"github.com/vutung2311/kix/logger"
)

var ErrTimedOut = errors.New("timed out")

// DoOrElse will run doFn and wait, if doFn take longer than timeout then it will run timeoutFn
// and return a failure wrapping ErrTimedOut. doFn keeps running in the background; it should
// watch ctx to stop early.
func DoOrElse(timeout time.Duration, doFn func(context.Context) kix.Result, timeoutFn func()) kix.Result {
	resultChan := make(chan kix.Result, 1)
	ctx, cancelFunc := context.WithTimeout(context.Background(), timeout)
	defer cancelFunc()
	go func() {
		resultChan <- kix.Catch(func() kix.Result {
			return doFn(ctx)
		})
		close(resultChan)
	}()

	select {
	case result := <-resultChan:
		return result
	case <-ctx.Done():
		logger.Logger.Warn("deadline exceeded", zap.Duration("timeout", timeout))
		timeoutFn()
	}

	return kix.Failure(ErrTimedOut)
}

// IsTimedOut reports whether result failed because DoOrElse hit its deadline.
func IsTimedOut(result kix.Result) bool {
	e, failed := result.Err()
	return failed && errors.Is(e.AsStdError(), ErrTimedOut)
}
