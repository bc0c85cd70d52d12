package retry

import (
	"go.uber.org/zap"

	"github.com/vutung2311/kix"
	"github.com/vutung2311/kix/logger"
)

// Do will run fn up to retryTimes times until it succeeds and return the last result.
// A retryTimes of zero still runs fn once.
func Do(fn func() kix.Result, retryTimes uint32) kix.Result {
	if retryTimes == 0 {
		retryTimes = 1
	}
	var result kix.Result
	for i := uint32(0); i < retryTimes; i++ {
		result = kix.Catch(fn)
		e, failed := result.Err()
		if !failed {
			return result
		}
		logger.Logger.Debug("attempt failed",
			zap.Uint32("attempt", i+1),
			zap.Uint32("of", retryTimes),
			zap.Error(e.AsStdError()),
		)
	}
	return result
}
