// Package config resolves whether stack traces are captured.
package config

import (
	"sync"

	"github.com/spf13/viper"
)

const (
	// LibBacktraceEnv takes precedence over BacktraceEnv when both are set.
	LibBacktraceEnv = "RUST_LIB_BACKTRACE"
	BacktraceEnv    = "RUST_BACKTRACE"
)

var (
	env = newEnv()

	mu       sync.RWMutex
	override *bool
)

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// TraceEnabled is evaluated on every call, so changes to the environment
// take effect immediately. An unset variable or the value "0" disables
// capture; any other value enables it.
func TraceEnabled() bool {
	mu.RLock()
	forced := override
	mu.RUnlock()
	if forced != nil {
		return *forced
	}

	for _, key := range []string{LibBacktraceEnv, BacktraceEnv} {
		if env.IsSet(key) {
			return env.GetString(key) != "0"
		}
	}
	return false
}

// Override forces capture on or off regardless of the environment until the
// returned restore function is called.
func Override(enabled bool) (restore func()) {
	mu.Lock()
	previous := override
	override = &enabled
	mu.Unlock()

	return func() {
		mu.Lock()
		override = previous
		mu.Unlock()
	}
}
