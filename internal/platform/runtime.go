package platform

import (
	"time"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Runtime builds the runtime config for a session. A zero seed is replaced
// with one taken from the clock and a non-positive tick rate with the default.
func Runtime(tickRate int, seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if tickRate > 0 {
		cfg.TickRate = tickRate
	}
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
