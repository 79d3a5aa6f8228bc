package core

import "time"

// Logical canvas size of the badge display.
const (
	CanvasWidth  = 160
	CanvasHeight = 120
)

// RuntimeConfig contains configuration passed from a host to badge apps.
type RuntimeConfig struct {
	CanvasW  int   // Logical canvas width in pixels
	CanvasH  int   // Logical canvas height in pixels
	TickRate int   // Frames per second driven by the host
	Seed     int64 // RNG seed; 0 means seed from the host clock
}

// DefaultConfig returns a RuntimeConfig with the badge defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  CanvasWidth,
		CanvasH:  CanvasHeight,
		TickRate: 30,
		Seed:     0,
	}
}

// Clock is a monotonic tick source, as exposed by the badge firmware.
type Clock interface {
	// Ticks returns milliseconds elapsed since the clock started.
	Ticks() uint64
}

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a Clock that counts from now.
func NewMonotonicClock() Clock {
	return monotonicClock{start: time.Now()}
}

func (c monotonicClock) Ticks() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// ResolveSeed returns cfg.Seed, or a seed drawn from the clock when it is 0.
// Ticks are close to zero right after startup, so the wall clock is mixed in.
func ResolveSeed(cfg RuntimeConfig, clock Clock) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano() ^ int64(clock.Ticks())
}
