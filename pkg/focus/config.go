package focus

import (
	"time"
)

// DefaultTransparency is the preview alpha used when callers have no
// opinion of their own.
const DefaultTransparency = 0.5

// Config holds all tunable parameters for the focus controller.
type Config struct {
	// Timing
	TickInterval time.Duration // Probe and smoothing cadence

	// Probing
	ScreenPoint     ScreenPoint // Normalized probe point
	AcceptEstimated bool        // Accept estimated planes when no concrete geometry hit

	// Smoothing
	Smoothing   float64 // Lerp weight per tick toward the target pose (0-1)
	SnapEpsilon float64 // Snap exactly to target below this distance (world units)

	// Grace delay before auto-hiding after the surface is lost.
	// Zero disables auto-hide; the marker keeps tracking instead.
	HideAfterLost time.Duration
}

// DefaultConfig returns the recommended configuration: 20 Hz probing,
// gentle smoothing, estimated planes accepted, no auto-hide.
func DefaultConfig() Config {
	return Config{
		TickInterval:    50 * time.Millisecond, // 20 probes per second
		ScreenPoint:     CenterPoint(),
		AcceptEstimated: true,
		Smoothing:       0.15,
		SnapEpsilon:     0.001,
		HideAfterLost:   0,
	}
}

// ResponsiveConfig returns a configuration for snappier tracking at a
// higher probe rate.
func ResponsiveConfig() Config {
	cfg := DefaultConfig()
	cfg.TickInterval = 20 * time.Millisecond // 50 probes per second
	cfg.Smoothing = 0.3
	return cfg
}

// SmoothConfig returns a configuration for slower, steadier motion on
// noisy probe data. Only concrete geometry is accepted and the marker
// hides itself after two seconds without a surface.
func SmoothConfig() Config {
	cfg := DefaultConfig()
	cfg.TickInterval = 100 * time.Millisecond // 10 probes per second
	cfg.Smoothing = 0.08
	cfg.AcceptEstimated = false
	cfg.HideAfterLost = 2 * time.Second
	return cfg
}
