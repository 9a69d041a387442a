package focus

import (
	"time"

	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

// ScreenPoint is a normalized screen coordinate, (0,0) top-left and
// (1,1) bottom-right.
type ScreenPoint struct {
	X, Y float64
}

// CenterPoint returns the screen center, the default probe target.
func CenterPoint() ScreenPoint {
	return ScreenPoint{X: 0.5, Y: 0.5}
}

// HitCategory tags how confident the AR session is about a surface hit.
type HitCategory int

const (
	// HitExistingGeometry is a hit on reconstructed real-world
	// geometry. Always preferred over estimated planes.
	HitExistingGeometry HitCategory = iota
	// HitEstimatedPlane is a hit on a plane the session inferred but
	// has not confirmed.
	HitEstimatedPlane
)

// String returns the category name for logging.
func (c HitCategory) String() string {
	switch c {
	case HitExistingGeometry:
		return "existing-geometry"
	case HitEstimatedPlane:
		return "estimated-plane"
	default:
		return "unknown"
	}
}

// Hit is one ranked surface-probe result.
type Hit struct {
	Pose     spatial.Transform
	Category HitCategory
	Anchor   string // Session anchor ID, empty when the prober has none
}

// SurfaceProber asks the AR session what real-world surface lies under
// a screen point. Results are ordered by the session's own ranking;
// zero results is an expected, non-error outcome.
type SurfaceProber interface {
	Probe(point ScreenPoint) []Hit
}

// Subscription is a cancellable recurring callback. Cancel is
// synchronous: once it returns, the callback will not fire again.
type Subscription interface {
	Cancel()
}

// Scheduler delivers recurring ticks on a single goroutine. All
// controller state is touched only from that context and from public
// API calls, which callers must make from the same logical thread.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Subscription
}
