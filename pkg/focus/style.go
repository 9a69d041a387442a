package focus

import (
	"github.com/teslashibe/go-arfocus/pkg/scene"
)

// Style controls how the marker presents each state visually.
type Style struct {
	// ScaleTracking is the marker scale while searching for a surface.
	ScaleTracking float64
	// ScaleFound is the marker scale while resting on a surface.
	ScaleFound float64

	// FoundAnimation plays when a surface is acquired. Empty disables
	// animation entirely.
	FoundAnimation scene.AnimationHandle
	// FoundRepeat is the loop mode for FoundAnimation.
	FoundRepeat scene.RepeatMode
}

// DefaultStyle returns the classic pulsing marker.
func DefaultStyle() Style {
	return Style{
		ScaleTracking:  0.5,
		ScaleFound:     1.0,
		FoundAnimation: "focus.pulse",
		FoundRepeat:    scene.RepeatForever,
	}
}
