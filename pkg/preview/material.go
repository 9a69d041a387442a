package preview

// Material transparency policy: every preview material must honor the
// requested alpha. Kinds this layer cannot interpret are replaced by an
// opaque-white material carrying the target alpha instead of being
// passed through unchanged.

import (
	"github.com/teslashibe/go-arfocus/pkg/scene"
)

// TransparentMaterial derives a translucent variant of m with the given
// alpha. It is a pure function: m is copied, never mutated, and only
// the alpha channel is rewritten for recognized kinds. Alpha is clamped
// to [0, 1].
func TransparentMaterial(m scene.Material, alpha float64) scene.Material {
	alpha = clamp(alpha, 0, 1)

	switch m.Kind {
	case scene.MaterialStandard, scene.MaterialUnlit, scene.MaterialTextured:
		m.Color.A = alpha
		return m
	default:
		return scene.Material{
			Kind:  scene.MaterialUnlit,
			Color: scene.RGBA{R: 1, G: 1, B: 1, A: alpha},
		}
	}
}

// clamp restricts a value to a range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
