// Package vision implements a camera-backed SurfaceProber. It decodes
// frames from a FrameSource and derives an estimated plane in front of
// the camera from the brightness of the patch under the probe point, a
// depth proxy suitable for sensors that encode proximity as intensity.
// Concrete geometry classification is out of reach for a single
// camera, so every hit is tagged as an estimated plane.
package vision

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-arfocus/internal/log"
	"github.com/teslashibe/go-arfocus/pkg/focus"
	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

// FrameSource captures camera frames as JPEG bytes.
type FrameSource interface {
	CaptureJPEG() ([]byte, error)
}

// Config holds the depth-proxy mapping parameters.
type Config struct {
	// MinDepth and MaxDepth bound the estimated surface distance in
	// meters. Full brightness maps to MinDepth, black to MaxDepth.
	MinDepth float64
	MaxDepth float64

	// PatchFraction is the sampled patch size as a fraction of the
	// frame's smaller dimension.
	PatchFraction float64
}

// DefaultConfig returns a mapping tuned for indoor scenes.
func DefaultConfig() Config {
	return Config{
		MinDepth:      0.3,
		MaxDepth:      3.0,
		PatchFraction: 0.1,
	}
}

// Prober estimates a surface under the probe point from camera frames.
type Prober struct {
	source FrameSource
	cfg    Config
}

// New creates a vision prober over the given frame source.
func New(source FrameSource, cfg Config) *Prober {
	return &Prober{source: source, cfg: cfg}
}

// Probe samples the current frame under the given screen point. Frame
// capture or decode failures are treated as a miss, not an error: the
// controller handles empty results by state transition.
func (p *Prober) Probe(point focus.ScreenPoint) []focus.Hit {
	if p.source == nil {
		return nil
	}

	frame, err := p.source.CaptureJPEG()
	if err != nil {
		log.Debug("vision probe capture failed", "err", err)
		return nil
	}

	img, err := gocv.IMDecode(frame, gocv.IMReadGrayScale)
	if err != nil {
		log.Debug("vision probe decode failed", "err", err)
		return nil
	}
	defer img.Close()

	if img.Empty() {
		return nil
	}

	depth, ok := p.patchDepth(img, point)
	if !ok {
		return nil
	}

	return []focus.Hit{{
		Pose: spatial.Transform{
			Position: spatial.Vec3{X: 0, Y: 0, Z: -depth},
			Rotation: spatial.IdentityQuat(),
		},
		Category: focus.HitEstimatedPlane,
	}}
}

// patchDepth measures mean brightness in the patch under point and maps
// it to the configured depth range.
func (p *Prober) patchDepth(img gocv.Mat, point focus.ScreenPoint) (float64, bool) {
	cols := img.Cols()
	rows := img.Rows()

	side := int(p.cfg.PatchFraction * float64(min(cols, rows)))
	if side < 1 {
		side = 1
	}

	cx := int(point.X * float64(cols))
	cy := int(point.Y * float64(rows))

	rect := image.Rect(cx-side/2, cy-side/2, cx+side/2+1, cy+side/2+1)
	rect = rect.Intersect(image.Rect(0, 0, cols, rows))
	if rect.Empty() {
		return 0, false
	}

	patch := img.Region(rect)
	defer patch.Close()

	brightness := patch.Mean().Val1 / 255.0
	depth := p.cfg.MaxDepth - brightness*(p.cfg.MaxDepth-p.cfg.MinDepth)
	return depth, true
}
