// Package probe provides SurfaceProber implementations: a deterministic
// simulated room for the demo and tests, and a camera-backed estimated
// plane prober under probe/vision.
package probe

import (
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/teslashibe/go-arfocus/pkg/focus"
	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

// SimConfig holds the synthetic room parameters.
type SimConfig struct {
	// WanderSpeed is how far the simulated camera pans per probe
	// (radians of wander phase).
	WanderSpeed float64

	// DropoutEvery forces every Nth probe to return no hits, emulating
	// momentary tracking loss. Zero disables dropout.
	DropoutEvery int

	// TableCenter and TableHalfExtent describe the one piece of
	// reconstructed concrete geometry in the room.
	TableCenter     spatial.Vec3
	TableHalfExtent spatial.Vec3

	// FloorY is the height of the estimated floor plane.
	FloorY float64
}

// DefaultSimConfig returns a small room: an estimated floor at y=0 and
// a concrete table slab in front of the camera.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		WanderSpeed:     0.02,
		DropoutEvery:    0,
		TableCenter:     spatial.Vec3{X: 0, Y: 0.75, Z: -1.3},
		TableHalfExtent: spatial.Vec3{X: 0.6, Y: 0.02, Z: 0.5},
		FloorY:          0,
	}
}

// Sim is a deterministic SurfaceProber over a synthetic room. The
// simulated screen-center ray wanders across the room; when it passes
// over the table the probe reports concrete geometry, otherwise only
// the estimated floor plane.
type Sim struct {
	mu     sync.Mutex
	cfg    SimConfig
	phase  float64
	probes int

	floorAnchor string
	tableAnchor string
}

// NewSim creates a simulated prober.
func NewSim(cfg SimConfig) *Sim {
	return &Sim{
		cfg:         cfg,
		floorAnchor: uuid.NewString(),
		tableAnchor: uuid.NewString(),
	}
}

// Probe returns ranked hits for the wandering screen-center ray. The
// estimated floor is deliberately ranked first when both surfaces are
// hit, so priority selection is exercised by consumers.
func (s *Sim) Probe(point focus.ScreenPoint) []focus.Hit {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.probes++
	s.phase += s.cfg.WanderSpeed

	if s.cfg.DropoutEvery > 0 && s.probes%s.cfg.DropoutEvery == 0 {
		return nil
	}

	// Where the screen-center ray meets the floor plane, panned by the
	// wander phase and offset by the probe point.
	x := math.Sin(s.phase)*1.2 + (point.X-0.5)*0.8
	z := s.cfg.TableCenter.Z + math.Sin(s.phase*0.7)*0.8 + (point.Y-0.5)*0.8

	var hits []focus.Hit

	hits = append(hits, focus.Hit{
		Pose: spatial.Transform{
			Position: spatial.Vec3{X: x, Y: s.cfg.FloorY, Z: z},
			Rotation: spatial.IdentityQuat(),
		},
		Category: focus.HitEstimatedPlane,
		Anchor:   s.floorAnchor,
	})

	if s.overTable(x, z) {
		hits = append(hits, focus.Hit{
			Pose: spatial.Transform{
				Position: spatial.Vec3{X: x, Y: s.cfg.TableCenter.Y + s.cfg.TableHalfExtent.Y, Z: z},
				Rotation: spatial.IdentityQuat(),
			},
			Category: focus.HitExistingGeometry,
			Anchor:   s.tableAnchor,
		})
	}

	return hits
}

// overTable reports whether the ray's floor intersection lies under the
// table footprint.
func (s *Sim) overTable(x, z float64) bool {
	return math.Abs(x-s.cfg.TableCenter.X) <= s.cfg.TableHalfExtent.X &&
		math.Abs(z-s.cfg.TableCenter.Z) <= s.cfg.TableHalfExtent.Z
}
