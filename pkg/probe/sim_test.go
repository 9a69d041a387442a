package probe

import (
	"testing"

	"github.com/teslashibe/go-arfocus/pkg/focus"
)

func TestSim_AlwaysReportsFloor(t *testing.T) {
	s := NewSim(DefaultSimConfig())

	hits := s.Probe(focus.CenterPoint())
	if len(hits) == 0 {
		t.Fatal("Expected at least the floor hit")
	}
	if hits[0].Category != focus.HitEstimatedPlane {
		t.Errorf("First hit: got %v, want estimated-plane", hits[0].Category)
	}
	if hits[0].Anchor == "" {
		t.Error("Floor hit should carry an anchor ID")
	}
}

func TestSim_TableHitIsConcrete(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.WanderSpeed = 0 // Keep the ray fixed over the table center
	s := NewSim(cfg)

	hits := s.Probe(focus.CenterPoint())
	if len(hits) != 2 {
		t.Fatalf("Over the table: got %d hits, want 2", len(hits))
	}

	// Concrete hit is ranked second on purpose
	if hits[1].Category != focus.HitExistingGeometry {
		t.Errorf("Second hit: got %v, want existing-geometry", hits[1].Category)
	}
	top := cfg.TableCenter.Y + cfg.TableHalfExtent.Y
	if hits[1].Pose.Position.Y != top {
		t.Errorf("Table hit height: got %v, want %v", hits[1].Pose.Position.Y, top)
	}
}

func TestSim_Dropout(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.DropoutEvery = 3
	s := NewSim(cfg)

	var empty int
	for i := 0; i < 9; i++ {
		if len(s.Probe(focus.CenterPoint())) == 0 {
			empty++
		}
	}
	if empty != 3 {
		t.Errorf("Dropout: got %d empty probes of 9, want 3", empty)
	}
}

func TestSim_StableAnchors(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.WanderSpeed = 0
	s := NewSim(cfg)

	a := s.Probe(focus.CenterPoint())
	b := s.Probe(focus.CenterPoint())
	if a[0].Anchor != b[0].Anchor {
		t.Error("Floor anchor should be stable across probes")
	}
}
