package scene

import (
	"testing"

	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

func TestNode_Clone_Independent(t *testing.T) {
	n := NewNode("marker")
	n.SetMaterials([]Material{{Kind: MaterialStandard, Color: RGBA{0.2, 0.4, 0.6, 1}}})
	n.SetEnabled(true)

	clone := n.Clone().(*Node)

	// Mutating the clone's materials must not touch the source
	mats := clone.Materials()
	mats[0].Color.A = 0.5
	clone.SetMaterials(mats)

	if got := n.Materials()[0].Color.A; got != 1 {
		t.Errorf("Source material alpha changed by clone edit: got %v, want 1", got)
	}
	if clone.Parent() != nil {
		t.Error("Clone of a detached node should start detached")
	}
}

func TestNode_Clone_AttachesBesideSource(t *testing.T) {
	root := NewNode("root")
	n := NewNode("marker")
	root.AddChild(n)

	clone := n.Clone().(*Node)
	if clone.Parent() != root {
		t.Error("Clone of an attached node should share its parent")
	}
}

func TestNode_AddChild_Reparents(t *testing.T) {
	root := NewNode("root")
	other := NewNode("other")
	child := NewNode("child")

	root.AddChild(child)
	if child.Parent() != root {
		t.Fatal("Child should be under root")
	}

	other.AddChild(child)
	if child.Parent() != other {
		t.Error("Child should have moved to other")
	}
	if len(root.children) != 0 {
		t.Error("Root should no longer hold the child")
	}
}

func TestNode_Detach_Idempotent(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	child.Detach()
	child.Detach()

	if child.Parent() != nil {
		t.Error("Child should be detached")
	}
}

func TestNode_Animation(t *testing.T) {
	n := NewNode("marker")

	if _, ok := n.Animating(); ok {
		t.Error("New node should not be animating")
	}

	n.PlayAnimation("pulse", RepeatForever)
	handle, ok := n.Animating()
	if !ok || handle != "pulse" {
		t.Errorf("Animating: got (%v, %v), want (pulse, true)", handle, ok)
	}

	n.StopAnimations()
	if _, ok := n.Animating(); ok {
		t.Error("StopAnimations should halt playback")
	}
}

func TestNode_Defaults(t *testing.T) {
	n := NewNode("marker")

	if n.Scale() != spatial.Uniform(1) {
		t.Errorf("Default scale: got %v, want unit", n.Scale())
	}
	if n.Pose().Rotation != spatial.IdentityQuat() {
		t.Errorf("Default rotation: got %v, want identity", n.Pose().Rotation)
	}
	if n.Enabled() {
		t.Error("New node should start disabled")
	}
}
