package scene

import (
	"sync"

	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

// Node is an in-memory Renderable used by the demo and by tests. It
// records every mutation so callers can inspect what the controller
// did without a real engine behind it.
type Node struct {
	mu sync.RWMutex

	name      string
	enabled   bool
	scale     spatial.Vec3
	pose      spatial.Transform
	materials []Material

	animation AnimationHandle
	repeat    RepeatMode
	animating bool

	parent   *Node
	children []*Node
}

// NewNode creates a detached node with identity pose and unit scale.
func NewNode(name string) *Node {
	return &Node{
		name:  name,
		scale: spatial.Uniform(1),
		pose:  spatial.IdentityTransform(),
	}
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// SetEnabled toggles whether the node is rendered.
func (n *Node) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// Enabled reports whether the node is rendered.
func (n *Node) Enabled() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.enabled
}

// SetScale sets the node's local scale.
func (n *Node) SetScale(scale spatial.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scale = scale
}

// Scale returns the node's local scale.
func (n *Node) Scale() spatial.Vec3 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.scale
}

// SetPose sets the node's world pose.
func (n *Node) SetPose(pose spatial.Transform) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pose = pose
}

// Pose returns the node's world pose.
func (n *Node) Pose() spatial.Transform {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.pose
}

// SetMaterials replaces the node's materials.
func (n *Node) SetMaterials(materials []Material) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.materials = append([]Material(nil), materials...)
}

// Materials returns a copy of the node's materials.
func (n *Node) Materials() []Material {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]Material(nil), n.materials...)
}

// PlayAnimation starts the named animation clip.
func (n *Node) PlayAnimation(handle AnimationHandle, repeat RepeatMode) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.animation = handle
	n.repeat = repeat
	n.animating = true
}

// StopAnimations halts any running animation.
func (n *Node) StopAnimations() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.animating = false
}

// Animating reports the current animation, if one is playing.
func (n *Node) Animating() (AnimationHandle, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.animating {
		return "", false
	}
	return n.animation, true
}

// AddChild attaches child under n. A child already attached elsewhere
// is detached from its old parent first.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()

	n.mu.Lock()
	n.children = append(n.children, child)
	n.mu.Unlock()

	child.mu.Lock()
	child.parent = n
	child.mu.Unlock()
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	n.mu.Lock()
	parent := n.parent
	n.parent = nil
	n.mu.Unlock()

	if parent == nil {
		return
	}

	parent.mu.Lock()
	for i, c := range parent.children {
		if c == n {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	parent.mu.Unlock()
}

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent
}

// Clone returns a copy of the node with the same visual state, attached
// next to the source under its parent (or detached when the source is).
// Children are not cloned.
func (n *Node) Clone() Renderable {
	n.mu.RLock()
	clone := &Node{
		name:      n.name + "-clone",
		enabled:   n.enabled,
		scale:     n.scale,
		pose:      n.pose,
		materials: append([]Material(nil), n.materials...),
	}
	parent := n.parent
	n.mu.RUnlock()

	if parent != nil {
		parent.AddChild(clone)
	}
	return clone
}
