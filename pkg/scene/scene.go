// Package scene abstracts the host rendering engine behind small
// capability interfaces. The focus controller positions and toggles a
// Renderable without knowing which scene graph is underneath; adapters
// implement these interfaces over the real engine.
package scene

import (
	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

// RepeatMode controls how an animation loops once started.
type RepeatMode int

const (
	// PlayOnce runs the animation a single time.
	PlayOnce RepeatMode = iota
	// RepeatForever loops the animation until stopped.
	RepeatForever
)

// AnimationHandle names an animation clip owned by the host engine.
type AnimationHandle string

// Renderable is the capability surface the focus controller needs from
// a scene entity. Implementations must tolerate repeated calls with the
// same value.
type Renderable interface {
	SetEnabled(enabled bool)
	SetScale(scale spatial.Vec3)
	SetPose(pose spatial.Transform)
	SetMaterials(materials []Material)
	PlayAnimation(handle AnimationHandle, repeat RepeatMode)
	StopAnimations()
}

// Model is a renderable with inspectable materials that can be cloned
// into a second scene entity. The preview proxy is built from a clone
// so the original model is never mutated.
type Model interface {
	Renderable
	Materials() []Material
	Clone() Renderable
}
