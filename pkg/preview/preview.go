// Package preview renders a translucent stand-in for a model before it
// is placed. The proxy is a passive follower: the focus controller owns
// smoothing and state, the proxy only mirrors pose and visibility.
package preview

import (
	"sync"

	"github.com/teslashibe/go-arfocus/pkg/scene"
	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

// detachable is implemented by scene entities that can be removed from
// their parent. Detach is optional on Renderable; proxies use it when
// the underlying entity supports it.
type detachable interface {
	Detach()
}

// Proxy is a transparent-material clone of a target model. It caches
// the model's original materials and re-derives translucent variants
// from those originals on every transparency change, so repeated
// SetTransparency calls never accumulate alpha error.
type Proxy struct {
	mu sync.RWMutex

	clone   scene.Renderable
	source  []scene.Material // Originals, never mutated
	alpha   float64
	pose    spatial.Transform
	visible bool
}

// NewProxy builds a proxy from a clone of model at the given alpha.
//
// A nil model returns ErrNilModel with no proxy. A model without
// materials returns a constructed but visually empty proxy together
// with ErrNoVisibleContent; callers that need strictness should check
// the model beforehand.
func NewProxy(model scene.Model, alpha float64) (*Proxy, error) {
	if model == nil {
		return nil, ErrNilModel
	}

	p := &Proxy{
		clone:  model.Clone(),
		source: model.Materials(),
		alpha:  clamp(alpha, 0, 1),
		pose:   spatial.IdentityTransform(),
	}

	p.clone.StopAnimations()
	p.clone.SetEnabled(false)
	p.applyMaterials()

	if len(p.source) == 0 {
		return p, ErrNoVisibleContent
	}
	return p, nil
}

// SetTransparency clamps level to [0, 1] and rebuilds every material
// from the cached originals.
func (p *Proxy) SetTransparency(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alpha = clamp(level, 0, 1)
	p.applyMaterials()
}

// Transparency returns the current alpha level.
func (p *Proxy) Transparency() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.alpha
}

// applyMaterials pushes translucent variants of the source materials to
// the clone. Caller holds p.mu.
func (p *Proxy) applyMaterials() {
	materials := make([]scene.Material, len(p.source))
	for i, m := range p.source {
		materials[i] = TransparentMaterial(m, p.alpha)
	}
	p.clone.SetMaterials(materials)
}

// UpdatePosition mirrors the given pose onto the clone. No smoothing
// happens here; motion smoothing is owned upstream.
func (p *Proxy) UpdatePosition(pose spatial.Transform) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pose = pose
	p.clone.SetPose(pose)
}

// Pose returns the last mirrored pose.
func (p *Proxy) Pose() spatial.Transform {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pose
}

// Show makes the proxy visible. Pose and materials are left untouched.
func (p *Proxy) Show() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = true
	p.clone.SetEnabled(true)
}

// Hide makes the proxy invisible. Pose and materials are left untouched.
func (p *Proxy) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
	p.clone.SetEnabled(false)
}

// Visible reports whether the proxy is currently shown.
func (p *Proxy) Visible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.visible
}

// Detach hides the proxy and removes its clone from the scene when the
// underlying entity supports detaching. Safe to call more than once.
func (p *Proxy) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.visible = false
	p.clone.SetEnabled(false)
	if d, ok := p.clone.(detachable); ok {
		d.Detach()
	}
}
