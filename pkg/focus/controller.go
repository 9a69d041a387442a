// Package focus implements the focus-tracking state machine for an AR
// placement marker: periodic surface probes are turned into a stable
// entity state, pose updates are smoothed across probe samples, and a
// translucent placement preview is kept in lockstep with that state.
package focus

import (
	"sync"
	"time"

	"github.com/teslashibe/go-arfocus/internal/log"
	"github.com/teslashibe/go-arfocus/pkg/preview"
	"github.com/teslashibe/go-arfocus/pkg/scene"
	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

// StateHandler observes state transitions. At most one handler is
// registered; re-registration replaces it wholesale.
type StateHandler func(c *Controller, state State)

// PlacementHandler observes committed placements with the surface
// position the model should be placed at.
type PlacementHandler func(c *Controller, position spatial.Vec3)

// detachable is implemented by scene entities that can be removed from
// their parent on teardown.
type detachable interface {
	Detach()
}

// Controller owns the focus marker's tracking state. It issues surface
// probes on every scheduler tick, smooths the resulting pose and drives
// the marker's (and preview's) visual state.
//
// All state is expected to be touched from one logical scheduling
// context: the tick callback plus public API calls made from the same
// thread. The internal mutex guards read accessors used by observers
// such as a dashboard.
type Controller struct {
	cfg    Config
	marker scene.Renderable
	prober SurfaceProber
	sched  Scheduler

	mu    sync.RWMutex
	style Style
	state State

	currentPose spatial.Transform
	targetPose  *spatial.Transform // nil when no motion is pending
	lastValid   *spatial.Vec3      // position of the most recent accepted hit
	lastHitAt   time.Time

	proxy *preview.Proxy

	onStateChange StateHandler
	onPlacement   PlacementHandler

	sub     Subscription
	started bool
	removed bool
}

// New creates a controller over the given marker entity, prober and
// scheduler. The marker starts in the Initializing state: disabled,
// scaled down, no preview. Call Start to begin probing.
func New(marker scene.Renderable, prober SurfaceProber, sched Scheduler, cfg Config) *Controller {
	c := &Controller{
		cfg:         cfg,
		marker:      marker,
		prober:      prober,
		sched:       sched,
		style:       DefaultStyle(),
		state:       StateInitializing,
		currentPose: spatial.IdentityTransform(),
	}

	marker.SetEnabled(false)
	marker.SetScale(spatial.Uniform(c.style.ScaleTracking))

	return c
}

// WithStyle replaces the marker's visual style. Returns the controller
// for chaining.
func (c *Controller) WithStyle(style Style) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.style = style
	return c
}

// OnStateChange registers the state-transition handler, replacing any
// prior registration. Returns the controller for chaining.
func (c *Controller) OnStateChange(handler StateHandler) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStateChange = handler
	return c
}

// OnPlacement registers the placement handler, replacing any prior
// registration. Returns the controller for chaining.
func (c *Controller) OnPlacement(handler PlacementHandler) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPlacement = handler
	return c
}

// Start subscribes to the scheduler and moves the marker out of
// Initializing (or Hidden) into Tracking. Calling Start again after it
// is already running only un-hides the marker.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.removed {
		c.mu.Unlock()
		return
	}
	if !c.started {
		c.started = true
		c.sub = c.sched.Every(c.cfg.TickInterval, c.tick)
	}
	state := c.state
	c.mu.Unlock()

	if state == StateInitializing || state == StateHidden {
		c.setState(StateTracking)
	}
	log.Debug("focus controller started", "tick", c.cfg.TickInterval)
}

// Show un-hides a hidden marker. The next tick resumes probing.
func (c *Controller) Show() {
	c.mu.RLock()
	hidden := c.state == StateHidden
	c.mu.RUnlock()
	if hidden {
		c.setState(StateTracking)
	}
}

// Hide disables the marker and preview and suspends probing until Show
// or Start.
func (c *Controller) Hide() {
	c.setState(StateHidden)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Pose returns the marker's displayed (smoothed) pose.
func (c *Controller) Pose() spatial.Transform {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentPose
}

// MotionPending reports whether the marker is still interpolating
// toward a target pose.
func (c *Controller) MotionPending() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.targetPose != nil
}

// PreviewAlpha returns the preview transparency and whether a preview
// is attached.
func (c *Controller) PreviewAlpha() (float64, bool) {
	c.mu.RLock()
	proxy := c.proxy
	c.mu.RUnlock()
	if proxy == nil {
		return 0, false
	}
	return proxy.Transparency(), true
}

// EnablePreview attaches a translucent preview of model that follows
// the marker. An existing preview is replaced and detached. Returns
// preview.ErrNilModel without attaching anything when model is nil, and
// preview.ErrNoVisibleContent when the model has no materials (the
// preview is attached anyway, visually empty).
func (c *Controller) EnablePreview(model scene.Model, transparency float64) error {
	proxy, err := preview.NewProxy(model, transparency)
	if proxy == nil {
		return err
	}
	if err != nil {
		log.Warn("preview attached without renderable content", "err", err)
	}

	c.mu.Lock()
	old := c.proxy
	c.proxy = proxy
	state := c.state
	pose := c.currentPose
	c.mu.Unlock()

	if old != nil {
		old.Detach()
	}

	proxy.UpdatePosition(pose)
	if state == StateFound {
		proxy.Show()
	}
	return err
}

// DisablePreview detaches and drops the preview, if any.
func (c *Controller) DisablePreview() {
	c.mu.Lock()
	old := c.proxy
	c.proxy = nil
	c.mu.Unlock()

	if old != nil {
		old.Detach()
	}
}

// SetTransparency forwards the clamped level to the preview. No-op when
// no preview is attached.
func (c *Controller) SetTransparency(level float64) {
	c.mu.RLock()
	proxy := c.proxy
	c.mu.RUnlock()
	if proxy != nil {
		proxy.SetTransparency(level)
	}
}

// TriggerPlacement commits a placement at the last accepted surface
// position. Valid only while Found with a known position; any other
// state is a silent no-op rather than an error.
func (c *Controller) TriggerPlacement() {
	c.mu.RLock()
	state := c.state
	pos := c.lastValid
	handler := c.onPlacement
	c.mu.RUnlock()

	if state != StateFound || pos == nil {
		return
	}

	log.Info("placement committed", "x", pos.X, "y", pos.Y, "z", pos.Z)
	if handler != nil {
		handler(c, *pos)
	}
}

// Remove cancels the probe subscription, detaches the preview and
// disables the marker. Idempotent; no tick fires after Remove returns.
func (c *Controller) Remove() {
	c.mu.Lock()
	if c.removed {
		c.mu.Unlock()
		return
	}
	c.removed = true
	sub := c.sub
	c.sub = nil
	proxy := c.proxy
	c.proxy = nil
	c.targetPose = nil
	c.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
	if proxy != nil {
		proxy.Detach()
	}

	c.marker.StopAnimations()
	c.marker.SetEnabled(false)
	if d, ok := c.marker.(detachable); ok {
		d.Detach()
	}
	log.Debug("focus controller removed")
}

// tick runs one probe-and-smooth cycle. Invoked by the scheduler.
func (c *Controller) tick() {
	c.mu.RLock()
	removed := c.removed
	state := c.state
	prober := c.prober
	point := c.cfg.ScreenPoint
	c.mu.RUnlock()

	if removed || state == StateHidden || state == StateInitializing {
		return
	}

	hits := prober.Probe(point)
	if hit, ok := acceptHit(hits, c.cfg.AcceptEstimated); ok {
		c.acceptTarget(hit)
	} else {
		c.handleMiss()
	}

	c.step()
}

// acceptTarget records an accepted probe hit and transitions toward
// Found. The transition is a suppressed no-op when already Found.
func (c *Controller) acceptTarget(hit Hit) {
	c.mu.Lock()
	if c.removed {
		c.mu.Unlock()
		return
	}
	pose := hit.Pose
	pos := pose.Position
	c.targetPose = &pose
	c.lastValid = &pos
	c.lastHitAt = time.Now()
	c.mu.Unlock()

	c.setState(StateFound)
}

// handleMiss reacts to a probe cycle with no accepted hit: Found falls
// back to Tracking immediately; Tracking falls to Hidden only after the
// configured grace delay (when enabled).
func (c *Controller) handleMiss() {
	c.mu.RLock()
	state := c.state
	lastHit := c.lastHitAt
	c.mu.RUnlock()

	switch state {
	case StateFound:
		c.setState(StateTracking)
	case StateTracking:
		if c.cfg.HideAfterLost > 0 && !lastHit.IsZero() &&
			time.Since(lastHit) > c.cfg.HideAfterLost {
			log.Debug("surface lost beyond grace delay, hiding marker")
			c.setState(StateHidden)
		}
	}
}

// step advances the smoothed pose one interpolation increment toward
// the target pose and snaps exactly onto it once within epsilon, which
// also clears the pending motion.
func (c *Controller) step() {
	c.mu.Lock()
	if c.removed || c.targetPose == nil {
		c.mu.Unlock()
		return
	}

	target := *c.targetPose
	next := spatial.LerpTransform(c.currentPose, target, c.cfg.Smoothing)
	if next.Position.DistanceTo(target.Position) < c.cfg.SnapEpsilon {
		next = target
		c.targetPose = nil
	}
	c.currentPose = next
	proxy := c.proxy
	c.mu.Unlock()

	c.marker.SetPose(next)
	if proxy != nil {
		proxy.UpdatePosition(next)
	}
}

// setState applies a state transition. Setting the current state again
// is an idempotent no-op: visuals are not re-applied and the handler is
// not re-invoked, so looping animations never restart mid-cycle.
func (c *Controller) setState(next State) {
	c.mu.Lock()
	if c.removed || c.state == next {
		c.mu.Unlock()
		return
	}
	prev := c.state
	c.state = next
	if next != StateTracking && next != StateFound {
		c.targetPose = nil
	}
	if prev == StateHidden && next == StateTracking {
		// Revival grants a full grace window; the stale loss timestamp
		// would re-hide the marker on the first miss.
		c.lastHitAt = time.Now()
	}
	style := c.style
	proxy := c.proxy
	handler := c.onStateChange
	c.mu.Unlock()

	c.applyVisuals(next, style, proxy)
	log.Debug("focus state changed", "from", prev.String(), "to", next.String())

	if handler != nil {
		handler(c, next)
	}
}

// applyVisuals pushes the per-state visual policy to the marker and
// preview.
func (c *Controller) applyVisuals(state State, style Style, proxy *preview.Proxy) {
	switch state {
	case StateInitializing:
		c.marker.StopAnimations()
		c.marker.SetEnabled(false)
		c.marker.SetScale(spatial.Uniform(style.ScaleTracking))
		if proxy != nil {
			proxy.Hide()
		}

	case StateTracking:
		c.marker.StopAnimations()
		c.marker.SetEnabled(true)
		c.marker.SetScale(spatial.Uniform(style.ScaleTracking))
		if proxy != nil {
			proxy.Hide()
		}

	case StateFound:
		c.marker.SetEnabled(true)
		c.marker.SetScale(spatial.Uniform(style.ScaleFound))
		if style.FoundAnimation != "" {
			c.marker.PlayAnimation(style.FoundAnimation, style.FoundRepeat)
		}
		if proxy != nil {
			proxy.Show()
		}

	case StateHidden:
		c.marker.StopAnimations()
		c.marker.SetEnabled(false)
		if proxy != nil {
			proxy.Hide()
		}
	}
}

// acceptHit selects the hit to track from ranked probe results.
// Existing geometry always wins over estimated planes regardless of
// rank order; estimated planes are used only when allowed.
func acceptHit(hits []Hit, acceptEstimated bool) (Hit, bool) {
	for _, h := range hits {
		if h.Category == HitExistingGeometry {
			return h, true
		}
	}
	if acceptEstimated {
		for _, h := range hits {
			if h.Category == HitEstimatedPlane {
				return h, true
			}
		}
	}
	return Hit{}, false
}
