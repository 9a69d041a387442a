// Command focus-demo runs the focus controller against a simulated
// room and serves a live dashboard. The simulated camera pans across
// an estimated floor plane and a concrete table; the marker tracks
// whatever sits under the screen center and commits a placement once
// the pose has settled on a surface for a while.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teslashibe/go-arfocus/internal/config"
	"github.com/teslashibe/go-arfocus/internal/log"
	"github.com/teslashibe/go-arfocus/pkg/focus"
	"github.com/teslashibe/go-arfocus/pkg/probe"
	"github.com/teslashibe/go-arfocus/pkg/scene"
	"github.com/teslashibe/go-arfocus/pkg/sched"
	"github.com/teslashibe/go-arfocus/pkg/spatial"
	"github.com/teslashibe/go-arfocus/pkg/web"
)

// settleDwell is how long the marker must rest on a surface with no
// pending motion before the demo commits a placement.
const settleDwell = 2 * time.Second

func main() {
	log.Init(config.LogLevel())

	server := web.NewServer(config.DashboardPort())
	server.StartAsync()

	// Scene: a root, the focus marker, and the model to be placed
	root := scene.NewNode("root")

	marker := scene.NewNode("focus-marker")
	marker.SetMaterials([]scene.Material{
		{Kind: scene.MaterialUnlit, Color: scene.RGBA{R: 1, G: 0.8, B: 0.2, A: 1}},
	})
	root.AddChild(marker)

	lamp := scene.NewNode("lamp")
	lamp.SetMaterials([]scene.Material{
		{Kind: scene.MaterialStandard, Color: scene.RGBA{R: 0.9, G: 0.9, B: 0.85, A: 1}},
		{Kind: scene.MaterialTextured, Color: scene.White(), Texture: "lamp_shade"},
	})
	root.AddChild(lamp)

	simCfg := probe.DefaultSimConfig()
	simCfg.DropoutEvery = 40 // Occasional tracking loss
	prober := probe.NewSim(simCfg)

	cfg := focus.DefaultConfig()
	cfg.TickInterval = config.TickInterval()

	scheduler := sched.NewTicker()

	controller := focus.New(marker, prober, scheduler, cfg).
		OnStateChange(func(_ *focus.Controller, state focus.State) {
			server.AddEvent("state", state.String())
			server.UpdateStatus(func(st *web.FocusStatus) {
				st.State = state.String()
			})
		}).
		OnPlacement(func(_ *focus.Controller, position spatial.Vec3) {
			record := server.RecordPlacement(position)
			log.Info("placed model", "id", record.ID,
				"x", position.X, "y", position.Y, "z", position.Z)
		})

	if err := controller.EnablePreview(lamp, focus.DefaultTransparency); err != nil {
		log.Warn("preview degraded", "err", err)
	}

	controller.Start()

	// Publish the smoothed pose to the dashboard
	statusSub := scheduler.Every(200*time.Millisecond, func() {
		pose := controller.Pose()
		alpha, enabled := controller.PreviewAlpha()
		server.UpdateStatus(func(st *web.FocusStatus) {
			st.State = controller.State().String()
			st.X = pose.Position.X
			st.Y = pose.Position.Y
			st.Z = pose.Position.Z
			st.MotionPending = controller.MotionPending()
			st.PreviewEnabled = enabled
			st.PreviewAlpha = alpha
		})
	})

	// Commit a placement once the marker has rested on a surface
	var settledSince time.Time
	placeSub := scheduler.Every(100*time.Millisecond, func() {
		if controller.State() == focus.StateFound && !controller.MotionPending() {
			if settledSince.IsZero() {
				settledSince = time.Now()
			} else if time.Since(settledSince) >= settleDwell {
				controller.TriggerPlacement()
				settledSince = time.Time{}
			}
			return
		}
		settledSince = time.Time{}
	})

	log.Info("focus demo running",
		"dashboard", "http://localhost:"+config.DashboardPort(),
		"tick", cfg.TickInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	placeSub.Cancel()
	statusSub.Cancel()
	controller.Remove()
	server.Shutdown()
}
