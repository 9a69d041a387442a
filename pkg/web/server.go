// Package web provides a real-time dashboard for a focus controller:
// REST endpoints for current status and placement history, plus
// websocket feeds pushing live state and events.
package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/teslashibe/go-arfocus/internal/log"
	"github.com/teslashibe/go-arfocus/pkg/hub"
	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

// FocusStatus is the dashboard's view of the controller.
type FocusStatus struct {
	State          string  `json:"state"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Z              float64 `json:"z"`
	MotionPending  bool    `json:"motion_pending"`
	PreviewEnabled bool    `json:"preview_enabled"`
	PreviewAlpha   float64 `json:"preview_alpha"`
	Placements     int     `json:"placements"`
}

// PlacementRecord is one committed placement.
type PlacementRecord struct {
	ID   string  `json:"id"`
	Time string  `json:"time"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

// maxEvents bounds the event buffer; older entries are evicted.
const maxEvents = 500

// Event is a log line for the dashboard.
type Event struct {
	Time    string `json:"time"`
	Type    string `json:"type"` // state, placement, info
	Message string `json:"message"`
}

// Server is the dashboard server.
type Server struct {
	app  *fiber.App
	port string

	status   FocusStatus
	statusMu sync.RWMutex

	placements   []PlacementRecord
	placementsMu sync.RWMutex

	// Event buffer (last maxEvents entries)
	events   []Event
	eventsMu sync.RWMutex

	statusHub *hub.Hub
	eventHub  *hub.Hub
}

// NewServer creates a dashboard server listening on the given port.
func NewServer(port string) *Server {
	s := &Server{
		port:      port,
		events:    make([]Event, 0, maxEvents),
		statusHub: hub.New("status"),
		eventHub:  hub.New("events"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Focus Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/placements", s.handlePlacements)
	api.Get("/events", s.handleEvents)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/status", websocket.New(s.handleStatusWS))
	app.Get("/ws/events", websocket.New(s.handleEventsWS))

	s.app = app
	return s
}

// Start starts the server and blocks.
func (s *Server) Start() error {
	log.Info("dashboard listening", "addr", "http://localhost:"+s.port)

	go s.statusHub.Run()
	go s.eventHub.Run()

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("dashboard server error", "err", err)
		}
	}()
}

// UpdateStatus mutates the dashboard status and broadcasts the result
// to all status subscribers.
func (s *Server) UpdateStatus(update func(*FocusStatus)) {
	s.statusMu.Lock()
	update(&s.status)
	status := s.status // Copy for broadcast
	s.statusMu.Unlock()

	s.statusHub.BroadcastJSON(status)
}

// RecordPlacement appends a placement with a fresh ID and broadcasts
// it on the event feed. Returns the record.
func (s *Server) RecordPlacement(position spatial.Vec3) PlacementRecord {
	record := PlacementRecord{
		ID:   uuid.NewString(),
		Time: time.Now().Format("15:04:05"),
		X:    position.X,
		Y:    position.Y,
		Z:    position.Z,
	}

	s.placementsMu.Lock()
	s.placements = append(s.placements, record)
	count := len(s.placements)
	s.placementsMu.Unlock()

	s.UpdateStatus(func(st *FocusStatus) {
		st.Placements = count
	})
	s.AddEvent("placement", record.ID)

	return record
}

// AddEvent appends an event and broadcasts it to event subscribers.
func (s *Server) AddEvent(eventType, message string) {
	entry := Event{
		Time:    time.Now().Format("15:04:05"),
		Type:    eventType,
		Message: message,
	}

	s.eventsMu.Lock()
	s.events = append(s.events, entry)
	if len(s.events) > maxEvents {
		// Shift in place so the backing array stays bounded
		copy(s.events, s.events[1:])
		s.events = s.events[:maxEvents]
	}
	s.eventsMu.Unlock()

	s.eventHub.BroadcastJSON(entry)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
