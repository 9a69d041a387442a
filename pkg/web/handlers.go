package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-arfocus/pkg/hub"
)

// handleStatus returns the controller's current dashboard state
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return c.JSON(s.status)
}

// handlePlacements returns all committed placements
func (s *Server) handlePlacements(c *fiber.Ctx) error {
	s.placementsMu.RLock()
	defer s.placementsMu.RUnlock()

	records := s.placements
	if records == nil {
		records = []PlacementRecord{}
	}
	return c.JSON(records)
}

// handleEvents returns recent events
func (s *Server) handleEvents(c *fiber.Ctx) error {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	return c.JSON(s.events)
}

// handleStatusWS streams live status updates. The current snapshot is
// sent before the client joins the broadcast feed.
func (s *Server) handleStatusWS(c *websocket.Conn) {
	s.statusMu.RLock()
	c.WriteJSON(s.status)
	s.statusMu.RUnlock()

	hub.NewClient(s.statusHub, c).Run()
}

// handleEventsWS streams live events, replaying the recent buffer on
// connect.
func (s *Server) handleEventsWS(c *websocket.Conn) {
	s.eventsMu.RLock()
	for _, entry := range s.events {
		c.WriteJSON(entry)
	}
	s.eventsMu.RUnlock()

	hub.NewClient(s.eventHub, c).Run()
}
