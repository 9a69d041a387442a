package web

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teslashibe/go-arfocus/pkg/spatial"
)

func getJSON(t *testing.T, s *Server, path string, out any) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestServer_StatusEndpoint(t *testing.T) {
	s := NewServer("0")
	s.UpdateStatus(func(st *FocusStatus) {
		st.State = "found"
		st.X = 1.5
		st.PreviewEnabled = true
		st.PreviewAlpha = 0.5
	})

	var got FocusStatus
	getJSON(t, s, "/api/status", &got)

	assert.Equal(t, "found", got.State)
	assert.Equal(t, 1.5, got.X)
	assert.True(t, got.PreviewEnabled)
	assert.Equal(t, 0.5, got.PreviewAlpha)
}

func TestServer_RecordPlacement(t *testing.T) {
	s := NewServer("0")

	record := s.RecordPlacement(spatial.Vec3{X: 1, Y: 0, Z: 2})
	assert.NotEmpty(t, record.ID)

	var placements []PlacementRecord
	getJSON(t, s, "/api/placements", &placements)
	require.Len(t, placements, 1)
	assert.Equal(t, record.ID, placements[0].ID)
	assert.Equal(t, 2.0, placements[0].Z)

	var status FocusStatus
	getJSON(t, s, "/api/status", &status)
	assert.Equal(t, 1, status.Placements)

	// Placements are also visible on the event feed buffer
	var events []Event
	getJSON(t, s, "/api/events", &events)
	require.Len(t, events, 1)
	assert.Equal(t, "placement", events[0].Type)
}

func TestServer_EventBufferEvictsOldest(t *testing.T) {
	s := NewServer("0")

	for i := 0; i < maxEvents+20; i++ {
		s.AddEvent("info", strconv.Itoa(i))
	}

	var events []Event
	getJSON(t, s, "/api/events", &events)
	require.Len(t, events, maxEvents)
	assert.Equal(t, "20", events[0].Message)
	assert.Equal(t, strconv.Itoa(maxEvents+19), events[maxEvents-1].Message)
}

func TestServer_PlacementsEmptyIsArray(t *testing.T) {
	s := NewServer("0")

	var placements []PlacementRecord
	getJSON(t, s, "/api/placements", &placements)
	assert.Empty(t, placements)
}
