package feed

import (
	"encoding/json"
	"fmt"

	"github.com/teslashibe/go-arfocus/internal/httpc"
	"github.com/teslashibe/go-arfocus/pkg/web"
)

// Snapshot fetches the dashboard's current status over REST. Useful
// before tailing the websocket feed, which only carries changes.
func Snapshot(host, port string) (web.FocusStatus, error) {
	var status web.FocusStatus

	resp, err := httpc.Get(fmt.Sprintf("http://%s:%s/api/status", host, port))
	if err != nil {
		return status, fmt.Errorf("fetch status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return status, fmt.Errorf("fetch status: HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return status, fmt.Errorf("decode status: %w", err)
	}
	return status, nil
}
