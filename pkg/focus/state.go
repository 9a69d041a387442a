package focus

// State is the lifecycle phase of the focus marker. It drives
// visibility, scale and animation policy as well as preview visibility.
type State int

const (
	// StateInitializing is the phase before Start: marker disabled,
	// scaled down, preview hidden.
	StateInitializing State = iota
	// StateTracking means probes are running but no surface is under
	// the screen center.
	StateTracking
	// StateFound means the last probe accepted a surface hit; the
	// marker sits on it and the preview (if enabled) is visible.
	StateFound
	// StateHidden means the marker was explicitly hidden; probes are
	// skipped until Show or Start.
	StateHidden
)

// String returns the lowercase state name for logging.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateTracking:
		return "tracking"
	case StateFound:
		return "found"
	case StateHidden:
		return "hidden"
	default:
		return "unknown"
	}
}
