// Package config provides configuration helpers for go-arfocus commands.
package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the demo dashboard and probe loop.
const (
	DefaultDashboardPort = "8090"
	DefaultTickInterval  = 50 * time.Millisecond
)

// DashboardPort returns the dashboard port from FOCUS_DASHBOARD_PORT.
// Falls back to the default if not set.
func DashboardPort() string {
	if port := os.Getenv("FOCUS_DASHBOARD_PORT"); port != "" {
		return port
	}
	return DefaultDashboardPort
}

// TickInterval returns the probe tick interval from FOCUS_TICK_MS
// (milliseconds). Falls back to the default if not set or invalid.
func TickInterval() time.Duration {
	if ms := os.Getenv("FOCUS_TICK_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			return time.Duration(v) * time.Millisecond
		}
	}
	return DefaultTickInterval
}

// LogLevel returns the log level from FOCUS_LOG_LEVEL or "info".
func LogLevel() string {
	if lvl := os.Getenv("FOCUS_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
