package screentrack

import (
	"time"

	"github.com/screentrack/screentrack-go/adapters"
)

// Re-export adapter types for convenience
type (
	SinkAdapter        = adapters.SinkAdapter
	EnvironmentAdapter = adapters.EnvironmentAdapter
	LoggerAdapter      = adapters.LoggerAdapter
	LogLevel           = adapters.LogLevel
)

// ParameterMap is a flat map of scalar event parameter values.
type ParameterMap = map[string]any

// EventRecord is one composed event ready for sink dispatch. Records are
// built per emission and never retained.
type EventRecord struct {
	Name       string
	Parameters ParameterMap
}

// ScreenIdentity identifies one tracked screen visit: the screen tag plus
// the moment the screen was entered. Immutable once the session starts.
type ScreenIdentity struct {
	Tag       string
	EnteredAt time.Time
}

// DwellWindow is a derived view of one screen visit: entry time, exit time
// and time spent. LeftAt is sampled at snapshot time, never cached.
type DwellWindow struct {
	EnteredAt time.Time
	LeftAt    time.Time
	StayedFor time.Duration
}

// LifecycleTransition names an app-level state change. The values are the
// literal platform notification names so downstream consumers keyed on
// them keep working.
type LifecycleTransition string

const (
	LifecycleWillResignActive    LifecycleTransition = "willResignActiveNotification"
	LifecycleWillTerminate       LifecycleTransition = "willTerminateNotification"
	LifecycleWillEnterForeground LifecycleTransition = "willEnterForegroundNotification"
	LifecycleDidBecomeActive     LifecycleTransition = "didBecomeActiveNotification"
)

// Config configures a Tracker.
type Config struct {
	// Sink receives every composed event. Required.
	Sink SinkAdapter
	// Environment supplies locale and device descriptors.
	// Defaults to HostEnvironmentAdapter.
	Environment EnvironmentAdapter
	// Logger receives tracker diagnostics.
	// Defaults to PrintLoggerAdapter at warn level.
	Logger LoggerAdapter
	// Clock supplies timestamps. Defaults to time.Now.
	Clock func() time.Time
}
