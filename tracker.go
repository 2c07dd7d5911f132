package screentrack

import (
	"errors"
	"time"

	"github.com/screentrack/screentrack-go/adapters"
)

// Tracker is the entry point of the library. It holds the configured
// adapters and creates one TrackingSession per screen visit.
type Tracker struct {
	sink     SinkAdapter
	env      EnvironmentAdapter
	logger   LoggerAdapter
	clock    func() time.Time
	composer *EventComposer
}

// NewTracker creates a new Tracker.
func NewTracker(config Config) (*Tracker, error) {
	// Validate required fields
	if config.Sink == nil {
		return nil, errors.New("sink must be provided in config")
	}

	tracker := &Tracker{
		sink:     config.Sink,
		composer: NewEventComposer(),
	}

	// Use provided adapters or defaults
	if config.Environment != nil {
		tracker.env = config.Environment
	} else {
		tracker.env = adapters.NewHostEnvironmentAdapter()
	}

	if config.Logger != nil {
		tracker.logger = config.Logger
	} else {
		tracker.logger = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}

	if config.Clock != nil {
		tracker.clock = config.Clock
	} else {
		tracker.clock = time.Now
	}

	return tracker, nil
}

// NewSession starts tracking one screen visit. The entry timestamp is the
// clock reading at the moment of the call and never changes afterwards.
func (t *Tracker) NewSession(tag string) (*TrackingSession, error) {
	if tag == "" {
		return nil, errors.New("screen tag cannot be empty")
	}

	dwell := NewDwellTracker(t.clock)
	session := &TrackingSession{
		identity: ScreenIdentity{Tag: tag, EnteredAt: dwell.EnteredAt()},
		builder:  NewParameterBuilder(t.env),
		composer: t.composer,
		dwell:    dwell,
		sink:     t.sink,
		logger:   t.logger,
	}

	t.logger.Debug("Started session for screen: %s", tag)
	return session, nil
}

// SetUser forwards the user identity to the sink. Pure passthrough, no
// merging into event parameters.
func (t *Tracker) SetUser(id string) {
	t.sink.SetUserID(id)
}

// SetUserProperty forwards a user property to the sink. Pure passthrough.
func (t *Tracker) SetUserProperty(name, value string) {
	t.sink.SetUserProperty(name, value)
}
