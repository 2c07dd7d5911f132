package screentrack

import "time"

// dateLayout is the canonical textual form for dwell timestamps.
const dateLayout = "2006-01-02 15:04:05"

// TrackingSession binds one screen identity to the composition and dwell
// machinery and exposes the public tracking operations. Sessions are
// single-threaded: all operations are synchronous and expected to run on
// whatever goroutine the host delivers UI callbacks on. One session per
// active screen; sessions are never shared between screens.
type TrackingSession struct {
	identity ScreenIdentity
	builder  *ParameterBuilder
	composer *EventComposer
	dwell    *DwellTracker
	sink     SinkAdapter
	logger   LoggerAdapter
}

// Identity returns the session's screen identity.
func (s *TrackingSession) Identity() ScreenIdentity {
	return s.identity
}

// LogUserEvent dispatches a user-initiated event. The event name is seeded
// under the "event" key, extra parameters overwrite it on collision, and
// the default enrichment parameters overwrite both (see Compose).
func (s *TrackingSession) LogUserEvent(eventName string, extra ParameterMap) {
	explicit := make(ParameterMap, len(extra)+1)
	explicit["event"] = eventName
	for k, v := range extra {
		explicit[k] = v
	}

	defaults := s.builder.BuildDefaultParameters(s.identity.Tag)
	record := s.composer.Compose(eventName, explicit, defaults)
	s.dispatch(record)
}

// LogLifecycleTransition dispatches an app-lifecycle event under the
// transition's literal notification name. The parameters are exactly the
// default enrichment parameters; no "event" key is added.
func (s *TrackingSession) LogLifecycleTransition(kind LifecycleTransition) {
	defaults := s.builder.BuildDefaultParameters(s.identity.Tag)
	record := s.composer.Compose(string(kind), nil, defaults)
	s.dispatch(record)
}

// FinalizeVisit dispatches the dwell event for this screen visit under the
// screen tag, carrying entry/exit timestamps and the time spent. There is
// no "already finalized" guard: calling FinalizeVisit twice emits two
// events sharing enteredAt with freshly sampled leftAt/stayedFor. Hosts
// wanting exactly-once semantics must gate the call themselves.
func (s *TrackingSession) FinalizeVisit() {
	window := s.dwell.Snapshot()
	explicit := ParameterMap{
		"enteredAt":   unixSeconds(window.EnteredAt),
		"enteredDate": window.EnteredAt.Format(dateLayout),
		"leftAt":      unixSeconds(window.LeftAt),
		"leftDate":    window.LeftAt.Format(dateLayout),
		"stayedFor":   window.StayedFor.Seconds(),
	}

	defaults := s.builder.BuildDefaultParameters(s.identity.Tag)
	record := s.composer.Compose(s.identity.Tag, explicit, defaults)
	s.dispatch(record)
}

// ElapsedSinceEntry returns the time spent on the screen so far.
func (s *TrackingSession) ElapsedSinceEntry() time.Duration {
	return s.dwell.ElapsedSinceEntry()
}

func (s *TrackingSession) dispatch(record EventRecord) {
	s.logger.Debug("Dispatching event: %s", record.Name)
	s.sink.LogEvent(record.Name, record.Parameters)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
