package screentrack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screentrack/screentrack-go/adapters"
)

func TestNewTracker(t *testing.T) {
	t.Run("should return error if sink is missing", func(t *testing.T) {
		_, err := NewTracker(Config{})
		require.Error(t, err)
		assert.Equal(t, "sink must be provided in config", err.Error())
	})

	t.Run("should apply default adapters", func(t *testing.T) {
		tracker, err := NewTracker(Config{Sink: adapters.NewRecordingSinkAdapter()})
		require.NoError(t, err)

		assert.IsType(t, &adapters.HostEnvironmentAdapter{}, tracker.env)
		assert.IsType(t, &adapters.PrintLoggerAdapter{}, tracker.logger)
		assert.NotNil(t, tracker.clock)
	})

	t.Run("should keep provided adapters", func(t *testing.T) {
		env := fullEnvironment()
		logger := adapters.NewNoOpLoggerAdapter()
		clock := newManualClock(1000)

		tracker, err := NewTracker(Config{
			Sink:        adapters.NewRecordingSinkAdapter(),
			Environment: env,
			Logger:      logger,
			Clock:       clock.Now,
		})
		require.NoError(t, err)

		assert.Same(t, env, tracker.env)
		assert.Same(t, logger, tracker.logger)
	})
}

func TestTracker_NewSession(t *testing.T) {
	t.Run("should return error for an empty tag", func(t *testing.T) {
		tracker, err := NewTracker(Config{Sink: adapters.NewRecordingSinkAdapter()})
		require.NoError(t, err)

		_, err = tracker.NewSession("")
		require.Error(t, err)
		assert.Equal(t, "screen tag cannot be empty", err.Error())
	})

	t.Run("should capture entry time from the tracker clock", func(t *testing.T) {
		clock := newManualClock(1000)
		tracker, err := NewTracker(Config{
			Sink:        adapters.NewRecordingSinkAdapter(),
			Environment: fullEnvironment(),
			Clock:       clock.Now,
		})
		require.NoError(t, err)

		session, err := tracker.NewSession("MyView")
		require.NoError(t, err)
		assert.Equal(t, time.Unix(1000, 0), session.Identity().EnteredAt)
	})

	t.Run("sessions should be independent", func(t *testing.T) {
		clock := newManualClock(1000)
		sink := adapters.NewRecordingSinkAdapter()
		tracker, err := NewTracker(Config{
			Sink:        sink,
			Environment: fullEnvironment(),
			Logger:      adapters.NewNoOpLoggerAdapter(),
			Clock:       clock.Now,
		})
		require.NoError(t, err)

		first, err := tracker.NewSession("FirstView")
		require.NoError(t, err)
		clock.Advance(10 * time.Second)
		second, err := tracker.NewSession("SecondView")
		require.NoError(t, err)

		clock.Advance(5 * time.Second)
		first.FinalizeVisit()
		second.FinalizeVisit()

		events := sink.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "FirstView", events[0].Name)
		assert.Equal(t, 15.0, events[0].Parameters["stayedFor"])
		assert.Equal(t, "SecondView", events[1].Name)
		assert.Equal(t, 5.0, events[1].Parameters["stayedFor"])
	})
}

func TestTracker_UserPassthroughs(t *testing.T) {
	sink := adapters.NewRecordingSinkAdapter()
	tracker, err := NewTracker(Config{Sink: sink, Environment: fullEnvironment()})
	require.NoError(t, err)

	tracker.SetUser("user-42")
	tracker.SetUserProperty("plan", "premium")

	assert.Equal(t, "user-42", sink.UserID())
	assert.Equal(t, map[string]string{"plan": "premium"}, sink.UserProperties())
	// Passthroughs never produce events.
	assert.Equal(t, 0, sink.Len())
}
