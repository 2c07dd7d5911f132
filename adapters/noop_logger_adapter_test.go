package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoOpLoggerAdapter(t *testing.T) {
	t.Run("should satisfy the LoggerAdapter interface", func(t *testing.T) {
		logger := NewNoOpLoggerAdapter()
		assert.NotNil(t, logger)
		assert.Implements(t, (*LoggerAdapter)(nil), logger)
	})

	t.Run("should swallow every level and argument shape", func(t *testing.T) {
		buf := captureLogOutput(t)
		logger := NewNoOpLoggerAdapter()

		logger.Debug("message")
		logger.Info("message %s %d", "test", 123)
		logger.Warn("message", nil)
		logger.Error("message", "arg1", "arg2")

		assert.Empty(t, buf.String())
	})
}
