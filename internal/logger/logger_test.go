package logger

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_Levels(t *testing.T) {
	defer func() {
		require.NoError(t, Configure("info", ""))
	}()

	tests := []struct {
		level    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"nonsense", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.NoError(t, Configure(tt.level, ""))
			assert.Equal(t, tt.expected, Logger.GetLevel())
		})
	}
}

func TestNewStyledLogger(t *testing.T) {
	defer func() {
		require.NoError(t, Configure("info", ""))
	}()

	require.NoError(t, Configure("debug", ""))

	component := NewStyledLogger("Registry")
	require.NotNil(t, component)
	assert.Equal(t, "Registry ", component.GetPrefix())
	assert.Equal(t, log.DebugLevel, component.GetLevel(), "component loggers inherit the configured level")
}
