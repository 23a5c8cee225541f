package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// Tests mutate the global logger and cannot run in parallel.

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbose    bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "console output mode"},
		{name: "verbose console", verbose: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			require.NoError(t, Initialize(tt.jsonOutput, tt.verbose))
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
			assert.Equal(t, tt.verbose, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

			Cleanup()
		})
	}
}

func TestComponentLogger(t *testing.T) {
	require.NoError(t, Initialize(true, false))
	defer Cleanup()

	log := ComponentLogger("gen")
	require.NotNil(t, log)
	assert.Equal(t, "gen", log.Desugar().Name())
}
