package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosityLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default is warn", 0, zerolog.WarnLevel},
		{"one v is info", 1, zerolog.InfoLevel},
		{"two v is debug", 2, zerolog.DebugLevel},
		{"three v is trace", 3, zerolog.TraceLevel},
		{"beyond three stays trace", 7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("discover")
	// Component loggers must be usable without further setup.
	logger.Debug().Msg("ping")
	assert.NotNil(t, logger)
}

func TestLogOperationStart(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "generate")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"generate"`)
	assert.Contains(t, out, `"duration"`)
}

func TestGetLogFilePath(t *testing.T) {
	path := getLogFilePath()
	assert.True(t, strings.HasSuffix(path, "codepdf.log"))
	assert.Contains(t, path, "codepdf")
}
