package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/ttscatalog/pkg/logging"
)

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)

	logging.Debug().Msg("debug line")
	logging.Warn().Str("repo", "csukuangfj/vits-coqui-de-css10").Msg("excluded")

	assert.Equal(t, 2, tl.Count())
	assert.True(t, tl.Contains("excluded"))
	assert.Len(t, tl.Lines(), 2)
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	assert.NotPanics(t, func() {
		logger.Error().Msg("dropped")
	})
}
