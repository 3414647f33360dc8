package logger_test

import (
	"bytes"
	"testing"

	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	logger.InitWithWriter(&buf, false, false)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger.InitWithWriter(&buf, false, true)
	logger.Info().Msg("info visible")
	logger.Debug().Msg("debug hidden")
	assert.Contains(t, buf.String(), "info visible")
	assert.NotContains(t, buf.String(), "debug hidden")

	buf.Reset()
	logger.InitWithWriter(&buf, true, false)
	logger.Default().Debug().Str("kind", "fans").Msg("debug visible")
	assert.Contains(t, buf.String(), "debug visible")
	assert.Contains(t, buf.String(), "kind=fans")
}

func TestErrorWithCode(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, false, false)

	logger.ErrorWithCode(errors.New().New(errors.ErrNoGPU)).Send()
	assert.Contains(t, buf.String(), "error_code=no_gpu")

	logger.SetLogLevel(logger.WarnLevel)
}
