package errors_test

import (
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/hwreport/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	errFactory := errors.New()

	assert.Equal(t, "No fan information", errFactory.New(errors.ErrNoFans).Error())
	assert.Equal(t, "No GPU found", errFactory.New(errors.ErrNoGPU).Error())
	assert.Equal(t, "custom", errFactory.WithMessage(errors.ErrInternal, "custom").Error())
	assert.Equal(t, "unknown_code", errors.GetErrorMessage("unknown_code"))
}

func TestWrapAndData(t *testing.T) {
	errFactory := errors.New()
	cause := stderrors.New("permission denied")

	err := errFactory.Wrap(errors.ErrProviderFailed, cause)
	assert.Equal(t, "Sensor provider failed: permission denied", err.Error())
	assert.True(t, errors.Is(err, cause))

	withData := errFactory.WithData(errors.ErrInvalidInterval, -1.5)
	assert.Equal(t, "Invalid interval value: -1.5", withData.Error())
	assert.Equal(t, -1.5, withData.GetData())
}

func TestHasCode(t *testing.T) {
	errFactory := errors.New()
	inner := errFactory.New(errors.ErrNoBattery)
	outer := errFactory.Wrap(errors.ErrProviderFailed, inner)

	assert.True(t, errors.HasCode(outer, errors.ErrProviderFailed))
	assert.True(t, errors.HasCode(outer, errors.ErrNoBattery))
	assert.False(t, errors.HasCode(outer, errors.ErrNoGPU))
	assert.False(t, errors.HasCode(stderrors.New("plain"), errors.ErrNoGPU))
	assert.False(t, errors.HasCode(nil, errors.ErrNoGPU))

	assert.Equal(t, errors.ErrProviderFailed, errors.CodeOf(outer))
	assert.Equal(t, errors.ErrInternal, errors.CodeOf(stderrors.New("plain")))
}
