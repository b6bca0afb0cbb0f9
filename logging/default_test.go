package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMergesFields(t *testing.T) {
	logger := NewDefaultLogger().WithFields(Fields{"component": "test"}).(*DefaultLogger)

	line := logger.format(InfoLevel, nil, "hello", Fields{"frames": 7})
	assert.Equal(t, "[INFO] hello component=test frames=7", line)
}

func TestFormatIncludesError(t *testing.T) {
	logger := NewDefaultLogger()

	line := logger.format(ErrorLevel, errors.New("boom"), "failed")
	assert.Equal(t, "[ERROR] failed error=boom", line)
}

func TestFormatCallSiteFieldsWin(t *testing.T) {
	logger := NewDefaultLogger().WithFields(Fields{"stage": "preset"}).(*DefaultLogger)

	line := logger.format(DebugLevel, nil, "msg", Fields{"stage": "override"})
	assert.Equal(t, "[DEBUG] msg stage=override", line)
}

func TestSetGlobalLoggerNilResets(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())
}
