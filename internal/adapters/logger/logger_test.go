package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgdesc/internal/adapters/logger"
	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	return logger.NewWithOutput(&buf), &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.Info("loaded weightDriver")
	assert.Equal(t, "loaded weightDriver\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.Warn("no variants declared")
	assert.Equal(t, "! no variants declared\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	err := zerr.With(zerr.Wrap(domain.ErrMissingReleaseLocation, "cannot resolve release path"), "target", "external")
	lg.Error(err)

	assert.Equal(t, "✗ Error: cannot resolve release path\n"+
		"       target: external\n\n"+
		"  Caused by:\n"+
		"    → missing release location\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.Wrap(domain.ErrDescriptorNotFound, "searched upward"), "cwd", "/src"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "searched upward: could not find package descriptor", record["error"])
	assert.Equal(t, "/src", record["cwd"])
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	lg, _ := newBufferedLogger(t)
	lg.SetJSON(true)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
}

func TestNew(t *testing.T) {
	assert.NotNil(t, logger.New())
}
