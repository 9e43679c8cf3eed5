package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgdesc/internal/adapters/logger"
	"go.trai.ch/pkgdesc/internal/app"
	"go.trai.ch/pkgdesc/internal/core/ports/mocks"
	_ "go.trai.ch/pkgdesc/internal/wiring"
	"go.uber.org/mock/gomock"
)

func TestNewApp_Success(t *testing.T) {
	components, err := app.NewApp(context.Background())
	require.NoError(t, err)

	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Telemetry)
	require.NoError(t, components.Close())
}

func TestApp_SetJSONLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	var buf bytes.Buffer
	lg := logger.NewWithOutput(&buf)

	a := app.New(
		mocks.NewMockDescriptorLoader(ctrl),
		mocks.NewMockOSIdentitySource(ctrl),
		mocks.NewMockLayoutVerifier(ctrl),
		mocks.NewMockCommandRunner(ctrl),
		lg,
		mocks.NewMockTelemetry(ctrl),
	)
	a.SetJSONLogs(true)
	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
}
