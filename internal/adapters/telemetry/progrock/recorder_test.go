package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgdesc/internal/adapters/telemetry/progrock"
	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/pkgdesc/internal/core/ports"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, progrock.New())
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(),
		domain.PhaseActivate.VertexName("weightDriver"), ports.WithPhase(domain.PhaseActivate))
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("WEIGHTDRIVER_ROOT+=/pkg/root\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Log(domain.LogLevelError, "error msg")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_Cached(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "weightDriver load")
	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}
