// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/pkgdesc/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the lifecycle of descriptor operations as vertices.
type Telemetry interface {
	// Record starts a vertex named name and returns a context carrying it.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex's standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer for the vertex's error stream.
	Stderr() io.Writer
	// Log writes a leveled message into the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete finishes the vertex, failed when err is non-nil.
	Complete(err error)
	// Cached marks the vertex as satisfied without work.
	Cached()
}

// VertexConfig holds configuration for a vertex being recorded.
type VertexConfig struct {
	// Phase is the lifecycle phase the vertex belongs to.
	Phase domain.LifecyclePhase
}

// VertexOption configures a vertex.
type VertexOption func(*VertexConfig)

// WithPhase tags the vertex with a lifecycle phase.
func WithPhase(phase domain.LifecyclePhase) VertexOption {
	return func(c *VertexConfig) {
		c.Phase = phase
	}
}

// ApplyVertexOptions folds opts into a VertexConfig.
func ApplyVertexOptions(opts ...VertexOption) VertexConfig {
	var cfg VertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
