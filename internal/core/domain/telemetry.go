package domain

// LifecyclePhase names the point in the consumer's lifecycle at which the engine is invoked.
type LifecyclePhase string

const (
	// PhaseLoad covers descriptor loading and validation.
	PhaseLoad LifecyclePhase = "load"
	// PhasePlan covers build plan resolution for a variant.
	PhasePlan LifecyclePhase = "plan"
	// PhasePreBuild covers selection of the pre-build commands.
	PhasePreBuild LifecyclePhase = "pre-build"
	// PhaseActivate covers composition of the runtime environment.
	PhaseActivate LifecyclePhase = "activate"
	// PhaseRelease covers release destination resolution.
	PhaseRelease LifecyclePhase = "release"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// VertexName returns the telemetry vertex label for a phase of the given package.
func (p LifecyclePhase) VertexName(pkg string) string {
	return pkg + " " + string(p)
}
