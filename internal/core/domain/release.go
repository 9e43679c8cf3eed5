package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ReleaseTarget classifies where a built package is published.
type ReleaseTarget string

const (
	// ReleaseInternal publishes to the in-house package repository.
	ReleaseInternal ReleaseTarget = "internal"
	// ReleaseExternal publishes to the repository for third-party packages.
	ReleaseExternal ReleaseTarget = "external"
)

const (
	// DefaultInternalReleaseVar names the variable holding the internal release path.
	DefaultInternalReleaseVar = "SSE_REZ_REPO_RELEASE_INT"
	// DefaultExternalReleaseVar names the variable holding the external release path.
	DefaultExternalReleaseVar = "SSE_REZ_REPO_RELEASE_EXT"
)

// ParseReleaseTarget accepts the short ("int", "ext") and long ("internal", "external") forms.
func ParseReleaseTarget(s string) (ReleaseTarget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", string(ReleaseInternal):
		return ReleaseInternal, nil
	case "ext", string(ReleaseExternal):
		return ReleaseExternal, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownReleaseTarget, "cannot parse release target"), "release_as", s)
	}
}

// ReleaseConfig names the environment variables that carry each release destination.
// It is passed by value; nothing mutates it after load.
type ReleaseConfig struct {
	InternalVar string
	ExternalVar string
}

// DefaultReleaseConfig returns the standard variable names.
func DefaultReleaseConfig() ReleaseConfig {
	return ReleaseConfig{
		InternalVar: DefaultInternalReleaseVar,
		ExternalVar: DefaultExternalReleaseVar,
	}
}

// VariableFor returns the variable consulted for target.
func (c ReleaseConfig) VariableFor(target ReleaseTarget) (string, error) {
	switch target {
	case ReleaseInternal:
		return c.InternalVar, nil
	case ReleaseExternal:
		return c.ExternalVar, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownReleaseTarget, "cannot select release variable"), "release_as", string(target))
	}
}

// ResolveReleasePath maps target to a destination path using env.
// A missing or empty variable is fatal: publishing to the wrong repository is never recoverable.
func ResolveReleasePath(target ReleaseTarget, cfg ReleaseConfig, env map[string]string) (string, error) {
	variable, err := cfg.VariableFor(target)
	if err != nil {
		return "", err
	}

	path, ok := env[variable]
	if !ok || path == "" {
		err := zerr.With(zerr.Wrap(ErrMissingReleaseLocation, "cannot resolve release path"), "target", string(target))
		return "", zerr.With(err, "variable", variable)
	}
	return path, nil
}
