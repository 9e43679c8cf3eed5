package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// VersionSeparator splits the externally published version from the internal modification revision.
const VersionSeparator = ".sse."

// VersionParts is the result of splitting a dual version string.
type VersionParts struct {
	// External is the upstream version (e.g., "3.6.0").
	External string

	// Internal is the in-house revision (e.g., "1.1.0"). Only meaningful when HasInternal is set.
	Internal string

	// HasInternal reports whether the raw version carried an internal revision.
	HasInternal bool
}

// SplitVersion splits raw on VersionSeparator.
// A version without the separator has no internal part; a version with more than one is rejected.
func SplitVersion(raw string) (VersionParts, error) {
	pieces := strings.Split(raw, VersionSeparator)
	switch len(pieces) {
	case 1:
		return VersionParts{External: raw}, nil
	case 2:
		return VersionParts{External: pieces[0], Internal: pieces[1], HasInternal: true}, nil
	default:
		err := zerr.With(zerr.Wrap(ErrMalformedVersion, "cannot split version"), "version", raw)
		return VersionParts{}, zerr.With(err, "separators", len(pieces)-1)
	}
}

// PackageVersion returns the version consumers should see as the package version:
// the internal revision when present, the external version otherwise.
func (v VersionParts) PackageVersion() string {
	if v.HasInternal {
		return v.Internal
	}
	return v.External
}

// String joins the parts back into the raw form.
func (v VersionParts) String() string {
	if !v.HasInternal {
		return v.External
	}
	return v.External + VersionSeparator + v.Internal
}
