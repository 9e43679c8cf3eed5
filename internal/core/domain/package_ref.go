package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var validPackageNameRegex = regexp.MustCompile("^[a-zA-Z_][a-zA-Z0-9_]*$")

// PackageRef is a named, optionally versioned requirement (e.g., "maya-2022.3", "python-2").
type PackageRef struct {
	// Name is the package name (e.g., "maya").
	Name InternedString

	// Version is the version constraint, zero when the reference is unversioned.
	Version InternedString
}

// ParsePackageRef parses a "name-version" requirement string.
// The name ends at the first hyphen; everything after it is the version.
func ParsePackageRef(s string) (PackageRef, error) {
	s = strings.TrimSpace(s)
	name, version, hasVersion := strings.Cut(s, "-")

	if !validPackageNameRegex.MatchString(name) {
		return PackageRef{}, zerr.With(zerr.Wrap(ErrInvalidPackageRef, "invalid package name"), "ref", s)
	}
	if hasVersion && version == "" {
		return PackageRef{}, zerr.With(zerr.Wrap(ErrInvalidPackageRef, "empty version"), "ref", s)
	}

	ref := PackageRef{Name: NewInternedString(name)}
	if hasVersion {
		ref.Version = NewInternedString(version)
	}
	return ref, nil
}

// ParsePackageRefs parses every string in refs, preserving order.
func ParsePackageRefs(refs []string) ([]PackageRef, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	res := make([]PackageRef, len(refs))
	for i, s := range refs {
		ref, err := ParsePackageRef(s)
		if err != nil {
			return nil, zerr.With(err, "position", i)
		}
		res[i] = ref
	}
	return res, nil
}

// HasVersion reports whether the reference carries a version constraint.
func (r PackageRef) HasVersion() bool {
	return !r.Version.IsZero()
}

// String renders the reference in its "name-version" form.
func (r PackageRef) String() string {
	if !r.HasVersion() {
		return r.Name.String()
	}
	return r.Name.String() + "-" + r.Version.String()
}

// Satisfies reports whether r fulfils the request req.
// An unversioned request matches any version; a versioned request matches the
// same version or any version it prefixes at a "." or "-" boundary, so
// "maya-2022" is satisfied by "maya-2022.3" but not by "maya-20221".
func (r PackageRef) Satisfies(req PackageRef) bool {
	if r.Name != req.Name {
		return false
	}
	if !req.HasVersion() {
		return true
	}
	if !r.HasVersion() {
		return false
	}

	have, want := r.Version.String(), req.Version.String()
	if have == want {
		return true
	}
	if !strings.HasPrefix(have, want) {
		return false
	}
	next := have[len(want)]
	return next == '.' || next == '-'
}

// MarshalText implements encoding.TextMarshaler.
func (r PackageRef) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *PackageRef) UnmarshalText(text []byte) error {
	ref, err := ParsePackageRef(string(text))
	if err != nil {
		return err
	}
	*r = ref
	return nil
}
