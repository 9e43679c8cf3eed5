// Package osrelease reads the host distribution identity from os-release files.
package osrelease

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPaths lists the os-release locations in lookup order.
var DefaultPaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Source implements ports.OSIdentitySource by reading the first existing os-release file.
type Source struct {
	Paths []string

	// Required makes a missing file an error instead of an empty identity.
	Required bool
}

// New creates a Source reading the standard locations.
func New() *Source {
	return NewSource(DefaultPaths...)
}

// NewSource creates a Source reading paths in order.
func NewSource(paths ...string) *Source {
	return &Source{Paths: paths}
}

// NewRequiredSource creates a Source that reads exactly path and fails if it does not exist.
func NewRequiredSource(path string) *Source {
	return &Source{Paths: []string{path}, Required: true}
}

// Identity returns the identity from the first existing file.
// When none exists the identity is empty and the fallback distribution applies,
// unless the source is Required.
func (s *Source) Identity() (domain.OSIdentity, error) {
	for _, path := range s.Paths {
		text, err := readFile(path)
		if errors.Is(err, fs.ErrNotExist) && !s.Required {
			continue
		}
		if err != nil {
			err = zerr.With(zerr.Wrap(domain.ErrOSReleaseReadFailed, "cannot read os-release"), "cause", err.Error())
			return domain.OSIdentity{}, zerr.With(err, "path", path)
		}
		return domain.ParseOSRelease(text), nil
	}
	return domain.NewOSIdentity(nil), nil
}

func readFile(path string) (string, error) {
	// #nosec G304 -- path comes from the configured lookup list
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
