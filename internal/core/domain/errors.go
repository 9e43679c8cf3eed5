package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedVersion is returned when a version string contains more than one ".sse." separator.
	ErrMalformedVersion = zerr.New("malformed version string")

	// ErrMissingVersion is returned when a descriptor does not declare a version.
	ErrMissingVersion = zerr.New("missing package version")

	// ErrMissingPackageName is returned when a descriptor does not declare a name.
	ErrMissingPackageName = zerr.New("missing package name")

	// ErrInvalidPackageRef is returned when a requirement string cannot be parsed into a package reference.
	ErrInvalidPackageRef = zerr.New("invalid package reference")

	// ErrDuplicateVariant is returned when two variants list the same requirements in the same order.
	ErrDuplicateVariant = zerr.New("duplicate variant")

	// ErrNoMatchingVariant is returned when no variant satisfies the selection predicate.
	ErrNoMatchingVariant = zerr.New("no matching variant")

	// ErrMissingReleaseLocation is returned when the variable naming a release destination is not set.
	ErrMissingReleaseLocation = zerr.New("missing release location")

	// ErrUnknownReleaseTarget is returned when a release target is neither internal nor external.
	ErrUnknownReleaseTarget = zerr.New("unknown release target, expected 'int' or 'ext'")

	// ErrDescriptorNotFound is returned when no descriptor file exists in the directory or its parents.
	ErrDescriptorNotFound = zerr.New("could not find package descriptor")

	// ErrDescriptorReadFailed is returned when the descriptor file cannot be read.
	ErrDescriptorReadFailed = zerr.New("failed to read package descriptor")

	// ErrDescriptorParseFailed is returned when the descriptor file cannot be parsed.
	ErrDescriptorParseFailed = zerr.New("failed to parse package descriptor")

	// ErrOSReleaseReadFailed is returned when the OS identity file exists but cannot be read.
	ErrOSReleaseReadFailed = zerr.New("failed to read os-release file")

	// ErrLayoutVerifyFailed is returned when an install directory cannot be inspected.
	ErrLayoutVerifyFailed = zerr.New("failed to verify package layout")

	// ErrInvalidEnvOp is returned when an environment operation is neither "set" nor "append".
	ErrInvalidEnvOp = zerr.New("invalid environment operation")

	// ErrCommandFailed is returned when the pre-build script exits unsuccessfully.
	ErrCommandFailed = zerr.New("pre-build command failed")
)
