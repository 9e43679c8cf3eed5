package domain

import "go.trai.ch/zerr"

// Descriptor is the loaded, immutable description of a buildable package.
type Descriptor struct {
	Name                 string
	Authors              []string
	RawVersion           string
	Description          string
	UUID                 string
	ReleaseTarget        ReleaseTarget
	Release              ReleaseConfig
	Requires             []PackageRef
	PrivateBuildRequires []PackageRef
	Variants             []Variant
	Prereqs              PrereqRules
	Layout               EnvLayout
}

// Validate checks the invariants every loaded descriptor must hold.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return ErrMissingPackageName
	}
	if d.RawVersion == "" {
		return zerr.With(zerr.Wrap(ErrMissingVersion, "invalid descriptor"), "package", d.Name)
	}
	if _, err := SplitVersion(d.RawVersion); err != nil {
		return err
	}
	if _, err := d.Release.VariableFor(d.ReleaseTarget); err != nil {
		return err
	}
	return ValidateVariants(d.Variants)
}

// Version splits the raw version string.
func (d *Descriptor) Version() (VersionParts, error) {
	return SplitVersion(d.RawVersion)
}
