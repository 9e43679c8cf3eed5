package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// BuildPlan is the concrete build recipe for one variant of a descriptor.
type BuildPlan struct {
	ID            string        `json:"id"`
	Package       string        `json:"package"`
	Version       string        `json:"version"`
	VariantIndex  int           `json:"variant_index"`
	Variant       []string      `json:"variant"`
	Subpath       string        `json:"subpath,omitzero"`
	Requires      []string      `json:"requires,omitzero"`
	BuildRequires []string      `json:"build_requires"`
	ReleaseTarget ReleaseTarget `json:"release_target"`
}

// NewBuildPlan assembles the plan for the variant at index.
// Build requirements are the runtime requirements, then the private build
// requirements, then the variant, preserving the priority order of each list.
func NewBuildPlan(d *Descriptor, index int, variant Variant) BuildPlan {
	buildReqs := make([]PackageRef, 0, len(d.Requires)+len(d.PrivateBuildRequires)+len(variant))
	buildReqs = append(buildReqs, d.Requires...)
	buildReqs = append(buildReqs, d.PrivateBuildRequires...)
	buildReqs = append(buildReqs, variant...)

	plan := BuildPlan{
		Package:       d.Name,
		Version:       d.RawVersion,
		VariantIndex:  index,
		Variant:       variant.Strings(),
		Subpath:       variant.Subpath(),
		Requires:      Variant(d.Requires).Strings(),
		BuildRequires: Variant(buildReqs).Strings(),
		ReleaseTarget: d.ReleaseTarget,
	}
	plan.ID = GeneratePlanID(plan.Package, plan.Version, plan.BuildRequires)
	return plan
}

// GeneratePlanID creates a deterministic digest identifying a package build against a requirement list.
func GeneratePlanID(pkg, version string, requirements []string) string {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(pkg)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(version)
	_, _ = hasher.Write([]byte{0})
	for _, req := range requirements {
		_, _ = hasher.WriteString(req)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
