package config

import (
	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/zerr"
)

// toDescriptor converts the decoded file into a domain.Descriptor.
// Defaults are applied here; invariants are left to domain.Descriptor.Validate.
func toDescriptor(pf *PackageFile) (*domain.Descriptor, error) {
	target, err := domain.ParseReleaseTarget(pf.Config.ReleaseAs)
	if err != nil {
		return nil, err
	}

	requires, err := domain.ParsePackageRefs(pf.Requires)
	if err != nil {
		return nil, zerr.With(err, "field", "requires")
	}

	private, err := domain.ParsePackageRefs(pf.PrivateBuildRequires)
	if err != nil {
		return nil, zerr.With(err, "field", "private_build_requires")
	}

	variants := make([]domain.Variant, 0, len(pf.Variants))
	for i, raw := range pf.Variants {
		refs, err := domain.ParsePackageRefs(raw)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "field", "variants"), "variant_index", i)
		}
		variants = append(variants, domain.Variant(refs))
	}

	return &domain.Descriptor{
		Name:                 pf.Name,
		Authors:              pf.Authors,
		RawVersion:           pf.Version,
		Description:          pf.Description,
		UUID:                 pf.UUID,
		ReleaseTarget:        target,
		Release:              toReleaseConfig(pf.Config.ReleaseEnv),
		Requires:             requires,
		PrivateBuildRequires: private,
		Variants:             variants,
		Prereqs:              toPrereqRules(pf.PreBuild),
		Layout:               toEnvLayout(pf.Environment).WithDefaults(pf.Name),
	}, nil
}

func toReleaseConfig(dto ReleaseEnvDTO) domain.ReleaseConfig {
	cfg := domain.DefaultReleaseConfig()
	if dto.Internal != "" {
		cfg.InternalVar = dto.Internal
	}
	if dto.External != "" {
		cfg.ExternalVar = dto.External
	}
	return cfg
}

func toPrereqRules(dto *PreBuildDTO) domain.PrereqRules {
	if dto == nil {
		return domain.DefaultPrereqRules()
	}

	rules := domain.PrereqRules{
		Fallback: dto.Fallback,
		Rules:    make([]domain.PrereqRule, 0, len(dto.Rules)),
	}
	if rules.Fallback == "" {
		rules.Fallback = domain.DefaultFallbackDistro
	}
	for _, r := range dto.Rules {
		rules.Rules = append(rules.Rules, domain.PrereqRule{
			DistroPrefix: r.Distro,
			Commands:     r.Commands,
		})
	}
	return rules
}

func toEnvLayout(dto EnvironmentDTO) domain.EnvLayout {
	return domain.EnvLayout(dto)
}
