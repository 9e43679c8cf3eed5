package config

// PackageFile represents the structure of a package.yaml descriptor.
type PackageFile struct {
	Name                 string         `yaml:"name"`
	Authors              []string       `yaml:"authors"`
	Version              string         `yaml:"version"`
	Description          string         `yaml:"description"`
	UUID                 string         `yaml:"uuid"`
	Config               ConfigDTO      `yaml:"config"`
	Requires             []string       `yaml:"requires"`
	PrivateBuildRequires []string       `yaml:"private_build_requires"`
	Variants             [][]string     `yaml:"variants"`
	PreBuild             *PreBuildDTO   `yaml:"pre_build"`
	Environment          EnvironmentDTO `yaml:"environment"`
}

// ConfigDTO holds the release settings of a descriptor.
type ConfigDTO struct {
	ReleaseAs  string        `yaml:"release_as"`
	ReleaseEnv ReleaseEnvDTO `yaml:"release_env"`
}

// ReleaseEnvDTO overrides the variables naming each release destination.
type ReleaseEnvDTO struct {
	Internal string `yaml:"internal"`
	External string `yaml:"external"`
}

// PreBuildDTO lists the OS-conditional commands run before a build.
type PreBuildDTO struct {
	Fallback string          `yaml:"fallback"`
	Rules    []PrereqRuleDTO `yaml:"rules"`
}

// PrereqRuleDTO maps a distro name prefix to its commands.
type PrereqRuleDTO struct {
	Distro   string   `yaml:"distro"`
	Commands []string `yaml:"commands"`
}

// EnvironmentDTO overrides the variable names used when composing the environment.
type EnvironmentDTO struct {
	Product           string `yaml:"product"`
	Subpath           string `yaml:"subpath"`
	LibraryPathVar    string `yaml:"library_path_var"`
	ModulePathVar     string `yaml:"module_path_var"`
	HostModulePathVar string `yaml:"host_module_path_var"`
	HostScriptPathVar string `yaml:"host_script_path_var"`
}

// hclPackageFile represents the structure of a package.hcl descriptor for decoding.
// Name and version are optional here so that their absence surfaces as a validation error.
type hclPackageFile struct {
	Name                 string          `hcl:"name,optional"`
	Authors              []string        `hcl:"authors,optional"`
	Version              string          `hcl:"version,optional"`
	Description          string          `hcl:"description,optional"`
	UUID                 string          `hcl:"uuid,optional"`
	Requires             []string        `hcl:"requires,optional"`
	PrivateBuildRequires []string        `hcl:"private_build_requires,optional"`
	Variants             [][]string      `hcl:"variants,optional"`
	Config               *hclConfig      `hcl:"config,block"`
	PreBuild             *hclPreBuild    `hcl:"pre_build,block"`
	Environment          *hclEnvironment `hcl:"environment,block"`
}

type hclConfig struct {
	ReleaseAs  string         `hcl:"release_as,optional"`
	ReleaseEnv *hclReleaseEnv `hcl:"release_env,block"`
}

type hclReleaseEnv struct {
	Internal string `hcl:"internal,optional"`
	External string `hcl:"external,optional"`
}

type hclPreBuild struct {
	Fallback string     `hcl:"fallback,optional"`
	Rules    []*hclRule `hcl:"rule,block"`
}

type hclRule struct {
	Distro   string   `hcl:"distro,label"`
	Commands []string `hcl:"commands,optional"`
}

type hclEnvironment struct {
	Product           string `hcl:"product,optional"`
	Subpath           string `hcl:"subpath,optional"`
	LibraryPathVar    string `hcl:"library_path_var,optional"`
	ModulePathVar     string `hcl:"module_path_var,optional"`
	HostModulePathVar string `hcl:"host_module_path_var,optional"`
	HostScriptPathVar string `hcl:"host_script_path_var,optional"`
}

// packageFile flattens the HCL blocks into the shared DTO.
func (f *hclPackageFile) packageFile() PackageFile {
	pf := PackageFile{
		Name:                 f.Name,
		Authors:              f.Authors,
		Version:              f.Version,
		Description:          f.Description,
		UUID:                 f.UUID,
		Requires:             f.Requires,
		PrivateBuildRequires: f.PrivateBuildRequires,
		Variants:             f.Variants,
	}

	if f.Config != nil {
		pf.Config.ReleaseAs = f.Config.ReleaseAs
		if f.Config.ReleaseEnv != nil {
			pf.Config.ReleaseEnv = ReleaseEnvDTO(*f.Config.ReleaseEnv)
		}
	}

	if f.PreBuild != nil {
		pf.PreBuild = &PreBuildDTO{Fallback: f.PreBuild.Fallback}
		for _, rule := range f.PreBuild.Rules {
			pf.PreBuild.Rules = append(pf.PreBuild.Rules, PrereqRuleDTO{
				Distro:   rule.Distro,
				Commands: rule.Commands,
			})
		}
	}

	if f.Environment != nil {
		pf.Environment = EnvironmentDTO(*f.Environment)
	}
	return pf
}
