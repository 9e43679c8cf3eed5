package domain

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// EnvOp is the way a mutation changes a variable.
type EnvOp int

const (
	// EnvSet replaces the variable's value.
	EnvSet EnvOp = iota
	// EnvAppend adds the value to the end of a path-style list.
	EnvAppend
)

// String returns the lower-case operation name.
func (o EnvOp) String() string {
	if o == EnvAppend {
		return "append"
	}
	return "set"
}

// MarshalText implements encoding.TextMarshaler.
func (o EnvOp) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *EnvOp) UnmarshalText(text []byte) error {
	switch string(text) {
	case "set":
		*o = EnvSet
	case "append":
		*o = EnvAppend
	default:
		return zerr.With(zerr.Wrap(ErrInvalidEnvOp, "cannot parse environment operation"), "op", string(text))
	}
	return nil
}

// EnvMutation is one instruction for the consumer to set or append an environment variable.
type EnvMutation struct {
	Variable string `json:"variable"`
	Op       EnvOp  `json:"op"`
	Value    string `json:"value"`
}

// String renders the mutation as "VAR=value" or "VAR+=value".
func (m EnvMutation) String() string {
	if m.Op == EnvAppend {
		return fmt.Sprintf("%s+=%s", m.Variable, m.Value)
	}
	return fmt.Sprintf("%s=%s", m.Variable, m.Value)
}

// EnvLayout names the variables and install subdirectory used when composing the environment.
type EnvLayout struct {
	// Product prefixes the package-specific variables (PRODUCT_VERSION, PRODUCT_ROOT, ...).
	Product string

	// Subpath is the directory under the package root holding plug-ins and scripts.
	Subpath string

	LibraryPathVar    string
	ModulePathVar     string
	HostModulePathVar string
	HostScriptPathVar string
}

// DefaultEnvLayout derives the layout for a package from its name.
func DefaultEnvLayout(name string) EnvLayout {
	return EnvLayout{
		Product:           strings.ToUpper(name),
		Subpath:           name,
		LibraryPathVar:    "LD_LIBRARY_PATH",
		ModulePathVar:     "PYTHONPATH",
		HostModulePathVar: "MAYA_MODULE_PATH",
		HostScriptPathVar: "MAYA_SCRIPT_PATH",
	}
}

// WithDefaults fills every empty field from DefaultEnvLayout(name).
func (l EnvLayout) WithDefaults(name string) EnvLayout {
	def := DefaultEnvLayout(name)
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return EnvLayout{
		Product:           pick(l.Product, def.Product),
		Subpath:           pick(l.Subpath, def.Subpath),
		LibraryPathVar:    pick(l.LibraryPathVar, def.LibraryPathVar),
		ModulePathVar:     pick(l.ModulePathVar, def.ModulePathVar),
		HostModulePathVar: pick(l.HostModulePathVar, def.HostModulePathVar),
		HostScriptPathVar: pick(l.HostScriptPathVar, def.HostScriptPathVar),
	}
}

// InstallDirs lists the directories, relative to the package root, that the environment points into.
func (l EnvLayout) InstallDirs() []string {
	return []string{
		path.Join(l.Subpath, "plug-ins"),
		path.Join(l.Subpath, "scripts"),
		path.Join(l.Subpath, "script"),
	}
}

// ComposeEnvironment returns the ordered mutations a consumer applies to activate the package.
// PRODUCT_PACKAGE_VERSION is written twice when an internal revision exists; the later write wins.
func ComposeEnvironment(parts VersionParts, root string, layout EnvLayout) []EnvMutation {
	p := layout.Product
	muts := make([]EnvMutation, 0, 9)

	muts = append(muts,
		EnvMutation{Variable: p + "_VERSION", Op: EnvSet, Value: parts.External},
		EnvMutation{Variable: p + "_PACKAGE_VERSION", Op: EnvSet, Value: parts.External},
	)
	if parts.HasInternal {
		muts = append(muts, EnvMutation{Variable: p + "_PACKAGE_VERSION", Op: EnvSet, Value: parts.PackageVersion()})
	}

	// Derived paths are root + "/" + dir verbatim; root is never cleaned.
	dirs := layout.InstallDirs()
	muts = append(muts,
		EnvMutation{Variable: p + "_ROOT", Op: EnvAppend, Value: root},
		EnvMutation{Variable: p + "_LOCATION", Op: EnvAppend, Value: root},
		EnvMutation{Variable: layout.LibraryPathVar, Op: EnvAppend, Value: root + "/" + dirs[0]},
		EnvMutation{Variable: layout.ModulePathVar, Op: EnvAppend, Value: root + "/" + dirs[1]},
		EnvMutation{Variable: layout.HostModulePathVar, Op: EnvAppend, Value: root},
		EnvMutation{Variable: layout.HostScriptPathVar, Op: EnvAppend, Value: root + "/" + dirs[2]},
	)
	return muts
}

// ApplyMutations applies muts to a copy of base in order.
// Appends join with sep when the variable already holds a non-empty value.
func ApplyMutations(base map[string]string, muts []EnvMutation, sep string) map[string]string {
	env := maps.Clone(base)
	if env == nil {
		env = make(map[string]string, len(muts))
	}

	for _, m := range muts {
		switch m.Op {
		case EnvAppend:
			if cur := env[m.Variable]; cur != "" {
				env[m.Variable] = cur + sep + m.Value
			} else {
				env[m.Variable] = m.Value
			}
		default:
			env[m.Variable] = m.Value
		}
	}
	return env
}

// Environ converts env into sorted "KEY=VALUE" strings suitable for process execution.
func Environ(env map[string]string) []string {
	res := make([]string, 0, len(env))
	for k, v := range env {
		res = append(res, k+"="+v)
	}
	slices.Sort(res)
	return res
}

// RenderShell renders muts as POSIX shell statements, one per line.
func RenderShell(muts []EnvMutation) string {
	var builder strings.Builder
	for _, m := range muts {
		switch m.Op {
		case EnvAppend:
			builder.WriteString(fmt.Sprintf("export %s=\"${%s:+$%s:}\"%s\n",
				m.Variable, m.Variable, m.Variable, shellQuote(m.Value)))
		default:
			builder.WriteString(fmt.Sprintf("export %s=%s\n", m.Variable, shellQuote(m.Value)))
		}
	}
	return builder.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
