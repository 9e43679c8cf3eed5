package domain

import (
	"slices"
	"strings"
)

// DefaultFallbackDistro is assumed when the host does not report a distribution name.
const DefaultFallbackDistro = "centos"

// PrereqRule maps a distribution-name prefix to the commands run before a build.
type PrereqRule struct {
	// DistroPrefix is matched case-insensitively against the start of the distribution name.
	DistroPrefix string

	// Commands are emitted in order when the rule matches. Empty means no action.
	Commands []string
}

// PrereqRules is an ordered rule table; the first matching rule wins.
type PrereqRules struct {
	Fallback string
	Rules    []PrereqRule
}

// DefaultPrereqRules returns the built-in table: CentOS activates devtoolset-6, Rocky needs nothing.
func DefaultPrereqRules() PrereqRules {
	return PrereqRules{
		Fallback: DefaultFallbackDistro,
		Rules: []PrereqRule{
			{DistroPrefix: "centos", Commands: []string{"source /opt/rh/devtoolset-6/enable"}},
			{DistroPrefix: "rocky", Commands: nil},
		},
	}
}

// SelectCommands returns the pre-build commands for the host.
// Unknown distributions get an empty sequence rather than an error.
func (p PrereqRules) SelectCommands(osInfo OSIdentity) []string {
	rule, ok := p.match(osInfo)
	if !ok {
		return []string{}
	}
	return append([]string{}, rule.Commands...)
}

// Matches reports whether any rule recognizes the host distribution.
func (p PrereqRules) Matches(osInfo OSIdentity) bool {
	_, ok := p.match(osInfo)
	return ok
}

func (p PrereqRules) match(osInfo OSIdentity) (PrereqRule, bool) {
	name := osInfo.DistroName
	if name == "" {
		name = p.Fallback
	}
	name = strings.ToLower(name)

	idx := slices.IndexFunc(p.Rules, func(rule PrereqRule) bool {
		return rule.DistroPrefix != "" && strings.HasPrefix(name, strings.ToLower(rule.DistroPrefix))
	})
	if idx < 0 {
		return PrereqRule{}, false
	}
	return p.Rules[idx], true
}

// PreBuildScript renders a bash script that runs commands in order, stopping at the first failure,
// and then runs argv in the prepared shell when it is non-empty.
func PreBuildScript(commands, argv []string) string {
	var builder strings.Builder
	builder.WriteString("set -e\n")
	for _, c := range commands {
		builder.WriteString(c)
		builder.WriteByte('\n')
	}
	if len(argv) > 0 {
		quoted := make([]string, len(argv))
		for i, arg := range argv {
			quoted[i] = shellQuote(arg)
		}
		builder.WriteString(strings.Join(quoted, " "))
		builder.WriteByte('\n')
	}
	return builder.String()
}
