package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pkgdesc/internal/core/domain"
)

const devtoolsetCommand = "source /opt/rh/devtoolset-6/enable"

func TestPrereqRules_SelectCommands(t *testing.T) {
	rules := domain.DefaultPrereqRules()

	tests := []struct {
		distro   string
		expected []string
	}{
		{"CentOS Linux", []string{devtoolsetCommand}},
		{"centos linux", []string{devtoolsetCommand}},
		{"CENTOS LINUX", []string{devtoolsetCommand}},
		{"cEnToS", []string{devtoolsetCommand}},
		{"Rocky Linux", []string{}},
		{"ROCKY", []string{}},
		{"Ubuntu", []string{}},
		{"Fedora Linux", []string{}},
		{"", []string{devtoolsetCommand}},
	}

	for _, tt := range tests {
		t.Run(tt.distro, func(t *testing.T) {
			id := domain.NewOSIdentity(map[string]string{"NAME": tt.distro})
			cmds := rules.SelectCommands(id)
			assert.NotNil(t, cmds)
			assert.Equal(t, tt.expected, cmds)
		})
	}
}

func TestPrereqRules_FromOSReleaseText(t *testing.T) {
	rules := domain.DefaultPrereqRules()

	centos := domain.ParseOSRelease("NAME=\"CentOS Linux\"\nVERSION=\"7 (Core)\"\n")
	assert.Equal(t, []string{devtoolsetCommand}, rules.SelectCommands(centos))

	rocky := domain.ParseOSRelease("NAME=\"Rocky Linux\"\n")
	assert.Empty(t, rules.SelectCommands(rocky))

	missing := domain.ParseOSRelease("# nothing here\n")
	assert.Equal(t, []string{devtoolsetCommand}, rules.SelectCommands(missing))
}

func TestPrereqRules_ReturnsCopy(t *testing.T) {
	rules := domain.DefaultPrereqRules()
	id := domain.NewOSIdentity(map[string]string{"NAME": "CentOS"})

	first := rules.SelectCommands(id)
	first[0] = "mutated"

	assert.Equal(t, []string{devtoolsetCommand}, rules.SelectCommands(id))
}

func TestPrereqRules_CustomTable(t *testing.T) {
	rules := domain.PrereqRules{
		Fallback: "alma",
		Rules: []domain.PrereqRule{
			{DistroPrefix: "", Commands: []string{"never"}},
			{DistroPrefix: "Alma", Commands: []string{"source /opt/rh/gcc-toolset-11/enable", "echo ready"}},
		},
	}

	assert.Equal(t,
		[]string{"source /opt/rh/gcc-toolset-11/enable", "echo ready"},
		rules.SelectCommands(domain.NewOSIdentity(nil)))
	assert.True(t, rules.Matches(domain.NewOSIdentity(map[string]string{"NAME": "AlmaLinux"})))
	assert.False(t, rules.Matches(domain.NewOSIdentity(map[string]string{"NAME": "Ubuntu"})))
	assert.Empty(t, rules.SelectCommands(domain.NewOSIdentity(map[string]string{"NAME": "Ubuntu"})))
}

func TestPreBuildScript(t *testing.T) {
	tests := []struct {
		name     string
		commands []string
		argv     []string
		want     string
	}{
		{
			name:     "commands only",
			commands: []string{"source /opt/rh/devtoolset-6/enable"},
			want:     "set -e\nsource /opt/rh/devtoolset-6/enable\n",
		},
		{
			name:     "commands then argv",
			commands: []string{"source /opt/rh/devtoolset-6/enable"},
			argv:     []string{"make", "-j", "it's"},
			want:     "set -e\nsource /opt/rh/devtoolset-6/enable\n'make' '-j' 'it'\\''s'\n",
		},
		{
			name: "nothing to run",
			want: "set -e\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.PreBuildScript(tt.commands, tt.argv))
		})
	}
}
