package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pkgdesc/internal/core/domain"
)

func TestParseOSRelease(t *testing.T) {
	text := `# comment
FOO=bar
QUOTED="bar"
SINGLE='baz'
NOEQUALSIGN
TWO=equal=signs

  SPACED = value  
NAME="CentOS Linux"
`
	id := domain.ParseOSRelease(text)

	assert.Equal(t, "bar", id.Raw["FOO"])
	assert.Equal(t, "bar", id.Raw["QUOTED"])
	assert.Equal(t, "baz", id.Raw["SINGLE"])
	assert.Equal(t, "value", id.Raw["SPACED"])
	assert.NotContains(t, id.Raw, "NOEQUALSIGN")
	assert.NotContains(t, id.Raw, "TWO")
	assert.NotContains(t, id.Raw, "# comment")
	assert.Equal(t, "CentOS Linux", id.DistroName)
	assert.Len(t, id.Raw, 5)
}

func TestParseOSRelease_CommentWithEquals(t *testing.T) {
	id := domain.ParseOSRelease("#NAME=Ubuntu\n")
	assert.Empty(t, id.Raw)
	assert.Empty(t, id.DistroName)
}

func TestParseOSRelease_FallsBackToID(t *testing.T) {
	id := domain.ParseOSRelease("ID=rocky\nVERSION_ID=\"8.9\"\n")
	assert.Equal(t, "rocky", id.DistroName)
	assert.Equal(t, "8.9", id.Raw["VERSION_ID"])
}

func TestParseOSRelease_Empty(t *testing.T) {
	id := domain.ParseOSRelease("")
	assert.NotNil(t, id.Raw)
	assert.Empty(t, id.DistroName)
}

func TestNewOSIdentity_NilMap(t *testing.T) {
	id := domain.NewOSIdentity(nil)
	assert.NotNil(t, id.Raw)
	assert.Empty(t, id.DistroName)
}

func TestParseOSRelease_LongLineDoesNotStopParsing(t *testing.T) {
	text := "PRETTY_NAME=" + strings.Repeat("x", 70000) + "\nNAME=\"Rocky Linux\"\nID=rocky\n"

	id := domain.ParseOSRelease(text)
	assert.Equal(t, "Rocky Linux", id.DistroName)
	assert.Len(t, id.Raw["PRETTY_NAME"], 70000)
	assert.Empty(t, domain.DefaultPrereqRules().SelectCommands(id))
}

func TestParseOSRelease_NoTrailingNewline(t *testing.T) {
	id := domain.ParseOSRelease("ID=centos\nNAME=CentOS Linux")
	assert.Equal(t, "CentOS Linux", id.DistroName)
}
