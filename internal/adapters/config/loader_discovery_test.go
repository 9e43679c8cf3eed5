package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgdesc/internal/adapters/config"
	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestLoader_Load_DiscoversUpward(t *testing.T) {
	loader, _ := newLoader(t)

	// Structure:
	// root/
	//   package.yaml
	//   src/
	//     deformer/ (cwd for test)
	rootDir := t.TempDir()
	createFile(t, rootDir, config.YAMLFileName, weightDriverYAML)
	cwd := filepath.Join(rootDir, "src", "deformer")
	require.NoError(t, os.MkdirAll(cwd, 0o750))

	d, err := loader.Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, "weightDriver", d.Name)
}

func TestLoader_Load_NearestDescriptorWins(t *testing.T) {
	loader, _ := newLoader(t)

	rootDir := t.TempDir()
	createFile(t, rootDir, config.YAMLFileName, weightDriverYAML)
	nested := filepath.Join(rootDir, "vendor", "tool")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	createFile(t, nested, config.YMLFileName, `
name: tool
version: "2.0"
config:
  release_as: int
variants:
  - ["python-3"]
`)

	d, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "tool", d.Name)
	assert.Equal(t, domain.ReleaseInternal, d.ReleaseTarget)
}

func TestLoader_Load_YAMLTakesPrecedenceOverHCL(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	rootDir := t.TempDir()
	createFile(t, rootDir, config.YAMLFileName, weightDriverYAML)
	createFile(t, rootDir, config.HCLFileName, `name = "other"`)

	d, err := loader.Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, "weightDriver", d.Name)
}

func TestLoader_Load_HCLDiscovered(t *testing.T) {
	loader, _ := newLoader(t)

	rootDir := t.TempDir()
	createFile(t, rootDir, config.HCLFileName, weightDriverHCL)

	d, err := loader.Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, "weightDriver", d.Name)
	assert.Len(t, d.Variants, 3)
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrDescriptorNotFound)
}
