// Package config provides the package descriptor loader.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/pkgdesc/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// YAMLFileName is the preferred descriptor file name.
	YAMLFileName = "package.yaml"
	// YMLFileName is the alternative YAML descriptor file name.
	YMLFileName = "package.yml"
	// HCLFileName is the HCL descriptor file name.
	HCLFileName = "package.hcl"
)

// descriptorFileNames lists the file names looked up in each directory, in priority order.
var descriptorFileNames = []string{YAMLFileName, YMLFileName, HCLFileName}

// Loader implements ports.DescriptorLoader for YAML and HCL descriptor files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the descriptor at path. A directory is searched upward for a descriptor file.
func (l *Loader) Load(path string) (*domain.Descriptor, error) {
	descriptorPath, err := l.findDescriptor(path)
	if err != nil {
		return nil, err
	}

	var pf PackageFile
	if filepath.Ext(descriptorPath) == ".hcl" {
		err = readAndDecodeHCL(descriptorPath, &pf)
	} else {
		err = readAndUnmarshalYAML(descriptorPath, &pf)
	}
	if err != nil {
		return nil, zerr.With(err, "path", descriptorPath)
	}

	d, err := toDescriptor(&pf)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid package descriptor"), "path", descriptorPath)
	}
	if err := d.Validate(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid package descriptor"), "path", descriptorPath)
	}

	if len(d.Variants) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s declares no variants; only a single unvariated build is possible", d.Name))
	}
	return d, nil
}

func (l *Loader) findDescriptor(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrDescriptorNotFound, "path does not exist"), "path", path)
		}
		return "", zerr.With(readFailed(err), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	currentDir, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(readFailed(err), "path", path)
	}

	for {
		if found := l.descriptorIn(currentDir); found != "" {
			return found, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrDescriptorNotFound, "searched upward"), "cwd", path)
}

// descriptorIn returns the highest-priority descriptor file in dir, or "" if none exists.
func (l *Loader) descriptorIn(dir string) string {
	var found string
	for _, name := range descriptorFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err != nil || info.IsDir() {
			continue
		}
		if found != "" {
			l.Logger.Warn(fmt.Sprintf("ignoring %s, %s takes precedence", candidate, filepath.Base(found)))
			continue
		}
		found = candidate
	}
	return found
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return readFailed(err)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return parseFailed(parseErr)
	}
	return nil
}

// readAndDecodeHCL reads an HCL file and decodes it into the shared DTO.
func readAndDecodeHCL(path string, target *PackageFile) error {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return readFailed(err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return parseFailed(diags)
	}

	var parsed hclPackageFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return parseFailed(diags)
	}

	*target = parsed.packageFile()
	return nil
}

// readFailed and parseFailed keep the sentinel in the chain and carry the
// underlying error text as metadata.
func readFailed(err error) error {
	return zerr.With(zerr.Wrap(domain.ErrDescriptorReadFailed, "cannot read descriptor"), "cause", err.Error())
}

func parseFailed(err error) error {
	return zerr.With(zerr.Wrap(domain.ErrDescriptorParseFailed, "cannot decode descriptor"), "cause", err.Error())
}
