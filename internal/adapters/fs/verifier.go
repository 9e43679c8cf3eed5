package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verifier checks installed package trees against their environment layout.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyLayout returns the install directories of layout missing under root.
// A path that exists but is not a directory counts as missing.
func (v *Verifier) VerifyLayout(root string, layout domain.EnvLayout) ([]string, error) {
	var missing []string
	for _, dir := range layout.InstallDirs() {
		path := filepath.Join(root, filepath.FromSlash(dir))
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, dir)
				continue
			}
			verr := zerr.With(zerr.Wrap(domain.ErrLayoutVerifyFailed, "failed to stat install directory"), "path", path)
			return nil, zerr.With(verr, "cause", err.Error())
		}
		if !info.IsDir() {
			missing = append(missing, dir)
		}
	}
	return missing, nil
}
