package ports

import "go.trai.ch/pkgdesc/internal/core/domain"

// LayoutVerifier checks an installed package tree against its environment layout.
//
//go:generate go run go.uber.org/mock/mockgen -source=layout_verifier.go -destination=mocks/mock_layout_verifier.go -package=mocks
type LayoutVerifier interface {
	// VerifyLayout returns the install directories, relative to root, that do not exist.
	VerifyLayout(root string, layout domain.EnvLayout) ([]string, error)
}
