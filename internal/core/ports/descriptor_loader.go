package ports

import "go.trai.ch/pkgdesc/internal/core/domain"

// DescriptorLoader reads a package descriptor from disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=descriptor_loader.go -destination=mocks/mock_descriptor_loader.go -package=mocks
type DescriptorLoader interface {
	// Load resolves path to a descriptor file, either directly or by searching
	// upward from a directory, and returns the validated descriptor.
	Load(path string) (*domain.Descriptor, error)
}
