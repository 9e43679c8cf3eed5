package ports

import "go.trai.ch/pkgdesc/internal/core/domain"

// OSIdentitySource reports the identity of the host operating system.
//
//go:generate go run go.uber.org/mock/mockgen -source=os_identity.go -destination=mocks/mock_os_identity.go -package=mocks
type OSIdentitySource interface {
	// Identity returns the parsed os-release data. A host without os-release
	// information yields an empty identity and no error.
	Identity() (domain.OSIdentity, error)
}
