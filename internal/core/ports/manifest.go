package ports

import "go.trai.ch/pinset/internal/core/domain"

// ManifestReader reads the dependency declarations of one manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read returns the declarations in the order they appear in the manifest.
	Read(path string) ([]domain.Declaration, error)
}

// ManifestWriter persists a resolved constraint set.
type ManifestWriter interface {
	// Write replaces the content at path with the given constraints.
	Write(path string, constraints []domain.ResolvedConstraint) error
}
