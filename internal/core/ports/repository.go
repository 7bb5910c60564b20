package ports

import (
	"context"

	"go.trai.ch/pinset/internal/core/domain"
)

// Repository is a source of concrete packages.
//
// Implementations signal "no match" by returning an error that wraps domain.ErrPackageNotFound.
// Any other error is an underlying fault of the source.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// Name identifies the repository in logs and results.
	Name() string

	// FindPackage returns the package with the exact id and version.
	FindPackage(ctx context.Context, id string, version domain.Version, opts domain.FindOptions) (*domain.Package, error)

	// FindPackagesByID returns every version of the package known to the repository.
	FindPackagesByID(ctx context.Context, id string) ([]*domain.Package, error)

	// FindLatest returns the newest version of the package accepted by opts.
	FindLatest(ctx context.Context, id string, opts domain.FindOptions) (*domain.Package, error)

	// FindLatestInRange returns the newest version of the package inside rng accepted by opts.
	FindLatestInRange(
		ctx context.Context, id string, rng *domain.VersionRange, opts domain.FindOptions,
	) (*domain.Package, error)
}

// AggregateRepository combines local and remote sources and exposes each half separately.
type AggregateRepository interface {
	Repository

	// LocalOnly returns the view restricted to on-disk sources. It never performs network calls.
	LocalOnly() Repository

	// RemoteOnly returns the view restricted to network-backed sources.
	RemoteOnly() Repository
}

// InstalledRepository is the store of packages already installed on this machine.
type InstalledRepository interface {
	Repository

	// Put records pkg as installed, replacing any entry with the same id and version.
	Put(pkg *domain.Package) error
}
