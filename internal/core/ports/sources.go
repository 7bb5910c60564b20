package ports

import "go.trai.ch/pinset/internal/core/domain"

// SourceFactory builds the repositories described by the settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks
type SourceFactory interface {
	// Installed returns the repository of already-installed packages.
	Installed(settings *domain.Settings) (InstalledRepository, error)

	// Aggregate returns the combined repository over all configured sources.
	Aggregate(settings *domain.Settings) (AggregateRepository, error)
}
