package app

import (
	"context"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/pinset/internal/engine/resolution"
	"go.trai.ch/zerr"
)

// VersionsOptions configuration for the Versions method.
type VersionsOptions struct {
	ConfigPath string
	Offline    bool
}

// Versions lists every version of id known to the configured sources, newest first.
func (a *App) Versions(ctx context.Context, id string, opts VersionsOptions) ([]*domain.Package, error) {
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	remote, err := a.sources.Aggregate(settings)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to configure package sources")
	}

	from := ports.Repository(remote)
	if opts.Offline {
		from = remote.LocalOnly()
	}

	manager := resolution.NewManager(resolution.Options{}, resolution.NewCache(a.logger), a.logger)
	pkgs := manager.ResolveAllVersions(ctx, from, id)
	if len(pkgs) == 0 {
		return nil, &domain.PackageNotFoundError{ID: id}
	}
	return pkgs, nil
}
