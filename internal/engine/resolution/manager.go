// Package resolution decides which concrete package version to install for a declaration,
// consulting a run-scoped cache before local and remote repositories.
package resolution

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options is the resolution policy of a Manager.
type Options struct {
	// Latest prefers the newest version satisfying a declaration over its pinned version.
	Latest bool

	// AllowPrerelease lets latest-version queries return prerelease versions.
	AllowPrerelease bool

	// AllowUnlisted lets latest-version queries return unlisted packages.
	AllowUnlisted bool
}

// Manager answers "which version should be installed" and "give me the concrete package".
//
// Latest-version paths never fail: a missing package or a faulting source is logged and reported
// as nil. Only ResolvePackage returns an error, because an exact pin that cannot be located is a
// hard stop for the caller. A Manager and its Cache must be used sequentially.
type Manager struct {
	opts   Options
	cache  *Cache
	logger ports.Logger
}

// NewManager creates a Manager backed by cache.
func NewManager(opts Options, cache *Cache, logger ports.Logger) *Manager {
	return &Manager{
		opts:   opts,
		cache:  cache,
		logger: logger,
	}
}

// ResolveInstallableVersion returns the version to install for decl.
// Without the latest policy this is the pinned version and no repository is consulted.
func (m *Manager) ResolveInstallableVersion(
	ctx context.Context,
	remote ports.Repository,
	decl domain.Declaration,
) (domain.Version, bool) {
	if !m.opts.Latest {
		if decl.Version.IsZero() {
			m.logger.Warn(fmt.Sprintf("'%s' has no pinned version", decl.ID))
			return domain.Version{}, false
		}
		m.logger.Info(fmt.Sprintf("using pinned version '%s' of '%s'", decl.Version, decl.ID))
		return decl.Version, true
	}

	pkg := m.ResolveLatestInstallablePackage(ctx, remote, decl)
	if pkg == nil {
		return domain.Version{}, false
	}
	return pkg.Version, true
}

// ResolveLatestInstallablePackage returns the newest package satisfying decl's range, or nil.
// It returns nil without any lookup when the latest policy is off.
func (m *Manager) ResolveLatestInstallablePackage(
	ctx context.Context,
	remote ports.Repository,
	decl domain.Declaration,
) *domain.Package {
	if !m.opts.Latest {
		return nil
	}
	opts := m.findOptions(decl)

	if decl.Range.IsUnbounded() {
		if pkg, ok := m.cache.Latest(decl.ID); ok {
			return pkg
		}
		pkg := m.lookup(decl.ID, "latest version", func() (*domain.Package, error) {
			return remote.FindLatest(ctx, decl.ID, opts)
		})
		if pkg != nil {
			m.cache.AddLatest(decl.ID, pkg)
		}
		return pkg
	}

	if pkg, ok := m.cache.LatestInRange(decl.ID, decl.Range); ok {
		return pkg
	}
	pkg := m.lookup(decl.ID, "latest version in "+decl.Range.String(), func() (*domain.Package, error) {
		return remote.FindLatestInRange(ctx, decl.ID, decl.Range, opts)
	})
	if pkg != nil {
		m.cache.AddLatestInRange(decl.ID, decl.Range, pkg)
	}
	return pkg
}

// ResolveAllVersions returns every known version of id, newest first, or nil when none is known.
func (m *Manager) ResolveAllVersions(ctx context.Context, remote ports.Repository, id string) []*domain.Package {
	if pkgs, ok := m.cache.AllVersions(id); ok {
		return pkgs
	}

	pkgs, err := remote.FindPackagesByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrPackageNotFound) || (err == nil && len(pkgs) == 0):
		m.logger.Error(zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no versions found"), "id", id))
		return nil
	case err != nil:
		m.logger.Error(zerr.With(zerr.Wrap(err, "failed to list versions"), "id", id))
		return nil
	}

	m.cache.AddAllVersions(id, pkgs)
	return m.cache.allVersions[domain.NormalizeID(id)]
}

// ResolvePackage locates the exact (id, version) pair for installation.
//
// Sources are consulted in order: the installed copy in local, packages already cached during
// this run, the local half of remote, then the remote half. A zero version asks for the newest
// package instead. The returned error is a *domain.PackageNotFoundError when nothing matches.
func (m *Manager) ResolvePackage(
	ctx context.Context,
	local ports.Repository,
	remote ports.AggregateRepository,
	id string,
	version domain.Version,
	allowPrerelease bool,
) (*domain.Package, error) {
	opts := domain.FindOptions{AllowPrerelease: allowPrerelease || version.IsPrerelease(), AllowUnlisted: true}

	if !version.IsZero() {
		if local != nil {
			if pkg := m.find(ctx, local, id, version, opts); pkg != nil {
				m.logger.Info(fmt.Sprintf("'%s' '%s' is already installed", id, version))
				return pkg, nil
			}
		}
		if pkg, ok := m.cache.Package(id, version); ok {
			return pkg, nil
		}
	}

	for _, repo := range []ports.Repository{remote.LocalOnly(), remote.RemoteOnly()} {
		if pkg := m.find(ctx, repo, id, version, opts); pkg != nil {
			m.cache.AddPackage(id, pkg)
			return pkg, nil
		}
	}

	return nil, &domain.PackageNotFoundError{ID: id, Version: version}
}

// FindPackageInAllLocalSources looks for the exact package in local, then in the local half of
// remote. It never performs a network call.
func (m *Manager) FindPackageInAllLocalSources(
	ctx context.Context,
	local ports.Repository,
	remote ports.AggregateRepository,
	id string,
	version domain.Version,
	allowPrerelease bool,
	allowUnlisted bool,
) *domain.Package {
	opts := domain.FindOptions{AllowPrerelease: allowPrerelease, AllowUnlisted: allowUnlisted}

	if local != nil {
		if pkg := m.find(ctx, local, id, version, opts); pkg != nil {
			return pkg
		}
	}
	if remote == nil {
		return nil
	}
	return m.find(ctx, remote.LocalOnly(), id, version, opts)
}

// FindPackageInRemoteSources looks for the package in the network-backed half of remote only.
func (m *Manager) FindPackageInRemoteSources(
	ctx context.Context,
	remote ports.AggregateRepository,
	id string,
	version domain.Version,
) *domain.Package {
	opts := domain.FindOptions{
		AllowPrerelease: m.opts.AllowPrerelease || version.IsPrerelease(),
		AllowUnlisted:   true,
	}
	return m.find(ctx, remote.RemoteOnly(), id, version, opts)
}

// find queries repo for the exact version, or for the newest package when version is zero.
func (m *Manager) find(
	ctx context.Context,
	repo ports.Repository,
	id string,
	version domain.Version,
	opts domain.FindOptions,
) *domain.Package {
	if version.IsZero() {
		return m.quiet(repo, id, func() (*domain.Package, error) {
			return repo.FindLatest(ctx, id, opts)
		})
	}
	return m.quiet(repo, id, func() (*domain.Package, error) {
		return repo.FindPackage(ctx, id, version, opts)
	})
}

// quiet runs a lookup that is one step of a fallback chain: a miss is expected and not logged,
// while a fault is logged and treated as a miss.
func (m *Manager) quiet(repo ports.Repository, id string, query func() (*domain.Package, error)) *domain.Package {
	pkg, err := query()
	if err == nil {
		return pkg
	}
	if !errors.Is(err, domain.ErrPackageNotFound) {
		err = zerr.With(zerr.Wrap(err, "package source failed"), "source", repo.Name())
		m.logger.Error(zerr.With(err, "id", id))
	}
	return nil
}

// lookup runs a latest-version query. Both a miss and a fault are logged at error level and
// reported as nil.
func (m *Manager) lookup(id, what string, query func() (*domain.Package, error)) *domain.Package {
	pkg, err := query()
	switch {
	case errors.Is(err, domain.ErrPackageNotFound) || (err == nil && pkg == nil):
		err = zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no "+what+" found"), "id", id)
		m.logger.Error(err)
		return nil
	case err != nil:
		m.logger.Error(zerr.With(zerr.Wrap(err, "failed to resolve "+what), "id", id))
		return nil
	}
	return pkg
}

// findOptions widens the configured options so that a prerelease pin can resolve to prereleases.
func (m *Manager) findOptions(decl domain.Declaration) domain.FindOptions {
	return domain.FindOptions{
		AllowPrerelease: m.opts.AllowPrerelease || decl.Version.IsPrerelease(),
		AllowUnlisted:   m.opts.AllowUnlisted,
	}
}
