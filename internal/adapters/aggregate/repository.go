// Package aggregate combines several package repositories into one ordered view.
package aggregate

import (
	"context"
	"errors"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var (
	_ ports.AggregateRepository = (*Repository)(nil)
	_ ports.Repository          = (*view)(nil)
)

// Repository consults local sources before remote ones. Exact lookups stop at the first
// source that has the package; latest-version lookups query every source concurrently.
type Repository struct {
	all    view
	local  view
	remote view
}

// New creates a Repository over the given local and remote sources, each in priority order.
func New(name string, locals, remotes []ports.Repository) *Repository {
	all := make([]ports.Repository, 0, len(locals)+len(remotes))
	all = append(all, locals...)
	all = append(all, remotes...)

	return &Repository{
		all:    view{name: name, sources: all},
		local:  view{name: name + "/local", sources: locals},
		remote: view{name: name + "/remote", sources: remotes},
	}
}

// Name returns the aggregate's name.
func (r *Repository) Name() string { return r.all.name }

// LocalOnly returns the view over on-disk sources.
func (r *Repository) LocalOnly() ports.Repository { return &r.local }

// RemoteOnly returns the view over network-backed sources.
func (r *Repository) RemoteOnly() ports.Repository { return &r.remote }

// FindPackage implements ports.Repository over every source.
func (r *Repository) FindPackage(
	ctx context.Context, id string, version domain.Version, opts domain.FindOptions,
) (*domain.Package, error) {
	return r.all.FindPackage(ctx, id, version, opts)
}

// FindPackagesByID implements ports.Repository over every source.
func (r *Repository) FindPackagesByID(ctx context.Context, id string) ([]*domain.Package, error) {
	return r.all.FindPackagesByID(ctx, id)
}

// FindLatest implements ports.Repository over every source.
func (r *Repository) FindLatest(ctx context.Context, id string, opts domain.FindOptions) (*domain.Package, error) {
	return r.all.FindLatest(ctx, id, opts)
}

// FindLatestInRange implements ports.Repository over every source.
func (r *Repository) FindLatestInRange(
	ctx context.Context, id string, rng *domain.VersionRange, opts domain.FindOptions,
) (*domain.Package, error) {
	return r.all.FindLatestInRange(ctx, id, rng, opts)
}

// view is an ordered list of sources queried as one repository.
type view struct {
	name    string
	sources []ports.Repository
}

func (v *view) Name() string { return v.name }

// FindPackage returns the package from the first source that has it. When no source has it,
// faults take precedence over not-found so callers can tell an outage from a missing package.
func (v *view) FindPackage(
	ctx context.Context, id string, version domain.Version, opts domain.FindOptions,
) (*domain.Package, error) {
	var faults error
	for _, src := range v.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pkg, err := src.FindPackage(ctx, id, version, opts)
		switch {
		case err == nil && pkg != nil:
			return pkg, nil
		case err != nil && !errors.Is(err, domain.ErrPackageNotFound):
			faults = errors.Join(faults, err)
		}
	}
	if faults != nil {
		return nil, faults
	}
	return nil, zerr.With(v.notFound(id), "version", version.String())
}

// FindPackagesByID merges the versions of every source. When a version is offered by several
// sources the one from the earliest source is kept.
func (v *view) FindPackagesByID(ctx context.Context, id string) ([]*domain.Package, error) {
	results, faults := fanOut(ctx, v.sources, func(ctx context.Context, src ports.Repository) ([]*domain.Package, error) {
		return src.FindPackagesByID(ctx, id)
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[uint64][]domain.Version)
	var merged []*domain.Package
	for _, pkgs := range results {
		for _, p := range pkgs {
			h := p.Version.Hash()
			if containsVersion(seen[h], p.Version) {
				continue
			}
			seen[h] = append(seen[h], p.Version)
			merged = append(merged, p)
		}
	}
	if len(merged) == 0 {
		return nil, v.missing(id, faults)
	}
	domain.SortPackagesDescending(merged)
	return merged, nil
}

// FindLatest returns the newest version accepted by opts across all sources.
func (v *view) FindLatest(ctx context.Context, id string, opts domain.FindOptions) (*domain.Package, error) {
	return v.latest(ctx, id, func(ctx context.Context, src ports.Repository) (*domain.Package, error) {
		return src.FindLatest(ctx, id, opts)
	})
}

// FindLatestInRange returns the newest version inside rng accepted by opts across all sources.
func (v *view) FindLatestInRange(
	ctx context.Context, id string, rng *domain.VersionRange, opts domain.FindOptions,
) (*domain.Package, error) {
	return v.latest(ctx, id, func(ctx context.Context, src ports.Repository) (*domain.Package, error) {
		return src.FindLatestInRange(ctx, id, rng, opts)
	})
}

func (v *view) latest(
	ctx context.Context,
	id string,
	query func(context.Context, ports.Repository) (*domain.Package, error),
) (*domain.Package, error) {
	results, faults := fanOut(ctx, v.sources, query)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var best *domain.Package
	for _, p := range results {
		if p == nil {
			continue
		}
		// Ties keep the earlier source.
		if best == nil || p.Version.Compare(best.Version) > 0 {
			best = p
		}
	}
	if best == nil {
		return nil, v.missing(id, faults)
	}
	return best, nil
}

// missing reports an empty answer, preferring the faults of failed sources over not-found.
func (v *view) missing(id string, faults error) error {
	if faults != nil {
		return faults
	}
	return v.notFound(id)
}

func (v *view) notFound(id string) error {
	err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "package not in any source"), "id", id)
	return zerr.With(err, "source", v.name)
}

// fanOut runs query against every source concurrently and returns the results in source order.
// Not-found answers yield the zero value. The returned error joins the faults of failed sources.
func fanOut[T any](
	ctx context.Context,
	sources []ports.Repository,
	query func(context.Context, ports.Repository) (T, error),
) ([]T, error) {
	results := make([]T, len(sources))
	errs := make([]error, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			res, err := query(ctx, src)
			if err != nil {
				if !errors.Is(err, domain.ErrPackageNotFound) {
					errs[i] = err
				}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

func containsVersion(vs []domain.Version, v domain.Version) bool {
	for _, o := range vs {
		if o.Equal(v) {
			return true
		}
	}
	return false
}
