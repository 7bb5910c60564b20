// Package folder implements a package repository over a local directory tree laid out as
// <root>/<id>/<version>/package.yaml.
package folder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads packages from a folder feed. Identifier directories match case-insensitively.
// The tree is read on every query; callers cache through the resolution cache.
type Repository struct {
	name   string
	root   string
	logger ports.Logger
}

// NewRepository creates a Repository named name over the directory root.
func NewRepository(name, root string, logger ports.Logger) *Repository {
	return &Repository{name: name, root: filepath.Clean(root), logger: logger}
}

// Name returns the configured source name.
func (r *Repository) Name() string {
	return r.name
}

// FindPackagesByID returns every version of id found in the folder.
func (r *Repository) FindPackagesByID(ctx context.Context, id string) ([]*domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := r.packageDir(id)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list package versions"), "path", dir)
	}

	pkgs := make([]*domain.Package, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, err := domain.ParseVersion(e.Name())
		if err != nil {
			r.logger.Warn(fmt.Sprintf("skipping %s: not a version directory", filepath.Join(dir, e.Name())))
			continue
		}
		pkg, err := r.readPackage(filepath.Join(dir, e.Name()), id, v)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}

	if len(pkgs) == 0 {
		return nil, r.notFound(id)
	}
	domain.SortPackagesDescending(pkgs)
	return pkgs, nil
}

// FindPackage returns the exact version of id.
func (r *Repository) FindPackage(
	ctx context.Context,
	id string,
	version domain.Version,
	opts domain.FindOptions,
) (*domain.Package, error) {
	pkgs, err := r.FindPackagesByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range pkgs {
		if p.Version.Equal(version) && opts.Accepts(p) {
			return p, nil
		}
	}
	return nil, zerr.With(r.notFound(id), "version", version.String())
}

// FindLatest returns the newest version of id accepted by opts.
func (r *Repository) FindLatest(ctx context.Context, id string, opts domain.FindOptions) (*domain.Package, error) {
	return r.FindLatestInRange(ctx, id, nil, opts)
}

// FindLatestInRange returns the newest version of id inside rng accepted by opts.
func (r *Repository) FindLatestInRange(
	ctx context.Context,
	id string,
	rng *domain.VersionRange,
	opts domain.FindOptions,
) (*domain.Package, error) {
	pkgs, err := r.FindPackagesByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if best := domain.LatestPackage(pkgs, rng, opts); best != nil {
		return best, nil
	}
	return nil, zerr.With(r.notFound(id), "range", rng.String())
}

// packageDir finds the identifier directory, matching names case-insensitively.
func (r *Repository) packageDir(id string) (string, error) {
	entries, err := os.ReadDir(r.root)
	if errors.Is(err, fs.ErrNotExist) {
		return "", r.notFound(id)
	}
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read folder feed"), "path", r.root)
	}

	idx := slices.IndexFunc(entries, func(e fs.DirEntry) bool {
		return e.IsDir() && strings.EqualFold(e.Name(), strings.TrimSpace(id))
	})
	if idx < 0 {
		return "", r.notFound(id)
	}
	return filepath.Join(r.root, entries[idx].Name()), nil
}

// readPackage loads the metadata of one version directory. A directory without package.yaml is
// a listed package without dependencies.
func (r *Repository) readPackage(dir, id string, version domain.Version) (*domain.Package, error) {
	pkg := &domain.Package{
		ID:      id,
		Version: version,
		Listed:  true,
		Source:  r.name,
	}
	for file := range walkFiles(dir) {
		pkg.Files = append(pkg.Files, file)
	}

	path := filepath.Join(dir, MetadataFile)
	data, err := os.ReadFile(path) //nolint:gosec // path is below the configured feed root
	if errors.Is(err, fs.ErrNotExist) {
		return pkg, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read package metadata"), "path", path)
	}

	var dto PackageDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse package metadata"), "path", path)
	}

	if dto.ID != "" {
		pkg.ID = dto.ID
	}
	if dto.Version != "" {
		v, err := domain.ParseVersion(dto.Version)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		if !v.Equal(version) {
			r.logger.Warn(fmt.Sprintf("%s declares version %s, using directory version %s", path, v, version))
		}
	}
	if dto.Listed != nil {
		pkg.Listed = *dto.Listed
	}
	for _, dep := range dto.Dependencies {
		d, err := domain.ParseDeclaration(dep.ID, dep.Version, dep.AllowedVersions)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		d.Source = r.name
		pkg.Dependencies = append(pkg.Dependencies, d)
	}
	return pkg, nil
}

func (r *Repository) notFound(id string) error {
	err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "package not in folder feed"), "id", id)
	return zerr.With(err, "source", r.name)
}
