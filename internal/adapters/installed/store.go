// Package installed implements the repository of packages already installed on this machine.
package installed

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/zerr"
)

// Name is the source name reported for installed packages.
const Name = "installed"

var _ ports.InstalledRepository = (*Store)(nil)

// Store implements ports.InstalledRepository using a flat JSON file.
type Store struct {
	path     string
	mu       sync.RWMutex
	packages map[domain.InternedString][]*domain.Package
}

// NewStore creates a Store backed by the file at the given path. A missing file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:     filepath.Clean(path),
		packages: make(map[domain.InternedString][]*domain.Package),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read installed store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	var file fileDTO
	if err := json.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal installed store"), "path", s.path)
	}

	for i, dto := range file.Packages {
		pkg, err := fromDTO(dto)
		if err != nil {
			return zerr.With(zerr.With(err, "path", s.path), "index", i)
		}
		s.insert(pkg)
	}
	return nil
}

// save persists the store. The caller must hold the write lock.
func (s *Store) save() error {
	file := fileDTO{Packages: make([]packageDTO, 0, len(s.packages))}
	keys := make([]string, 0, len(s.packages))
	for key := range s.packages {
		keys = append(keys, key.String())
	}
	slices.Sort(keys)
	for _, key := range keys {
		for _, pkg := range s.packages[domain.NewInternedString(key)] {
			file.Packages = append(file.Packages, toDTO(pkg))
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal installed store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for installed store")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write installed store"), "path", s.path)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, "failed to replace installed store"), "path", s.path)
	}

	return nil
}

// Name returns the source name.
func (s *Store) Name() string {
	return Name
}

// Put records pkg as installed and persists the store.
func (s *Store) Put(pkg *domain.Package) error {
	if pkg == nil {
		return nil
	}

	installed := *pkg
	installed.Listed = true
	installed.Source = Name

	s.mu.Lock()
	defer s.mu.Unlock()

	s.insert(&installed)
	return s.save()
}

// FindPackagesByID returns every installed version of id, newest first.
func (s *Store) FindPackagesByID(ctx context.Context, id string) ([]*domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pkgs := s.packages[domain.NormalizeID(id)]
	if len(pkgs) == 0 {
		return nil, notFound(id)
	}
	return slices.Clone(pkgs), nil
}

// FindPackage returns the installed package with the exact id and version.
func (s *Store) FindPackage(
	ctx context.Context,
	id string,
	version domain.Version,
	opts domain.FindOptions,
) (*domain.Package, error) {
	pkgs, err := s.FindPackagesByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range pkgs {
		if p.Version.Equal(version) && opts.Accepts(p) {
			return p, nil
		}
	}
	return nil, zerr.With(notFound(id), "version", version.String())
}

// FindLatest returns the newest installed version of id accepted by opts.
func (s *Store) FindLatest(ctx context.Context, id string, opts domain.FindOptions) (*domain.Package, error) {
	return s.FindLatestInRange(ctx, id, nil, opts)
}

// FindLatestInRange returns the newest installed version of id inside rng accepted by opts.
func (s *Store) FindLatestInRange(
	ctx context.Context,
	id string,
	rng *domain.VersionRange,
	opts domain.FindOptions,
) (*domain.Package, error) {
	pkgs, err := s.FindPackagesByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if best := domain.LatestPackage(pkgs, rng, opts); best != nil {
		return best, nil
	}
	return nil, zerr.With(notFound(id), "range", rng.String())
}

// insert adds pkg keeping each identifier's versions sorted newest first. Callers hold the lock.
func (s *Store) insert(pkg *domain.Package) {
	key := domain.NormalizeID(pkg.ID)
	pkgs := slices.DeleteFunc(s.packages[key], func(p *domain.Package) bool {
		return p.Version.Equal(pkg.Version)
	})
	pkgs = append(pkgs, pkg)
	domain.SortPackagesDescending(pkgs)
	s.packages[key] = pkgs
}

func notFound(id string) error {
	err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "package not installed"), "id", id)
	return zerr.With(err, "source", Name)
}

func toDTO(pkg *domain.Package) packageDTO {
	dto := packageDTO{
		ID:      pkg.ID,
		Version: pkg.Version.String(),
		Source:  pkg.Source,
		Files:   pkg.Files,
	}
	for _, d := range pkg.Dependencies {
		dep := dependencyDTO{ID: d.ID}
		if !d.Version.IsZero() {
			dep.Version = d.Version.String()
		}
		if d.HasBoundedRange() {
			dep.Range = d.Range.String()
		}
		dto.Dependencies = append(dto.Dependencies, dep)
	}
	return dto
}

func fromDTO(dto packageDTO) (*domain.Package, error) {
	if dto.ID == "" {
		return nil, zerr.Wrap(domain.ErrInvalidManifest, "installed package without id")
	}
	v, err := domain.ParseVersion(dto.Version)
	if err != nil {
		return nil, zerr.With(err, "id", dto.ID)
	}

	pkg := &domain.Package{
		ID:      dto.ID,
		Version: v,
		Listed:  true,
		Files:   dto.Files,
		Source:  Name,
	}
	for _, dep := range dto.Dependencies {
		d, err := domain.ParseDeclaration(dep.ID, dep.Version, dep.Range)
		if err != nil {
			return nil, err
		}
		d.Source = Name
		pkg.Dependencies = append(pkg.Dependencies, d)
	}
	return pkg, nil
}
