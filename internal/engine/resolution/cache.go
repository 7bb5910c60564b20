package resolution

import (
	"fmt"
	"slices"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
)

// rangeEntry pairs a cached range with the newest package found inside it.
type rangeEntry struct {
	rng domain.VersionRange
	pkg *domain.Package
}

// Cache memoizes repository answers for the lifetime of one resolution run.
//
// Entries are insert-if-absent: the first writer wins and nothing is ever evicted or replaced.
// Lookups never reach a repository; the Manager populates the cache after doing the expensive
// query itself. A Cache is not safe for concurrent use. Give each concurrently running Manager its
// own Cache instead of sharing one.
type Cache struct {
	logger ports.Logger

	allVersions map[domain.InternedString][]*domain.Package
	latest      map[domain.InternedString]*domain.Package
	inRange     map[domain.InternedString]map[uint64][]rangeEntry
	packages    map[domain.InternedString][]*domain.Package
}

// NewCache creates an empty Cache.
func NewCache(logger ports.Logger) *Cache {
	return &Cache{
		logger:      logger,
		allVersions: make(map[domain.InternedString][]*domain.Package),
		latest:      make(map[domain.InternedString]*domain.Package),
		inRange:     make(map[domain.InternedString]map[uint64][]rangeEntry),
		packages:    make(map[domain.InternedString][]*domain.Package),
	}
}

// AllVersions returns every cached version of id, newest first.
func (c *Cache) AllVersions(id string) ([]*domain.Package, bool) {
	pkgs, ok := c.allVersions[domain.NormalizeID(id)]
	if ok {
		c.logger.Info(fmt.Sprintf("using %d cached versions of '%s'", len(pkgs), id))
	}
	return pkgs, ok
}

// AddAllVersions stores the versions of id sorted newest first, unless an entry already exists.
// It reports whether the entry was inserted.
func (c *Cache) AddAllVersions(id string, pkgs []*domain.Package) bool {
	key := domain.NormalizeID(id)
	if _, ok := c.allVersions[key]; ok {
		return false
	}
	sorted := slices.Clone(pkgs)
	domain.SortPackagesDescending(sorted)
	c.allVersions[key] = sorted
	c.logger.Info(fmt.Sprintf("cached %d versions of '%s'", len(sorted), id))
	return true
}

// Latest returns the cached newest package for id.
func (c *Cache) Latest(id string) (*domain.Package, bool) {
	pkg, ok := c.latest[domain.NormalizeID(id)]
	if ok {
		c.logger.Info(fmt.Sprintf("using cached latest version '%s' of '%s'", pkg.Version, id))
	}
	return pkg, ok
}

// AddLatest stores pkg as the newest package for id unless an entry already exists.
func (c *Cache) AddLatest(id string, pkg *domain.Package) bool {
	key := domain.NormalizeID(id)
	if _, ok := c.latest[key]; ok {
		return false
	}
	c.latest[key] = pkg
	c.logger.Info(fmt.Sprintf("cached latest version '%s' of '%s'", pkg.Version, id))
	return true
}

// LatestInRange returns the cached newest package for id inside rng.
func (c *Cache) LatestInRange(id string, rng *domain.VersionRange) (*domain.Package, bool) {
	byRange, ok := c.inRange[domain.NormalizeID(id)]
	if !ok {
		return nil, false
	}
	for _, e := range byRange[domain.RangeHash(rng)] {
		if domain.RangesEqual(&e.rng, rng) {
			c.logger.Info(fmt.Sprintf("using cached version '%s' of '%s' for range %s", e.pkg.Version, id, rng))
			return e.pkg, true
		}
	}
	return nil, false
}

// AddLatestInRange stores pkg as the newest package for id inside rng unless an entry already exists.
func (c *Cache) AddLatestInRange(id string, rng *domain.VersionRange, pkg *domain.Package) bool {
	key := domain.NormalizeID(id)
	byRange, ok := c.inRange[key]
	if !ok {
		byRange = make(map[uint64][]rangeEntry)
		c.inRange[key] = byRange
	}

	h := domain.RangeHash(rng)
	for _, e := range byRange[h] {
		if domain.RangesEqual(&e.rng, rng) {
			return false
		}
	}

	entry := rangeEntry{pkg: pkg}
	if rng != nil {
		entry.rng = *rng
	}
	byRange[h] = append(byRange[h], entry)
	c.logger.Info(fmt.Sprintf("cached version '%s' of '%s' for range %s", pkg.Version, id, rng))
	return true
}

// Package returns a cached package with the exact id and version from any of the three stores.
func (c *Cache) Package(id string, version domain.Version) (*domain.Package, bool) {
	key := domain.NormalizeID(id)
	match := func(p *domain.Package) bool { return p != nil && p.Version.Equal(version) }

	if pkg := c.latest[key]; match(pkg) {
		c.logger.Info(fmt.Sprintf("using cached package '%s' '%s'", id, version))
		return pkg, true
	}
	for _, pkg := range c.allVersions[key] {
		if match(pkg) {
			c.logger.Info(fmt.Sprintf("using cached package '%s' '%s'", id, version))
			return pkg, true
		}
	}
	for _, pkg := range c.packages[key] {
		if match(pkg) {
			c.logger.Info(fmt.Sprintf("using cached package '%s' '%s'", id, version))
			return pkg, true
		}
	}
	for _, entries := range c.inRange[key] {
		for _, e := range entries {
			if match(e.pkg) {
				c.logger.Info(fmt.Sprintf("using cached package '%s' '%s'", id, version))
				return e.pkg, true
			}
		}
	}
	return nil, false
}

// AddPackage stores one exact package of id unless that version is already cached.
func (c *Cache) AddPackage(id string, pkg *domain.Package) bool {
	if pkg == nil {
		return false
	}
	key := domain.NormalizeID(id)
	for _, p := range c.packages[key] {
		if p.Version.Equal(pkg.Version) {
			return false
		}
	}
	c.packages[key] = append(c.packages[key], pkg)
	c.logger.Info(fmt.Sprintf("cached package '%s' '%s'", id, pkg.Version))
	return true
}
