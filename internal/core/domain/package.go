package domain

import (
	"cmp"
	"slices"
)

// Package is a concrete package version as returned by a repository.
// It is owned by the repository and treated as read-only.
type Package struct {
	// ID is the canonical package identifier.
	ID string

	// Version is the concrete version.
	Version Version

	// Listed is false for packages hidden from searches; they are only returned when unlisted
	// packages are explicitly allowed or the exact version is requested.
	Listed bool

	// Dependencies are the package's own declarations.
	Dependencies []Declaration

	// Files lists the package content relative to its root.
	Files []string

	// Source names the repository the package was found in.
	Source string
}

// FindOptions controls which packages a repository query may return.
type FindOptions struct {
	AllowPrerelease bool
	AllowUnlisted   bool
}

// Accepts reports whether p passes the prerelease and unlisted filters.
func (o FindOptions) Accepts(p *Package) bool {
	if p == nil {
		return false
	}
	if p.Version.IsPrerelease() && !o.AllowPrerelease {
		return false
	}
	if !p.Listed && !o.AllowUnlisted {
		return false
	}
	return true
}

// SortPackagesDescending sorts packages by version, newest first.
func SortPackagesDescending(pkgs []*Package) {
	slices.SortStableFunc(pkgs, func(a, b *Package) int {
		return cmp.Compare(0, a.Version.Compare(b.Version))
	})
}

// LatestPackage returns the newest package accepted by opts and, when rng is non-nil, inside rng.
func LatestPackage(pkgs []*Package, rng *VersionRange, opts FindOptions) *Package {
	var best *Package
	for _, p := range pkgs {
		if !opts.Accepts(p) {
			continue
		}
		if rng != nil && !rng.Satisfies(p.Version) {
			continue
		}
		if best == nil || p.Version.Compare(best.Version) > 0 {
			best = p
		}
	}
	return best
}
