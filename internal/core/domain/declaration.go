package domain

import "go.trai.ch/zerr"

// Declaration is one manifest's request for a package, at an exact version, within a range, or both.
// Declarations are immutable once constructed.
type Declaration struct {
	// ID is the package identifier as written in the manifest. Comparisons are case-insensitive.
	ID string

	// Version is the pinned version. The zero value means no version was declared.
	Version Version

	// Range is the acceptable version range. Nil means no range was declared.
	Range *VersionRange

	// TargetFramework is the target-platform tag the declaration applies to (e.g. "net48").
	TargetFramework string

	// DevelopmentDependency marks declarations only needed at development time.
	DevelopmentDependency bool

	// Source names the manifest the declaration was read from.
	Source string
}

// Key returns the case-folded identifier used for grouping and caching.
func (d Declaration) Key() InternedString {
	return NormalizeID(d.ID)
}

// HasBoundedRange reports whether the declaration carries a range with at least one bound.
func (d Declaration) HasBoundedRange() bool {
	return !d.Range.IsUnbounded()
}

// IsWildcard reports whether the declaration constrains nothing: no version and no bounded range.
func (d Declaration) IsWildcard() bool {
	return d.Version.IsZero() && !d.HasBoundedRange()
}

// String renders the declaration as "id version range" for messages.
func (d Declaration) String() string {
	s := d.ID
	if !d.Version.IsZero() {
		s += " " + d.Version.String()
	}
	if d.HasBoundedRange() {
		s += " " + d.Range.String()
	}
	return s
}

// ResolvedConstraint is the single version or range chosen for one identifier.
//
// When Range is non-nil it is authoritative and Version is only a representative taken from the
// declaration that last tightened the range. When Range is nil, Version is the exact pin.
type ResolvedConstraint struct {
	ID      string
	Version Version
	Range   *VersionRange
}

// Declaration converts the constraint back into a declaration, e.g. to drive a resolution manager.
func (c ResolvedConstraint) Declaration() Declaration {
	return Declaration{ID: c.ID, Version: c.Version, Range: c.Range}
}

// ParseDeclaration builds a declaration from its text form. Empty version or range strings
// leave the corresponding field absent.
func ParseDeclaration(id, version, rng string) (Declaration, error) {
	d := Declaration{ID: id}
	if version != "" {
		v, err := ParseVersion(version)
		if err != nil {
			return Declaration{}, zerr.With(err, "id", id)
		}
		d.Version = v
	}
	if rng != "" {
		r, err := ParseVersionRange(rng)
		if err != nil {
			return Declaration{}, zerr.With(err, "id", id)
		}
		d.Range = r
	}
	return d, nil
}
