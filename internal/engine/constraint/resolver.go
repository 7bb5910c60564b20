// Package constraint merges every declaration collected for a run into one version or range per
// package identifier.
package constraint

import (
	"go.trai.ch/pinset/internal/core/domain"
)

// group holds the declarations of one identifier, split by kind, in input order.
type group struct {
	exact     []domain.Declaration
	ranged    []domain.Declaration
	wildcards []domain.Declaration
}

// Resolve partitions decls by identifier and reduces each partition to a single constraint.
//
// Exact pins must all agree. Ranges are intersected. When both kinds exist for an identifier the
// exact version must lie inside the intersection, in which case only the exact pin is kept.
// Declarations of a partition that cannot be satisfied are returned in failed.
//
// Resolve is pure. The intersected range does not depend on input order, but the representative
// version attached to a ranged result does: it is the version of the declaration that last
// tightened a bound. Callers that need a stable representative must supply a stable order.
func Resolve(decls []domain.Declaration) (resolved []domain.ResolvedConstraint, failed []domain.Declaration) {
	order := make([]domain.InternedString, 0)
	groups := make(map[domain.InternedString]*group)

	for _, d := range decls {
		key := d.Key()
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		switch {
		case d.HasBoundedRange():
			g.ranged = append(g.ranged, d)
		case d.IsWildcard():
			g.wildcards = append(g.wildcards, d)
		default:
			g.exact = append(g.exact, d)
		}
	}

	for _, key := range order {
		res, bad := resolveGroup(groups[key])
		resolved = append(resolved, res...)
		failed = append(failed, bad...)
	}
	return resolved, failed
}

func resolveGroup(g *group) ([]domain.ResolvedConstraint, []domain.Declaration) {
	if len(g.exact) == 0 && len(g.ranged) == 0 {
		// Only wildcards: the identifier is wanted at any version.
		return []domain.ResolvedConstraint{{ID: g.wildcards[0].ID}}, nil
	}

	var failed []domain.Declaration

	exact, exactOK := resolveExact(g.exact)
	if len(g.exact) > 0 && !exactOK {
		failed = append(failed, g.exact...)
	}

	ranged, rangedOK := resolveRanged(g.ranged)
	if len(g.ranged) > 0 && !rangedOK {
		failed = append(failed, g.ranged...)
	}

	switch {
	case exactOK && rangedOK:
		if !ranged.Range.Satisfies(exact.Version) {
			return nil, append(append(failed, g.exact...), g.ranged...)
		}
		return []domain.ResolvedConstraint{exact}, failed
	case exactOK:
		return []domain.ResolvedConstraint{exact}, failed
	case rangedOK:
		return []domain.ResolvedConstraint{ranged}, failed
	default:
		return nil, failed
	}
}

// resolveExact collapses identical pins. More than one distinct version fails the whole group.
func resolveExact(decls []domain.Declaration) (domain.ResolvedConstraint, bool) {
	if len(decls) == 0 {
		return domain.ResolvedConstraint{}, false
	}
	distinct := domain.ByIdentifierAndVersion.Dedupe(decls)
	if len(distinct) > 1 {
		return domain.ResolvedConstraint{}, false
	}
	return domain.ResolvedConstraint{ID: distinct[0].ID, Version: distinct[0].Version}, true
}

// resolveRanged intersects all ranges starting from the universal interval.
func resolveRanged(decls []domain.Declaration) (domain.ResolvedConstraint, bool) {
	if len(decls) == 0 {
		return domain.ResolvedConstraint{}, false
	}

	cur := domain.VersionRange{IsMinInclusive: true, IsMaxInclusive: true}
	representative := decls[0].Version

	for _, d := range decls {
		c := d.Range
		if disjoint(&cur, c) {
			return domain.ResolvedConstraint{}, false
		}
		if tightensLower(&cur, c) {
			cur.MinVersion, cur.IsMinInclusive = c.MinVersion, c.IsMinInclusive
			representative = d.Version
		}
		if tightensUpper(&cur, c) {
			cur.MaxVersion, cur.IsMaxInclusive = c.MaxVersion, c.IsMaxInclusive
			representative = d.Version
		}
		if cur.IsEmpty() {
			return domain.ResolvedConstraint{}, false
		}
	}

	if !cur.HasLowerBound() {
		cur.IsMinInclusive = false
	}
	if !cur.HasUpperBound() {
		cur.IsMaxInclusive = false
	}
	return domain.ResolvedConstraint{ID: decls[0].ID, Version: representative, Range: &cur}, true
}

// disjoint reports whether c lies entirely outside cur. Touching bounds only overlap when both
// touching sides are inclusive.
func disjoint(cur, c *domain.VersionRange) bool {
	if c.HasLowerBound() && cur.HasUpperBound() {
		cmp := c.MinVersion.Compare(cur.MaxVersion)
		if c.IsMinInclusive && cur.IsMaxInclusive {
			if cmp > 0 {
				return true
			}
		} else if cmp >= 0 {
			return true
		}
	}
	if c.HasUpperBound() && cur.HasLowerBound() {
		cmp := c.MaxVersion.Compare(cur.MinVersion)
		if c.IsMaxInclusive && cur.IsMinInclusive {
			if cmp < 0 {
				return true
			}
		} else if cmp <= 0 {
			return true
		}
	}
	return false
}

// tightensLower reports whether c's lower bound is strictly tighter than cur's: greater, or equal
// with c exclusive where cur is inclusive.
func tightensLower(cur, c *domain.VersionRange) bool {
	if !c.HasLowerBound() {
		return false
	}
	if !cur.HasLowerBound() {
		return true
	}
	cmp := c.MinVersion.Compare(cur.MinVersion)
	return cmp > 0 || (cmp == 0 && !c.IsMinInclusive && cur.IsMinInclusive)
}

// tightensUpper is the mirror of tightensLower.
func tightensUpper(cur, c *domain.VersionRange) bool {
	if !c.HasUpperBound() {
		return false
	}
	if !cur.HasUpperBound() {
		return true
	}
	cmp := c.MaxVersion.Compare(cur.MaxVersion)
	return cmp < 0 || (cmp == 0 && !c.IsMaxInclusive && cur.IsMaxInclusive)
}
