package domain

import (
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// EqualityMode selects one of the equivalence relations used to deduplicate declarations.
type EqualityMode int

const (
	// ByIdentifier treats declarations with the same identifier as equal.
	ByIdentifier EqualityMode = iota
	// ByIdentifierAndVersion additionally requires equal (or both absent) versions.
	ByIdentifierAndVersion
	// ByIdentifierAndRange additionally requires structurally equal ranges.
	ByIdentifierAndRange
	// ByIdentifierVersionAndRange requires equal identifier, version and range.
	ByIdentifierVersionAndRange
)

var equalityModeNames = map[EqualityMode]string{
	ByIdentifier:                "id",
	ByIdentifierAndVersion:      "id-version",
	ByIdentifierAndRange:        "id-range",
	ByIdentifierVersionAndRange: "id-version-range",
}

// ParseEqualityMode returns the mode named by s ("id", "id-version", "id-range", "id-version-range").
func ParseEqualityMode(s string) (EqualityMode, error) {
	for mode, name := range equalityModeNames {
		if name == s {
			return mode, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrInvalidDedupeMode, "unknown dedupe mode"), "mode", s)
}

// String returns the mode's configuration name.
func (m EqualityMode) String() string {
	if name, ok := equalityModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Equal reports whether a and b are equivalent under the mode.
func (m EqualityMode) Equal(a, b Declaration) bool {
	if a.Key() != b.Key() {
		return false
	}
	switch m {
	case ByIdentifierAndVersion:
		return versionsEqual(a.Version, b.Version)
	case ByIdentifierAndRange:
		return RangesEqual(a.Range, b.Range)
	case ByIdentifierVersionAndRange:
		return versionsEqual(a.Version, b.Version) && RangesEqual(a.Range, b.Range)
	default:
		return true
	}
}

// Hash returns a hash consistent with Equal for the mode.
func (m EqualityMode) Hash(d Declaration) uint64 {
	h := xxhash.Sum64String(d.Key().String())
	switch m {
	case ByIdentifierAndVersion:
		h ^= d.Version.Hash()
	case ByIdentifierAndRange:
		h ^= RangeHash(d.Range) * 17
	case ByIdentifierVersionAndRange:
		h ^= d.Version.Hash() ^ (RangeHash(d.Range) * 17)
	}
	return h
}

// Dedupe returns decls with later duplicates removed under the mode, preserving input order.
func (m EqualityMode) Dedupe(decls []Declaration) []Declaration {
	buckets := make(map[uint64][]int, len(decls))
	out := make([]Declaration, 0, len(decls))

	for _, d := range decls {
		h := m.Hash(d)
		duplicate := false
		for _, idx := range buckets[h] {
			if m.Equal(out[idx], d) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		buckets[h] = append(buckets[h], len(out))
		out = append(out, d)
	}
	return out
}

// versionsEqual is true when both versions are absent or both are present and equal.
func versionsEqual(a, b Version) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() && b.IsZero()
	}
	return a.Equal(b)
}
