package domain

// RangesEqual reports whether two ranges are structurally equal. A nil range is treated as the
// unbounded range. Both inclusivity flags and both bounds must match; a present bound is compared
// by value and a bound absent on one side only makes the ranges unequal.
func RangesEqual(a, b *VersionRange) bool {
	if a == nil {
		a = AnyVersion()
	}
	if b == nil {
		b = AnyVersion()
	}
	return a.IsMinInclusive == b.IsMinInclusive &&
		a.IsMaxInclusive == b.IsMaxInclusive &&
		boundsEqual(a.MinVersion, b.MinVersion) &&
		boundsEqual(a.MaxVersion, b.MaxVersion)
}

// RangeHash returns a hash consistent with RangesEqual.
func RangeHash(r *VersionRange) uint64 {
	if r == nil {
		r = AnyVersion()
	}
	// Absent bounds contribute zero through Version.Hash.
	h := r.MinVersion.Hash() ^ (r.MaxVersion.Hash() * 31)
	h ^= boolHash(r.IsMinInclusive)
	h ^= boolHash(r.IsMaxInclusive) << 1
	return h
}

func boundsEqual(a, b Version) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() && b.IsZero()
	}
	return a.Equal(b)
}

func boolHash(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
