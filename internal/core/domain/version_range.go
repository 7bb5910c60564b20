package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// VersionRange is an interval of acceptable versions. Either bound may be absent (zero Version),
// in which case the interval is open towards that side. A range with no bounds accepts any version.
type VersionRange struct {
	MinVersion     Version
	IsMinInclusive bool
	MaxVersion     Version
	IsMaxInclusive bool
}

// AnyVersion returns the universal range.
func AnyVersion() *VersionRange {
	return &VersionRange{}
}

// ExactRange returns the zero-width range [v,v].
func ExactRange(v Version) *VersionRange {
	return &VersionRange{MinVersion: v, IsMinInclusive: true, MaxVersion: v, IsMaxInclusive: true}
}

// HasLowerBound reports whether the range has a lower bound.
func (r *VersionRange) HasLowerBound() bool {
	return r != nil && !r.MinVersion.IsZero()
}

// HasUpperBound reports whether the range has an upper bound.
func (r *VersionRange) HasUpperBound() bool {
	return r != nil && !r.MaxVersion.IsZero()
}

// IsUnbounded reports whether the range accepts any version. A nil range is unbounded.
func (r *VersionRange) IsUnbounded() bool {
	return !r.HasLowerBound() && !r.HasUpperBound()
}

// Satisfies reports whether v lies within the range, respecting the inclusivity of each bound.
// An absent bound is always satisfied.
func (r *VersionRange) Satisfies(v Version) bool {
	if r.HasLowerBound() {
		c := v.Compare(r.MinVersion)
		if c < 0 || (c == 0 && !r.IsMinInclusive) {
			return false
		}
	}
	if r.HasUpperBound() {
		c := v.Compare(r.MaxVersion)
		if c > 0 || (c == 0 && !r.IsMaxInclusive) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no version can satisfy the range: the lower bound exceeds the upper
// bound, or both are equal while at least one side is exclusive.
func (r *VersionRange) IsEmpty() bool {
	if !r.HasLowerBound() || !r.HasUpperBound() {
		return false
	}
	c := r.MinVersion.Compare(r.MaxVersion)
	return c > 0 || (c == 0 && !(r.IsMinInclusive && r.IsMaxInclusive))
}

// String renders the range in interval notation, e.g. "[1.0.0,2.0.0)", "(,3.0.0]" or "[1.2.0]".
func (r *VersionRange) String() string {
	if r.IsUnbounded() {
		return "(,)"
	}
	if r.HasLowerBound() && r.HasUpperBound() && r.IsMinInclusive && r.IsMaxInclusive &&
		r.MinVersion.Equal(r.MaxVersion) {
		return "[" + r.MinVersion.String() + "]"
	}

	var b strings.Builder
	if r.HasLowerBound() && r.IsMinInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(r.MinVersion.String())
	b.WriteByte(',')
	b.WriteString(r.MaxVersion.String())
	if r.HasUpperBound() && r.IsMaxInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// ParseVersionRange parses interval notation:
//
//	1.0        x >= 1.0
//	[1.0]      x == 1.0
//	(1.0,)     x > 1.0
//	(,2.0]     x <= 2.0
//	[1.0,2.0)  1.0 <= x < 2.0
//
// A range whose lower bound is greater than its upper bound is rejected. Equal bounds with an
// exclusive side are accepted here and reported as unsatisfiable during constraint resolution.
func ParseVersionRange(raw string) (*VersionRange, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, rangeError(raw, "empty range")
	}

	first, last := text[0], text[len(text)-1]
	if first != '[' && first != '(' {
		v, err := ParseVersion(text)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalidVersionRange, err.Error()), "range", raw)
		}
		return &VersionRange{MinVersion: v, IsMinInclusive: true}, nil
	}
	if last != ']' && last != ')' {
		return nil, rangeError(raw, "missing closing bracket")
	}

	r := &VersionRange{IsMinInclusive: first == '[', IsMaxInclusive: last == ']'}
	parts := strings.Split(text[1:len(text)-1], ",")

	switch len(parts) {
	case 1:
		if !r.IsMinInclusive || !r.IsMaxInclusive {
			return nil, rangeError(raw, "a single version must use inclusive brackets")
		}
		v, err := ParseVersion(parts[0])
		if err != nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalidVersionRange, err.Error()), "range", raw)
		}
		return ExactRange(v), nil
	case 2:
	default:
		return nil, rangeError(raw, "too many bounds")
	}

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := ParseVersion(part)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalidVersionRange, err.Error()), "range", raw)
		}
		if i == 0 {
			r.MinVersion = v
		} else {
			r.MaxVersion = v
		}
	}

	if r.IsUnbounded() {
		return nil, rangeError(raw, "at least one bound is required")
	}
	if r.HasLowerBound() && r.HasUpperBound() && r.MinVersion.Compare(r.MaxVersion) > 0 {
		return nil, rangeError(raw, "lower bound exceeds upper bound")
	}
	// Absent bounds are always reported exclusive so that equality ignores the bracket used.
	if !r.HasLowerBound() {
		r.IsMinInclusive = false
	}
	if !r.HasUpperBound() {
		r.IsMaxInclusive = false
	}
	return r, nil
}

func rangeError(raw, reason string) error {
	err := zerr.Wrap(ErrInvalidVersionRange, reason)
	return zerr.With(err, "range", raw)
}
