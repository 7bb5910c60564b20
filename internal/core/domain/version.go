package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// versionPattern splits a version into up to four numeric segments plus the
// prerelease/metadata suffix. The fourth segment is the revision.
var versionPattern = regexp.MustCompile(`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?((?:-[0-9A-Za-z.\-]+)?(?:\+[0-9A-Za-z.\-]+)?)$`)

// Version is a totally ordered package version: major.minor.patch[.revision][-prerelease][+metadata].
//
// The first three segments, prerelease and metadata are handled by github.com/Masterminds/semver/v3.
// The zero value denotes an absent version.
type Version struct {
	sv       *semver.Version
	revision uint64
}

// ParseVersion parses a version string such as "1", "1.2", "1.2.3", "1.2.3.4" or "1.2.3-beta.1".
func ParseVersion(raw string) (Version, error) {
	text := strings.TrimSpace(raw)
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "failed to parse version"), "version", raw)
	}

	segments := [3]string{m[1], m[2], m[3]}
	for i, s := range segments {
		if s == "" {
			segments[i] = "0"
		}
	}

	var revision uint64
	if m[4] != "" {
		rev, err := strconv.ParseUint(m[4], 10, 64)
		if err != nil {
			return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, err.Error()), "version", raw)
		}
		revision = rev
	}

	sv, err := semver.NewVersion(strings.Join(segments[:], ".") + m[5])
	if err != nil {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, err.Error()), "version", raw)
	}
	return Version{sv: sv, revision: revision}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether the version is absent.
func (v Version) IsZero() bool {
	return v.sv == nil
}

// IsPrerelease reports whether the version carries a prerelease label.
func (v Version) IsPrerelease() bool {
	return v.sv != nil && v.sv.Prerelease() != ""
}

// String returns the normalized text form. The revision is omitted when zero.
func (v Version) String() string {
	if v.sv == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.sv.Major(), v.sv.Minor(), v.sv.Patch())
	if v.revision > 0 {
		fmt.Fprintf(&b, ".%d", v.revision)
	}
	if pre := v.sv.Prerelease(); pre != "" {
		b.WriteString("-" + pre)
	}
	if meta := v.sv.Metadata(); meta != "" {
		b.WriteString("+" + meta)
	}
	return b.String()
}

// Compare compares v and o, returning -1 if v < o, 0 if v == o and 1 if v > o.
// Build metadata is ignored. An absent version sorts below every present version.
func (v Version) Compare(o Version) int {
	switch {
	case v.sv == nil && o.sv == nil:
		return 0
	case v.sv == nil:
		return -1
	case o.sv == nil:
		return 1
	}

	if d := compareSegment(v.sv.Major(), o.sv.Major()); d != 0 {
		return d
	}
	if d := compareSegment(v.sv.Minor(), o.sv.Minor()); d != 0 {
		return d
	}
	if d := compareSegment(v.sv.Patch(), o.sv.Patch()); d != 0 {
		return d
	}
	if d := compareSegment(v.revision, o.revision); d != 0 {
		return d
	}
	// Cores are equal, so semver ordering now only depends on the prerelease label.
	return v.sv.Compare(o.sv)
}

// Equal reports whether v and o denote the same version.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// Hash returns a hash consistent with Equal. An absent version hashes to zero.
func (v Version) Hash() uint64 {
	if v.sv == nil {
		return 0
	}
	return xxhash.Sum64String(fmt.Sprintf("%d.%d.%d.%d-%s",
		v.sv.Major(), v.sv.Minor(), v.sv.Patch(), v.revision, v.sv.Prerelease()))
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the zero Version.
func (v *Version) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*v = Version{}
		return nil
	}
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func compareSegment(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
