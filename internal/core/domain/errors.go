package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidVersion is returned when a version string cannot be parsed.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidVersionRange is returned when a version range string cannot be parsed
	// or describes an empty interval.
	ErrInvalidVersionRange = zerr.New("invalid version range")

	// ErrPackageNotFound is returned by repositories when no package matches a query.
	// It is distinct from any other error a repository returns, which is treated as a fault.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrUnknownPackage is the cause of a PackageNotFoundError when no version was pinned.
	ErrUnknownPackage = zerr.New("unknown package")

	// ErrUnknownPackageVersion is the cause of a PackageNotFoundError for an exact pin.
	ErrUnknownPackageVersion = zerr.New("unknown package version")

	// ErrUnsatisfiedConstraints is returned when one or more identifiers could not be resolved
	// to a single version or range.
	ErrUnsatisfiedConstraints = zerr.New("unsatisfied constraints")

	// ErrNoInstallableVersion is returned when a declaration yields no version to install under
	// the active policy, e.g. a range-only declaration without the latest policy.
	ErrNoInstallableVersion = zerr.New("no installable version")

	// ErrPlanIncomplete is returned when at least one declaration of an install plan could not be
	// resolved to a concrete package.
	ErrPlanIncomplete = zerr.New("install plan incomplete")

	// ErrNoManifests is returned when a command is invoked without any manifest.
	ErrNoManifests = zerr.New("no manifests specified")

	// ErrManifestNotFound is returned when a manifest pattern matches no file.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrInvalidManifest is returned when a manifest entry is malformed.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrInvalidDedupeMode is returned for an unknown equality mode name.
	ErrInvalidDedupeMode = zerr.New("invalid dedupe mode")

	// ErrInvalidSource is returned when a configured source has neither a path nor a url.
	ErrInvalidSource = zerr.New("invalid source")

	// ErrFeedRequestFailed is returned when a remote feed cannot be queried.
	ErrFeedRequestFailed = zerr.New("feed request failed")

	// ErrFeedParseFailed is returned when a remote feed response cannot be decoded.
	ErrFeedParseFailed = zerr.New("failed to parse feed response")
)

// PackageNotFoundError is returned when an exact (id, version) request cannot be located in
// any consulted source. It unwraps to ErrUnknownPackageVersion when a version was given and to
// ErrUnknownPackage otherwise.
type PackageNotFoundError struct {
	ID      string
	Version Version
}

// Error implements the error interface.
func (e *PackageNotFoundError) Error() string {
	if e.Version.IsZero() {
		return fmt.Sprintf("unknown package '%s'", e.ID)
	}
	return fmt.Sprintf("unknown package '%s' version '%s'", e.ID, e.Version)
}

// Unwrap returns the sentinel describing which half of the request was unknown.
func (e *PackageNotFoundError) Unwrap() error {
	if e.Version.IsZero() {
		return ErrUnknownPackage
	}
	return ErrUnknownPackageVersion
}
