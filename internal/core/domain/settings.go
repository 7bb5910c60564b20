package domain

import (
	"runtime"
	"time"
)

const (
	// DefaultConfigFile is the configuration file name looked up in the working directory.
	DefaultConfigFile = "pinset.yaml"

	// DefaultInstalledPath is where the installed-package store lives unless configured.
	DefaultInstalledPath = ".pinset/installed.json"

	// DefaultFeedTimeout bounds a single remote feed request.
	DefaultFeedTimeout = 30 * time.Second

	// DirPerm is the permission used for directories created by pinset.
	DirPerm = 0o750

	// FilePerm is the permission used for files written by pinset.
	FilePerm = 0o600
)

// SourceSpec configures one package source. Exactly one of Path (local folder feed)
// or URL (remote feed) is set.
type SourceSpec struct {
	Name string
	Path string
	URL  string
}

// IsLocal reports whether the source lives on disk.
func (s SourceSpec) IsLocal() bool {
	return s.Path != ""
}

// Settings holds the resolution policy and source configuration for one run.
type Settings struct {
	// Latest prefers the newest version satisfying each declaration over the pinned version.
	Latest bool

	// AllowPrerelease lets repository queries return prerelease versions.
	AllowPrerelease bool

	// AllowUnlisted lets repository queries return unlisted packages.
	AllowUnlisted bool

	// Parallelism bounds the number of manifests processed concurrently.
	Parallelism int

	// Dedupe selects the equality relation applied before constraint resolution.
	Dedupe EqualityMode

	// InstalledPath is the path of the installed-package store.
	InstalledPath string

	// Timeout bounds a single remote feed request.
	Timeout time.Duration

	// Sources lists package sources in priority order.
	Sources []SourceSpec
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Parallelism:   runtime.NumCPU(),
		Dedupe:        ByIdentifierVersionAndRange,
		InstalledPath: DefaultInstalledPath,
		Timeout:       DefaultFeedTimeout,
	}
}

// FindOptions returns the repository query options implied by the settings.
func (s *Settings) FindOptions() FindOptions {
	return FindOptions{AllowPrerelease: s.AllowPrerelease, AllowUnlisted: s.AllowUnlisted}
}
