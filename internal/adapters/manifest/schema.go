package manifest

// File represents the structure of a dependency manifest.
type File struct {
	Packages []PackageDTO `yaml:"packages"`
}

// PackageDTO represents one declared dependency in a manifest.
type PackageDTO struct {
	ID                    string `yaml:"id"`
	Version               string `yaml:"version,omitempty"`
	AllowedVersions       string `yaml:"allowedVersions,omitempty"`
	TargetFramework       string `yaml:"targetFramework,omitempty"`
	DevelopmentDependency bool   `yaml:"developmentDependency,omitempty"`
}

// LockfileDTO represents the persisted resolved set.
type LockfileDTO struct {
	Version  int             `yaml:"version"`
	Packages []PinDTO `yaml:"packages"`
}

// PinDTO represents one resolved constraint in the lockfile.
type PinDTO struct {
	ID              string `yaml:"id"`
	Version         string `yaml:"version,omitempty"`
	AllowedVersions string `yaml:"allowedVersions,omitempty"`
}
