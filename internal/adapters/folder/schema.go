package folder

// MetadataFile is the name of the metadata file inside each version directory.
const MetadataFile = "package.yaml"

// PackageDTO represents the package.yaml metadata of one package version.
type PackageDTO struct {
	ID           string          `yaml:"id"`
	Version      string          `yaml:"version"`
	Listed       *bool           `yaml:"listed"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
}

// DependencyDTO represents a dependency declared by a package.
type DependencyDTO struct {
	ID              string `yaml:"id"`
	Version         string `yaml:"version,omitempty"`
	AllowedVersions string `yaml:"allowedVersions,omitempty"`
}
