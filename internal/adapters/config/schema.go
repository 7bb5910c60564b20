package config

// Pinfile represents the structure of the pinset.yaml configuration file.
type Pinfile struct {
	Version         string      `yaml:"version"`
	Latest          *bool       `yaml:"latest"`
	AllowPrerelease *bool       `yaml:"allowPrerelease"`
	AllowUnlisted   *bool       `yaml:"allowUnlisted"`
	Parallelism     int         `yaml:"parallelism"`
	Dedupe          string      `yaml:"dedupe"`
	Installed       string      `yaml:"installed"`
	Timeout         string      `yaml:"timeout"`
	Sources         []SourceDTO `yaml:"sources"`
}

// SourceDTO represents a package source definition in the configuration.
type SourceDTO struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	URL  string `yaml:"url"`
}
