package installed

// fileDTO is the on-disk layout of the installed-package store.
type fileDTO struct {
	Packages []packageDTO `json:"packages"`
}

type packageDTO struct {
	ID           string          `json:"id"`
	Version      string          `json:"version"`
	Source       string          `json:"source,omitempty"`
	Files        []string        `json:"files,omitempty"`
	Dependencies []dependencyDTO `json:"dependencies,omitempty"`
}

type dependencyDTO struct {
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
	Range   string `json:"range,omitempty"`
}
