package feed

// IndexResponse is the body of GET <url>/<lower-id>/index.json.
type IndexResponse struct {
	ID       string         `json:"id"`
	Versions []VersionEntry `json:"versions"`
}

// VersionEntry describes one published version in an index.
type VersionEntry struct {
	Version      string          `json:"version"`
	Listed       *bool           `json:"listed,omitempty"`
	Dependencies []DependencyDTO `json:"dependencies,omitempty"`
	Files        []string        `json:"files,omitempty"`
}

// DependencyDTO is a dependency declared by a published version.
type DependencyDTO struct {
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
	Range   string `json:"range,omitempty"`
}
