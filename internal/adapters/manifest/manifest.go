// Package manifest reads dependency declarations from YAML manifests and writes resolved pin files.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Reader implements ports.ManifestReader for YAML manifests.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the declarations of the manifest at path in file order.
// Lockfiles produced by Writer are manifests too and read back as exact pins and ranges.
func (r *Reader) Read(path string) ([]domain.Declaration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	decls := make([]domain.Declaration, 0, len(file.Packages))
	for i, dto := range file.Packages {
		id := strings.TrimSpace(dto.ID)
		if id == "" {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "package entry without id"), "path", path)
			return nil, zerr.With(err, "index", i)
		}

		d, err := domain.ParseDeclaration(id, dto.Version, dto.AllowedVersions)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		d.TargetFramework = dto.TargetFramework
		d.DevelopmentDependency = dto.DevelopmentDependency
		d.Source = path
		decls = append(decls, d)
	}
	return decls, nil
}

// Writer implements ports.ManifestWriter producing a versioned YAML lockfile.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write replaces the file at path with the resolved constraints.
// The file is written to a temporary sibling first and renamed into place.
func (w *Writer) Write(path string, constraints []domain.ResolvedConstraint) error {
	lock := domain.NewLockfile(constraints)

	dto := LockfileDTO{Version: lock.Version, Packages: make([]PinDTO, 0, len(lock.Packages))}
	for _, c := range lock.Packages {
		pin := PinDTO{ID: c.ID}
		if !c.Version.IsZero() {
			pin.Version = c.Version.String()
		}
		if c.Range != nil && !c.Range.IsUnbounded() {
			pin.AllowedVersions = c.Range.String()
		}
		dto.Packages = append(dto.Packages, pin)
	}

	data, err := yaml.Marshal(&dto)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lockfile")
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for lockfile"), "path", path)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, "failed to replace lockfile"), "path", path)
	}
	return nil
}
