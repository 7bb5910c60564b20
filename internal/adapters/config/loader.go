// Package config provides the configuration loader for pinset.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings from path. A missing file yields domain.DefaultSettings.
// Relative source and store paths are resolved against the directory of the file.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Info(fmt.Sprintf("no configuration at %s, using defaults", path))
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var pinfile Pinfile
	if err := yaml.Unmarshal(data, &pinfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return l.toSettings(&pinfile, filepath.Dir(path))
}

func (l *Loader) toSettings(pinfile *Pinfile, baseDir string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if pinfile.Version != "" && pinfile.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("unknown configuration version %q, reading as version 1", pinfile.Version))
	}
	if pinfile.Latest != nil {
		settings.Latest = *pinfile.Latest
	}
	if pinfile.AllowPrerelease != nil {
		settings.AllowPrerelease = *pinfile.AllowPrerelease
	}
	if pinfile.AllowUnlisted != nil {
		settings.AllowUnlisted = *pinfile.AllowUnlisted
	}
	if pinfile.Parallelism > 0 {
		settings.Parallelism = pinfile.Parallelism
	}
	if pinfile.Dedupe != "" {
		mode, err := domain.ParseEqualityMode(pinfile.Dedupe)
		if err != nil {
			return nil, err
		}
		settings.Dedupe = mode
	}
	if pinfile.Installed != "" {
		settings.InstalledPath = resolvePath(baseDir, pinfile.Installed)
	} else {
		settings.InstalledPath = resolvePath(baseDir, settings.InstalledPath)
	}
	if pinfile.Timeout != "" {
		timeout, err := time.ParseDuration(pinfile.Timeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid timeout"), "timeout", pinfile.Timeout)
		}
		settings.Timeout = timeout
	}

	seen := make(map[string]bool, len(pinfile.Sources))
	for i, dto := range pinfile.Sources {
		src, err := toSource(dto, i, baseDir)
		if err != nil {
			return nil, err
		}
		if seen[src.Name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSource, "duplicate source name"), "source", src.Name)
		}
		seen[src.Name] = true
		settings.Sources = append(settings.Sources, src)
	}

	return settings, nil
}

func toSource(dto SourceDTO, index int, baseDir string) (domain.SourceSpec, error) {
	name := dto.Name
	if name == "" {
		name = fmt.Sprintf("source-%d", index+1)
	}

	switch {
	case dto.Path != "" && dto.URL != "":
		return domain.SourceSpec{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidSource, "source has both path and url"), "source", name)
	case dto.Path != "":
		return domain.SourceSpec{Name: name, Path: resolvePath(baseDir, dto.Path)}, nil
	case dto.URL != "":
		return domain.SourceSpec{Name: name, URL: dto.URL}, nil
	default:
		return domain.SourceSpec{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidSource, "source has neither path nor url"), "source", name)
	}
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
