// Package app implements the application layer for pinset.
package app

import (
	"context"
	"runtime"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.ManifestReader
	writer       ports.ManifestWriter
	sources      ports.SourceFactory
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.ManifestReader,
	writer ports.ManifestWriter,
	sources ports.SourceFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		writer:       writer,
		sources:      sources,
		logger:       log,
	}
}

func (a *App) loadSettings(path string) (*domain.Settings, error) {
	if path == "" {
		path = domain.DefaultConfigFile
	}
	settings, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if settings.Parallelism <= 0 {
		settings.Parallelism = runtime.NumCPU()
	}
	return settings, nil
}

// readManifests reads every manifest concurrently and returns their declarations in argument order.
func (a *App) readManifests(ctx context.Context, manifests []string, limit int) ([][]domain.Declaration, error) {
	results := make([][]domain.Declaration, len(manifests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range manifests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			decls, err := a.reader.Read(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read manifest"), "manifest", path)
			}
			results[i] = decls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// withoutDevelopment drops development-only declarations.
func withoutDevelopment(decls []domain.Declaration) []domain.Declaration {
	kept := make([]domain.Declaration, 0, len(decls))
	for _, d := range decls {
		if !d.DevelopmentDependency {
			kept = append(kept, d)
		}
	}
	return kept
}
