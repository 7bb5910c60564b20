package app

import (
	"context"
	"fmt"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/pinset/internal/engine/resolution"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PlanOptions configuration for the Plan method.
type PlanOptions struct {
	// ConfigPath is the settings file. Empty means domain.DefaultConfigFile.
	ConfigPath string

	// Latest enables the latest policy regardless of the configuration.
	Latest bool

	// Offline restricts lookups to installed packages and local sources.
	Offline bool

	// ExcludeDev skips development-only declarations.
	ExcludeDev bool

	// Record stores every resolved package in the installed-package store.
	Record bool
}

// PlanEntry is the outcome for one declaration.
type PlanEntry struct {
	Manifest string
	Declared domain.Declaration
	Version  domain.Version
	Source   string
	Err      error
}

// PlanResult lists the entries of every manifest, in manifest then declaration order.
type PlanResult struct {
	Entries []PlanEntry
}

// Failed returns the entries that could not be resolved.
func (r *PlanResult) Failed() []PlanEntry {
	var failed []PlanEntry
	for _, e := range r.Entries {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}

// planner resolves the declarations of one manifest. It owns a Manager and Cache pair and must
// not be shared between goroutines.
type planner struct {
	manager   *resolution.Manager
	installed ports.InstalledRepository
	remote    ports.AggregateRepository
	settings  *domain.Settings
	opts      PlanOptions
}

// Plan resolves every declaration of every manifest to a concrete package.
//
// Manifests are processed concurrently, at most settings.Parallelism at a time, each with its own
// resolution cache. A declaration that cannot be resolved is reported in its entry; the returned
// error then wraps domain.ErrPlanIncomplete.
func (a *App) Plan(ctx context.Context, manifests []string, opts PlanOptions) (*PlanResult, error) {
	// 1. Validate input
	if len(manifests) == 0 {
		return nil, domain.ErrNoManifests
	}

	// 2. Load settings and sources
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Latest {
		settings.Latest = true
	}

	installed, err := a.sources.Installed(settings)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open installed packages")
	}
	remote, err := a.sources.Aggregate(settings)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to configure package sources")
	}

	// 3. Read manifests
	perManifest, err := a.readManifests(ctx, manifests, settings.Parallelism)
	if err != nil {
		return nil, err
	}

	// 4. Resolve each manifest on its own manager
	entries := make([][]PlanEntry, len(manifests))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(settings.Parallelism)
	for i, path := range manifests {
		g.Go(func() error {
			p := &planner{
				manager: resolution.NewManager(resolution.Options{
					Latest:          settings.Latest,
					AllowPrerelease: settings.AllowPrerelease,
					AllowUnlisted:   settings.AllowUnlisted,
				}, resolution.NewCache(a.logger), a.logger),
				installed: installed,
				remote:    remote,
				settings:  settings,
				opts:      opts,
			}
			decls := perManifest[i]
			if opts.ExcludeDev {
				decls = withoutDevelopment(decls)
			}
			for _, d := range decls {
				if err := gctx.Err(); err != nil {
					return err
				}
				entry := p.resolve(gctx, d)
				entry.Manifest = path
				entries[i] = append(entries[i], entry)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &PlanResult{}
	for _, e := range entries {
		result.Entries = append(result.Entries, e...)
	}

	failed := result.Failed()
	for _, e := range failed {
		a.logger.Error(zerr.With(zerr.Wrap(e.Err, "could not resolve"), "manifest", e.Manifest))
	}
	if len(failed) > 0 {
		return result, zerr.With(zerr.Wrap(domain.ErrPlanIncomplete, "some packages could not be resolved"),
			"count", len(failed))
	}
	return result, nil
}

func (p *planner) resolve(ctx context.Context, d domain.Declaration) PlanEntry {
	entry := PlanEntry{Declared: d}

	latestFrom := ports.Repository(p.remote)
	if p.opts.Offline {
		latestFrom = p.remote.LocalOnly()
	}

	version, ok := p.manager.ResolveInstallableVersion(ctx, latestFrom, d)
	if !ok {
		entry.Err = zerr.With(zerr.Wrap(domain.ErrNoInstallableVersion, fmt.Sprintf("no version of '%s' to install", d.ID)),
			"declaration", d.String())
		return entry
	}
	entry.Version = version

	var pkg *domain.Package
	if p.opts.Offline {
		pkg = p.manager.FindPackageInAllLocalSources(ctx, p.installed, p.remote, d.ID, version,
			p.settings.AllowPrerelease || version.IsPrerelease(), true)
		if pkg == nil {
			entry.Err = &domain.PackageNotFoundError{ID: d.ID, Version: version}
			return entry
		}
	} else {
		var err error
		pkg, err = p.manager.ResolvePackage(ctx, p.installed, p.remote, d.ID, version, p.settings.AllowPrerelease)
		if err != nil {
			entry.Err = err
			return entry
		}
	}
	entry.Source = pkg.Source

	if p.opts.Record && pkg.Source != p.installed.Name() {
		if err := p.installed.Put(pkg); err != nil {
			entry.Err = zerr.Wrap(err, "failed to record installed package")
		}
	}
	return entry
}
