package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/engine/constraint"
	"go.trai.ch/zerr"
)

// AggregateOptions configuration for the Aggregate method.
type AggregateOptions struct {
	// ConfigPath is the settings file. Empty means domain.DefaultConfigFile.
	ConfigPath string

	// Out is where the resolved set is written. Empty skips writing.
	Out string

	// Dedupe overrides the configured equality mode when set.
	Dedupe string

	// ExcludeDev drops development-only declarations before resolving.
	ExcludeDev bool
}

// FailedConstraint groups the declarations of one identifier that could not be satisfied together.
type FailedConstraint struct {
	ID           string
	Declarations []domain.Declaration
}

// AggregateResult reports the outcome of an aggregation run.
type AggregateResult struct {
	Resolved     []domain.ResolvedConstraint
	Failed       []FailedConstraint
	Manifests    int
	Declarations int
}

// Aggregate collects the declarations of every manifest, deduplicates them, merges them into
// one constraint per identifier and writes the resolved set to opts.Out.
//
// The resolved set is written even when some identifiers fail; the error then wraps
// domain.ErrUnsatisfiedConstraints and the result lists the failures.
func (a *App) Aggregate(ctx context.Context, manifests []string, opts AggregateOptions) (*AggregateResult, error) {
	// 1. Validate input
	if len(manifests) == 0 {
		return nil, domain.ErrNoManifests
	}

	// 2. Load settings
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	mode := settings.Dedupe
	if opts.Dedupe != "" {
		mode, err = domain.ParseEqualityMode(opts.Dedupe)
		if err != nil {
			return nil, err
		}
	}

	// 3. Read manifests
	perManifest, err := a.readManifests(ctx, manifests, settings.Parallelism)
	if err != nil {
		return nil, err
	}

	var decls []domain.Declaration
	for _, d := range perManifest {
		decls = append(decls, d...)
	}
	if opts.ExcludeDev {
		decls = withoutDevelopment(decls)
	}
	decls = mode.Dedupe(decls)

	// 4. Resolve
	resolved, failed := constraint.Resolve(decls)
	result := &AggregateResult{
		Resolved:     resolved,
		Failed:       groupFailures(failed),
		Manifests:    len(manifests),
		Declarations: len(decls),
	}
	a.logger.Info(fmt.Sprintf("resolved %d of %d packages from %d manifests",
		len(resolved), len(resolved)+len(result.Failed), len(manifests)))

	// 5. Persist
	if opts.Out != "" {
		if err := a.writer.Write(opts.Out, resolved); err != nil {
			return result, zerr.With(zerr.Wrap(err, "failed to write resolved constraints"), "path", opts.Out)
		}
	}

	if len(result.Failed) > 0 {
		for _, f := range result.Failed {
			a.logger.Warn(fmt.Sprintf("could not satisfy '%s': %s", f.ID, describe(f.Declarations)))
		}
		return result, zerr.With(zerr.Wrap(domain.ErrUnsatisfiedConstraints, "could not satisfy every package"),
			"count", len(result.Failed))
	}
	return result, nil
}

// groupFailures groups failed declarations by identifier, in order of first appearance.
func groupFailures(failed []domain.Declaration) []FailedConstraint {
	var groups []FailedConstraint
	index := make(map[domain.InternedString]int)
	for _, d := range failed {
		i, ok := index[d.Key()]
		if !ok {
			i = len(groups)
			index[d.Key()] = i
			groups = append(groups, FailedConstraint{ID: d.ID})
		}
		groups[i].Declarations = append(groups[i].Declarations, d)
	}
	return groups
}

func describe(decls []domain.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
		if d.Source != "" {
			parts[i] += " (" + d.Source + ")"
		}
	}
	return strings.Join(parts, ", ")
}
