// Package feed implements a package repository backed by a remote HTTP JSON feed.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Repository = (*Repository)(nil)

// Repository queries a remote feed. Each identifier's index is fetched at most once per
// Repository; failed fetches are not remembered and are retried on the next query.
type Repository struct {
	name       string
	baseURL    string
	httpClient *http.Client

	mu      sync.Mutex
	indexes map[domain.InternedString][]*domain.Package
}

// NewRepository creates a Repository named name for the feed at baseURL.
func NewRepository(name, baseURL string, client *http.Client) *Repository {
	if client == nil {
		client = &http.Client{Timeout: domain.DefaultFeedTimeout}
	}
	return &Repository{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		indexes:    make(map[domain.InternedString][]*domain.Package),
	}
}

// Name returns the configured source name.
func (r *Repository) Name() string {
	return r.name
}

// FindPackagesByID returns every published version of id, newest first.
func (r *Repository) FindPackagesByID(ctx context.Context, id string) ([]*domain.Package, error) {
	key := domain.NormalizeID(id)

	r.mu.Lock()
	pkgs, ok := r.indexes[key]
	r.mu.Unlock()
	if ok {
		return pkgs, nil
	}

	pkgs, err := r.fetchIndex(ctx, id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.indexes[key]; ok {
		return cached, nil
	}
	r.indexes[key] = pkgs
	return pkgs, nil
}

// FindPackage returns the exact version of id.
func (r *Repository) FindPackage(
	ctx context.Context,
	id string,
	version domain.Version,
	opts domain.FindOptions,
) (*domain.Package, error) {
	pkgs, err := r.FindPackagesByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range pkgs {
		if p.Version.Equal(version) && opts.Accepts(p) {
			return p, nil
		}
	}
	return nil, zerr.With(r.notFound(id), "version", version.String())
}

// FindLatest returns the newest version of id accepted by opts.
func (r *Repository) FindLatest(ctx context.Context, id string, opts domain.FindOptions) (*domain.Package, error) {
	return r.FindLatestInRange(ctx, id, nil, opts)
}

// FindLatestInRange returns the newest version of id inside rng accepted by opts.
func (r *Repository) FindLatestInRange(
	ctx context.Context,
	id string,
	rng *domain.VersionRange,
	opts domain.FindOptions,
) (*domain.Package, error) {
	pkgs, err := r.FindPackagesByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if best := domain.LatestPackage(pkgs, rng, opts); best != nil {
		return best, nil
	}
	return nil, zerr.With(r.notFound(id), "range", rng.String())
}

// fetchIndex downloads and decodes the index of id.
func (r *Repository) fetchIndex(ctx context.Context, id string) ([]*domain.Package, error) {
	endpoint := fmt.Sprintf("%s/%s/index.json", r.baseURL, url.PathEscape(strings.ToLower(strings.TrimSpace(id))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, r.transportFailed(err, id)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, r.transportFailed(err, id)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, r.notFound(id)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(zerr.Wrap(domain.ErrFeedRequestFailed, "unexpected status"), "status_code", resp.StatusCode)
		return nil, r.requestFailed(apiErr, id)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, r.transportFailed(err, id)
	}

	var index IndexResponse
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, r.requestFailed(zerr.Wrap(domain.ErrFeedParseFailed, err.Error()), id)
	}

	pkgs, err := r.toPackages(id, &index)
	if err != nil {
		return nil, r.requestFailed(err, id)
	}
	if len(pkgs) == 0 {
		return nil, r.notFound(id)
	}
	domain.SortPackagesDescending(pkgs)
	return pkgs, nil
}

func (r *Repository) toPackages(id string, index *IndexResponse) ([]*domain.Package, error) {
	if index.ID != "" {
		id = index.ID
	}

	pkgs := make([]*domain.Package, 0, len(index.Versions))
	for _, entry := range index.Versions {
		v, err := domain.ParseVersion(entry.Version)
		if err != nil {
			return nil, zerr.Wrap(domain.ErrFeedParseFailed, err.Error())
		}

		pkg := &domain.Package{
			ID:      id,
			Version: v,
			Listed:  entry.Listed == nil || *entry.Listed,
			Files:   entry.Files,
			Source:  r.name,
		}
		for _, dep := range entry.Dependencies {
			d, err := domain.ParseDeclaration(dep.ID, dep.Version, dep.Range)
			if err != nil {
				return nil, zerr.Wrap(domain.ErrFeedParseFailed, err.Error())
			}
			d.Source = r.name
			pkg.Dependencies = append(pkg.Dependencies, d)
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// transportFailed marks err as a feed request failure while keeping it matchable, so a canceled
// context still reports context.Canceled.
func (r *Repository) transportFailed(err error, id string) error {
	return r.requestFailed(fmt.Errorf("%w: %w", domain.ErrFeedRequestFailed, err), id)
}

func (r *Repository) requestFailed(err error, id string) error {
	return zerr.With(zerr.With(err, "id", id), "source", r.name)
}

func (r *Repository) notFound(id string) error {
	err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "package not in feed"), "id", id)
	return zerr.With(err, "source", r.name)
}
