package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinset/internal/adapters/feed"
	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/zerr"
)

const serilogIndex = `{
  "id": "Serilog",
  "versions": [
    {"version": "1.0.0", "files": ["lib/Serilog.dll"]},
    {"version": "2.0.0", "dependencies": [{"id": "Serilog.Sinks", "range": "[1.0,2.0)"}]},
    {"version": "2.1.0-beta"},
    {"version": "3.0.0", "listed": false}
  ]
}`

func newServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/serilog/index.json", func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(serilogIndex))
	})
	mux.HandleFunc("/v3/broken/index.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})
	mux.HandleFunc("/v3/badversion/index.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"versions":[{"version":"latest"}]}`))
	})
	mux.HandleFunc("/v3/empty/index.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"Empty","versions":[]}`))
	})
	mux.HandleFunc("/v3/flaky/index.json", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/v3/truncated/index.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "1024")
		_, _ = w.Write([]byte(`{"id":"Truncated"`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRepository_FindPackagesByID(t *testing.T) {
	srv := newServer(t, nil)
	repo := feed.NewRepository("nuget", srv.URL+"/v3/", srv.Client())

	pkgs, err := repo.FindPackagesByID(context.Background(), "Serilog")
	require.NoError(t, err)
	require.Len(t, pkgs, 4)

	assert.Equal(t, "3.0.0", pkgs[0].Version.String())
	assert.False(t, pkgs[0].Listed)
	assert.Equal(t, "1.0.0", pkgs[3].Version.String())
	assert.Equal(t, []string{"lib/Serilog.dll"}, pkgs[3].Files)
	assert.Equal(t, "nuget", pkgs[3].Source)
	assert.Equal(t, "nuget", repo.Name())

	require.Len(t, pkgs[2].Dependencies, 1)
	assert.Equal(t, "Serilog.Sinks", pkgs[2].Dependencies[0].ID)
	assert.Equal(t, "[1.0.0,2.0.0)", pkgs[2].Dependencies[0].Range.String())
}

func TestRepository_IndexFetchedOnce(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	repo := feed.NewRepository("nuget", srv.URL+"/v3", srv.Client())
	ctx := context.Background()

	_, err := repo.FindLatest(ctx, "Serilog", domain.FindOptions{})
	require.NoError(t, err)
	_, err = repo.FindPackage(ctx, "SERILOG", domain.MustParseVersion("1.0"), domain.FindOptions{})
	require.NoError(t, err)
	_, err = repo.FindPackagesByID(ctx, "serilog")
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
}

func TestRepository_Queries(t *testing.T) {
	srv := newServer(t, nil)
	repo := feed.NewRepository("nuget", srv.URL+"/v3", srv.Client())
	ctx := context.Background()

	pkg, err := repo.FindLatest(ctx, "Serilog", domain.FindOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", pkg.Version.String())

	pkg, err = repo.FindLatest(ctx, "Serilog", domain.FindOptions{AllowPrerelease: true})
	require.NoError(t, err)
	assert.Equal(t, "2.1.0-beta", pkg.Version.String())

	rng, err := domain.ParseVersionRange("[1.0,2.0)")
	require.NoError(t, err)
	pkg, err = repo.FindLatestInRange(ctx, "Serilog", rng, domain.FindOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", pkg.Version.String())

	pkg, err = repo.FindPackage(ctx, "Serilog", domain.MustParseVersion("3.0"), domain.FindOptions{AllowUnlisted: true})
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", pkg.Version.String())

	_, err = repo.FindPackage(ctx, "Serilog", domain.MustParseVersion("4.0"), domain.FindOptions{})
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound))
}

func TestRepository_NotFoundVersusFault(t *testing.T) {
	srv := newServer(t, nil)
	repo := feed.NewRepository("nuget", srv.URL+"/v3", srv.Client())
	ctx := context.Background()

	tests := []struct {
		id       string
		notFound bool
		parse    bool
	}{
		{id: "Missing", notFound: true},
		{id: "Empty", notFound: true},
		{id: "Flaky"},
		{id: "Broken", parse: true},
		{id: "BadVersion", parse: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, err := repo.FindLatest(ctx, tt.id, domain.FindOptions{})
			require.Error(t, err)
			assert.Equal(t, tt.notFound, errors.Is(err, domain.ErrPackageNotFound))
			assert.Equal(t, tt.parse, errors.Is(err, domain.ErrFeedParseFailed))

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, "nuget", zErr.Metadata()["source"])
		})
	}
}

func TestRepository_StatusCodeMetadata(t *testing.T) {
	srv := newServer(t, nil)
	repo := feed.NewRepository("nuget", srv.URL+"/v3", srv.Client())

	_, err := repo.FindPackagesByID(context.Background(), "Flaky")

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, http.StatusServiceUnavailable, zErr.Metadata()["status_code"])
	assert.True(t, errors.Is(err, domain.ErrFeedRequestFailed))
}

func TestRepository_Unreachable(t *testing.T) {
	srv := newServer(t, nil)
	url := srv.URL
	srv.Close()

	repo := feed.NewRepository("nuget", url, nil)
	_, err := repo.FindLatest(context.Background(), "Serilog", domain.FindOptions{})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrPackageNotFound))
	assert.True(t, errors.Is(err, domain.ErrFeedRequestFailed))
}

func TestRepository_TruncatedBody(t *testing.T) {
	srv := newServer(t, nil)
	repo := feed.NewRepository("nuget", srv.URL+"/v3", srv.Client())

	_, err := repo.FindPackagesByID(context.Background(), "Truncated")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFeedRequestFailed))
	assert.False(t, errors.Is(err, domain.ErrFeedParseFailed))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "Truncated", zErr.Metadata()["id"])
}

func TestRepository_CanceledContext(t *testing.T) {
	srv := newServer(t, nil)
	repo := feed.NewRepository("nuget", srv.URL+"/v3", srv.Client())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindLatest(ctx, "Serilog", domain.FindOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, domain.ErrFeedRequestFailed))
}
