package resolution_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports/mocks"
	"go.trai.ch/pinset/internal/engine/resolution"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	logger  *mocks.MockLogger
	remote  *mocks.MockAggregateRepository
	local   *mocks.MockRepository
	locals  *mocks.MockRepository
	remotes *mocks.MockRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		logger:  mocks.NewMockLogger(ctrl),
		remote:  mocks.NewMockAggregateRepository(ctrl),
		local:   mocks.NewMockRepository(ctrl),
		locals:  mocks.NewMockRepository(ctrl),
		remotes: mocks.NewMockRepository(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.remote.EXPECT().LocalOnly().Return(f.locals).AnyTimes()
	f.remote.EXPECT().RemoteOnly().Return(f.remotes).AnyTimes()
	f.local.EXPECT().Name().Return("installed").AnyTimes()
	f.locals.EXPECT().Name().Return("local").AnyTimes()
	f.remotes.EXPECT().Name().Return("remote").AnyTimes()
	return f
}

func (f *fixture) manager(opts resolution.Options) *resolution.Manager {
	return resolution.NewManager(opts, resolution.NewCache(f.logger), f.logger)
}

func notFound(id string) error {
	return zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no match"), "id", id)
}

func TestManager_ResolveInstallableVersion_Pinned(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: false})

	// No repository expectations: any call fails the test.
	v, ok := m.ResolveInstallableVersion(context.Background(), f.remote, domain.Declaration{
		ID:      "X",
		Version: domain.MustParseVersion("1.0"),
	})

	require.True(t, ok)
	assert.Equal(t, "1.0.0", v.String())
}

func TestManager_ResolveInstallableVersion_PinnedWithoutVersion(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	m := f.manager(resolution.Options{})

	v, ok := m.ResolveInstallableVersion(context.Background(), f.remote, domain.Declaration{ID: "X"})

	assert.False(t, ok)
	assert.True(t, v.IsZero())
}

func TestManager_ResolveInstallableVersion_Latest(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: true})

	f.remote.EXPECT().
		FindLatest(gomock.Any(), "X", domain.FindOptions{}).
		Return(newPackage("X", "2.1"), nil).
		Times(1)

	v, ok := m.ResolveInstallableVersion(context.Background(), f.remote, domain.Declaration{
		ID:      "X",
		Version: domain.MustParseVersion("1.0"),
	})

	require.True(t, ok)
	assert.Equal(t, "2.1.0", v.String())
}

func TestManager_ResolveInstallableVersion_LatestNotFound(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: true})

	f.remote.EXPECT().FindLatest(gomock.Any(), "X", gomock.Any()).Return(nil, notFound("X"))
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	v, ok := m.ResolveInstallableVersion(context.Background(), f.remote, domain.Declaration{ID: "X"})

	assert.False(t, ok)
	assert.True(t, v.IsZero())
}

func TestManager_ResolveLatestInstallablePackage_Disabled(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: false})

	assert.Nil(t, m.ResolveLatestInstallablePackage(context.Background(), f.remote, domain.Declaration{ID: "X"}))
}

func TestManager_ResolveLatestInstallablePackage_CachedAfterFirstCall(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: true})
	decl := domain.Declaration{ID: "X"}

	f.remote.EXPECT().FindLatest(gomock.Any(), "X", gomock.Any()).Return(newPackage("X", "2.1"), nil).Times(1)

	first := m.ResolveLatestInstallablePackage(context.Background(), f.remote, decl)
	require.NotNil(t, first)
	assert.Equal(t, "2.1.0", first.Version.String())

	// The repository becomes unreachable; the cached answer is still returned.
	f.remote.EXPECT().FindLatest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(0)

	second := m.ResolveLatestInstallablePackage(context.Background(), f.remote, decl)
	require.NotNil(t, second)
	assert.Equal(t, "2.1.0", second.Version.String())
	assert.Same(t, first, second)
}

func TestManager_ResolveLatestInstallablePackage_Range(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: true})
	rng := newRange(t, "[1.0,2.0)")

	f.remote.EXPECT().
		FindLatestInRange(gomock.Any(), "X", rng, domain.FindOptions{}).
		Return(newPackage("X", "1.9"), nil).
		Times(1)

	for range 3 {
		got := m.ResolveLatestInstallablePackage(context.Background(), f.remote, domain.Declaration{ID: "X", Range: rng})
		require.NotNil(t, got)
		assert.Equal(t, "1.9.0", got.Version.String())
	}

	// A structurally equal range built separately hits the same entry.
	got := m.ResolveLatestInstallablePackage(context.Background(), f.remote, domain.Declaration{
		ID:    "x",
		Range: newRange(t, "[1.0.0,2.0.0)"),
	})
	require.NotNil(t, got)
	assert.Equal(t, "1.9.0", got.Version.String())
}

func TestManager_ResolveLatestInstallablePackage_RangeAndUnboundedAreSeparate(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: true})
	rng := newRange(t, "[1.0,2.0)")

	f.remote.EXPECT().FindLatestInRange(gomock.Any(), "X", rng, gomock.Any()).Return(newPackage("X", "1.9"), nil).Times(1)
	f.remote.EXPECT().FindLatest(gomock.Any(), "X", gomock.Any()).Return(newPackage("X", "3.0"), nil).Times(1)

	ranged := m.ResolveLatestInstallablePackage(context.Background(), f.remote, domain.Declaration{ID: "X", Range: rng})
	latest := m.ResolveLatestInstallablePackage(context.Background(), f.remote, domain.Declaration{ID: "X"})

	assert.Equal(t, "1.9.0", ranged.Version.String())
	assert.Equal(t, "3.0.0", latest.Version.String())
}

func TestManager_ResolveLatestInstallablePackage_Failures(t *testing.T) {
	tests := []struct {
		name string
		pkg  *domain.Package
		err  error
	}{
		{name: "not found", err: notFound("X")},
		{name: "nil result", pkg: nil, err: nil},
		{name: "source fault", err: errors.New("502 bad gateway")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			m := f.manager(resolution.Options{Latest: true})
			decl := domain.Declaration{ID: "X"}

			f.remote.EXPECT().FindLatest(gomock.Any(), "X", gomock.Any()).Return(tt.pkg, tt.err).Times(2)
			f.logger.EXPECT().Error(gomock.Any()).Times(2)

			// Failures are not cached, so the second call queries again.
			assert.Nil(t, m.ResolveLatestInstallablePackage(context.Background(), f.remote, decl))
			assert.Nil(t, m.ResolveLatestInstallablePackage(context.Background(), f.remote, decl))
		})
	}
}

func TestManager_ResolveLatestInstallablePackage_LogsFaultCause(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: true})
	fault := errors.New("dial tcp: timeout")

	f.remote.EXPECT().FindLatest(gomock.Any(), "X", gomock.Any()).Return(nil, fault)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, fault))
		assert.False(t, errors.Is(err, domain.ErrPackageNotFound))
	})

	assert.Nil(t, m.ResolveLatestInstallablePackage(context.Background(), f.remote, domain.Declaration{ID: "X"}))
}

func TestManager_ResolveLatestInstallablePackage_PrereleasePin(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{Latest: true, AllowUnlisted: true})

	f.remote.EXPECT().
		FindLatest(gomock.Any(), "X", domain.FindOptions{AllowPrerelease: true, AllowUnlisted: true}).
		Return(newPackage("X", "2.0-rc.2"), nil)

	got := m.ResolveLatestInstallablePackage(context.Background(), f.remote, domain.Declaration{
		ID:      "X",
		Version: domain.MustParseVersion("2.0-rc.1"),
	})
	require.NotNil(t, got)
	assert.Equal(t, "2.0.0-rc.2", got.Version.String())
}

func TestManager_ResolveAllVersions(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{})

	f.remote.EXPECT().FindPackagesByID(gomock.Any(), "X").Return([]*domain.Package{
		newPackage("X", "1.0"),
		newPackage("X", "2.0"),
	}, nil).Times(1)

	for range 2 {
		got := m.ResolveAllVersions(context.Background(), f.remote, "X")
		require.Len(t, got, 2)
		assert.Equal(t, "2.0.0", got[0].Version.String())
	}
}

func TestManager_ResolveAllVersions_Failures(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{})

	f.remote.EXPECT().FindPackagesByID(gomock.Any(), "X").Return(nil, notFound("X"))
	f.remote.EXPECT().FindPackagesByID(gomock.Any(), "Y").Return(nil, errors.New("boom"))
	f.remote.EXPECT().FindPackagesByID(gomock.Any(), "Z").Return(nil, nil)
	f.logger.EXPECT().Error(gomock.Any()).Times(3)

	assert.Nil(t, m.ResolveAllVersions(context.Background(), f.remote, "X"))
	assert.Nil(t, m.ResolveAllVersions(context.Background(), f.remote, "Y"))
	assert.Nil(t, m.ResolveAllVersions(context.Background(), f.remote, "Z"))
}

func TestManager_ResolvePackage(t *testing.T) {
	v := domain.MustParseVersion("1.2")
	exactOpts := domain.FindOptions{AllowUnlisted: true}

	t.Run("installed copy wins", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		installed := newPackage("X", "1.2")

		f.local.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(installed, nil)

		got, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", v, false)
		require.NoError(t, err)
		assert.Same(t, installed, got)
	})

	t.Run("cache before sources", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		cached := newPackage("X", "1.2")

		f.remote.EXPECT().FindPackagesByID(gomock.Any(), "X").Return([]*domain.Package{cached}, nil)
		m.ResolveAllVersions(context.Background(), f.remote, "X")

		f.local.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X"))

		got, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", v, false)
		require.NoError(t, err)
		assert.Same(t, cached, got)
	})

	t.Run("local half of the aggregate", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		onDisk := newPackage("X", "1.2")

		gomock.InOrder(
			f.local.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X")),
			f.locals.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(onDisk, nil),
		)

		got, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", v, false)
		require.NoError(t, err)
		assert.Same(t, onDisk, got)
	})

	t.Run("remote half last", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		downloaded := newPackage("X", "1.2")

		gomock.InOrder(
			f.local.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X")),
			f.locals.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X")),
			f.remotes.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(downloaded, nil),
		)

		got, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", v, false)
		require.NoError(t, err)
		assert.Same(t, downloaded, got)
	})

	t.Run("source hit is cached for repeated pins", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		downloaded := newPackage("X", "1.2")

		f.local.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X")).Times(2)
		f.locals.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X")).Times(1)
		f.remotes.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(downloaded, nil).Times(1)

		first, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", v, false)
		require.NoError(t, err)
		second, err := m.ResolvePackage(context.Background(), f.local, f.remote, "x", v, false)
		require.NoError(t, err)
		assert.Same(t, downloaded, first)
		assert.Same(t, downloaded, second)
	})

	t.Run("faulting sources are skipped", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		downloaded := newPackage("X", "1.2")

		f.local.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, errors.New("corrupt store"))
		f.locals.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, errors.New("permission denied"))
		f.remotes.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(downloaded, nil)
		f.logger.EXPECT().Error(gomock.Any()).Times(2)

		got, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", v, false)
		require.NoError(t, err)
		assert.Same(t, downloaded, got)
	})

	t.Run("unknown version is a typed error", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})

		f.local.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X"))
		f.locals.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X"))
		f.remotes.EXPECT().FindPackage(gomock.Any(), "X", v, exactOpts).Return(nil, notFound("X"))

		got, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", v, false)
		assert.Nil(t, got)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownPackageVersion))

		var notFoundErr *domain.PackageNotFoundError
		require.True(t, errors.As(err, &notFoundErr))
		assert.Equal(t, "X", notFoundErr.ID)
		assert.True(t, notFoundErr.Version.Equal(v))
	})

	t.Run("unknown identifier without version", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})

		// Without a version the installed store is not consulted.
		f.locals.EXPECT().FindLatest(gomock.Any(), "X", exactOpts).Return(nil, notFound("X"))
		f.remotes.EXPECT().FindLatest(gomock.Any(), "X", exactOpts).Return(nil, notFound("X"))

		_, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", domain.Version{}, false)
		assert.True(t, errors.Is(err, domain.ErrUnknownPackage))
	})

	t.Run("prerelease allowed for prerelease pin", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		pre := domain.MustParseVersion("2.0-beta")
		opts := domain.FindOptions{AllowPrerelease: true, AllowUnlisted: true}

		f.local.EXPECT().FindPackage(gomock.Any(), "X", pre, opts).Return(newPackage("X", "2.0-beta"), nil)

		got, err := m.ResolvePackage(context.Background(), f.local, f.remote, "X", pre, false)
		require.NoError(t, err)
		assert.True(t, got.Version.IsPrerelease())
	})
}

func TestManager_FindPackageInAllLocalSources(t *testing.T) {
	v := domain.MustParseVersion("1.0")
	opts := domain.FindOptions{AllowPrerelease: true}

	t.Run("local store first", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		p := newPackage("X", "1.0")

		f.local.EXPECT().FindPackage(gomock.Any(), "X", v, opts).Return(p, nil)

		assert.Same(t, p, m.FindPackageInAllLocalSources(context.Background(), f.local, f.remote, "X", v, true, false))
	})

	t.Run("falls back to local half without touching remotes", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})
		p := newPackage("X", "1.0")

		f.local.EXPECT().FindPackage(gomock.Any(), "X", v, opts).Return(nil, notFound("X"))
		f.locals.EXPECT().FindPackage(gomock.Any(), "X", v, opts).Return(p, nil)

		assert.Same(t, p, m.FindPackageInAllLocalSources(context.Background(), f.local, f.remote, "X", v, true, false))
	})

	t.Run("nothing found", func(t *testing.T) {
		f := newFixture(t)
		m := f.manager(resolution.Options{})

		f.locals.EXPECT().FindPackage(gomock.Any(), "X", v, opts).Return(nil, notFound("X"))

		assert.Nil(t, m.FindPackageInAllLocalSources(context.Background(), nil, f.remote, "X", v, true, false))
		assert.Nil(t, m.FindPackageInAllLocalSources(context.Background(), nil, nil, "X", v, true, false))
	})
}

func TestManager_FindPackageInRemoteSources(t *testing.T) {
	f := newFixture(t)
	m := f.manager(resolution.Options{AllowPrerelease: true})
	v := domain.MustParseVersion("1.0")
	p := newPackage("X", "1.0")

	f.remotes.EXPECT().
		FindPackage(gomock.Any(), "X", v, domain.FindOptions{AllowPrerelease: true, AllowUnlisted: true}).
		Return(p, nil)

	assert.Same(t, p, m.FindPackageInRemoteSources(context.Background(), f.remote, "X", v))
}
