package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input      string
		want       string
		prerelease bool
	}{
		{input: "1", want: "1.0.0"},
		{input: "1.2", want: "1.2.0"},
		{input: "1.2.3", want: "1.2.3"},
		{input: "1.2.3.4", want: "1.2.3.4"},
		{input: "1.2.3.0", want: "1.2.3"},
		{input: "v2.0", want: "2.0.0"},
		{input: " 3.1 ", want: "3.1.0"},
		{input: "1.0-beta", want: "1.0.0-beta", prerelease: true},
		{input: "1.0.0-rc.1+build.5", want: "1.0.0-rc.1+build.5", prerelease: true},
		{input: "1.0.0+build.5", want: "1.0.0+build.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := domain.ParseVersion(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
			assert.Equal(t, tt.prerelease, v.IsPrerelease())
			assert.False(t, v.IsZero())
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3.4.5", "1..2", "-1.0", "1.0-"} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseVersion(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidVersion))

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, input, zErr.Metadata()["version"])
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "1.0", b: "1.0.0", want: 0},
		{a: "1.0.0", b: "1.0.1", want: -1},
		{a: "1.10.0", b: "1.9.0", want: 1},
		{a: "2.0.0", b: "10.0.0", want: -1},
		{a: "1.2.3.4", b: "1.2.3", want: 1},
		{a: "1.2.3.4", b: "1.2.3.10", want: -1},
		{a: "1.2.3.4", b: "1.2.4", want: -1},
		{a: "1.0.0-beta", b: "1.0.0", want: -1},
		{a: "1.0.0-alpha", b: "1.0.0-beta", want: -1},
		{a: "1.0.0+a", b: "1.0.0+b", want: 0},
		{a: "1.0.0.1-beta", b: "1.0.0", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a := domain.MustParseVersion(tt.a)
			b := domain.MustParseVersion(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
			assert.Equal(t, tt.want == 0, a.Equal(b))
			if tt.want == 0 {
				assert.Equal(t, a.Hash(), b.Hash())
			}
		})
	}
}

func TestVersion_Zero(t *testing.T) {
	var zero domain.Version

	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPrerelease())
	assert.Empty(t, zero.String())
	assert.Equal(t, uint64(0), zero.Hash())
	assert.Equal(t, 0, zero.Compare(domain.Version{}))
	assert.Equal(t, -1, zero.Compare(domain.MustParseVersion("0.0.0")))
	assert.Equal(t, 1, domain.MustParseVersion("0.0.0").Compare(zero))
}

func TestVersion_Text(t *testing.T) {
	var v domain.Version
	require.NoError(t, v.UnmarshalText([]byte("4.5.6.7")))
	assert.Equal(t, "4.5.6.7", v.String())

	text, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "4.5.6.7", string(text))

	require.NoError(t, v.UnmarshalText(nil))
	assert.True(t, v.IsZero())

	err = v.UnmarshalText([]byte("not-a-version"))
	assert.True(t, errors.Is(err, domain.ErrInvalidVersion))
}

func TestMustParseVersion_Panics(t *testing.T) {
	assert.Panics(t, func() { domain.MustParseVersion("x") })
}
