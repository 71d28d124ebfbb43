package versioning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_NoPriorVersionIsAlwaysInitial(t *testing.T) {
	for _, k := range []BumpKind{BumpMajor, BumpMinor, BumpPatch} {
		got, err := Next(nil, k)
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", got.String(), "bump %s", k)
	}
}

func TestNext_FromLatest(t *testing.T) {
	latest := MustParse("1.4.9")
	cases := map[BumpKind]string{
		BumpMajor: "2.0.0",
		BumpMinor: "1.5.0",
		BumpPatch: "1.4.10",
	}
	for k, want := range cases {
		got, err := Next(&latest, k)
		require.NoError(t, err)
		assert.Equal(t, want, got.String(), "bump %s", k)
	}
}

func TestNext_InvalidKind(t *testing.T) {
	latest := MustParse("1.0.0")
	_, err := Next(&latest, BumpKind("HUGE"))
	assert.ErrorIs(t, err, ErrInvalidBumpKind)
}

func TestNext_Overflow(t *testing.T) {
	latest := Version{Major: 1, Minor: 0, Patch: math.MaxUint64}
	_, err := Next(&latest, BumpPatch)
	assert.ErrorIs(t, err, ErrInvalidVersionFormat)
}

func TestParseBumpKind(t *testing.T) {
	for in, want := range map[string]BumpKind{
		"major": BumpMajor, "Minor": BumpMinor, "PATCH": BumpPatch, " patch ": BumpPatch,
	} {
		got, err := ParseBumpKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "prerelease", "majorr"} {
		_, err := ParseBumpKind(in)
		assert.ErrorIs(t, err, ErrInvalidBumpKind, in)
	}
}

func TestNextString(t *testing.T) {
	got, err := NextString("", "minor")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got)

	got, err = NextString("3.9.9", "minor")
	require.NoError(t, err)
	assert.Equal(t, "3.10.0", got)

	_, err = NextString("3.9", "patch")
	assert.ErrorIs(t, err, ErrInvalidVersionFormat)

	_, err = NextString("", "sideways")
	assert.ErrorIs(t, err, ErrInvalidBumpKind, "bump kind is checked even without a prior version")
}
