package versioning

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bumpKinds = []BumpKind{BumpMajor, BumpMinor, BumpPatch}

// TestTimeline_GeneratedHistoriesAreLegal property-tests that any history
// built purely from Next is accepted by ValidateTimeline.
func TestTimeline_GeneratedHistoriesAreLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(25) + 1
		var timeline []Version
		for i := 0; i < n; i++ {
			next, err := Next(Latest(timeline), bumpKinds[rng.Intn(len(bumpKinds))])
			require.NoError(t, err)
			timeline = append(timeline, next)
		}
		assert.NoError(t, ValidateTimeline(timeline), "trial %d: %v", trial, timeline)
	}
}

// TestTimeline_SwappedNeighboursRejected property-tests that exchanging two
// releases' positions in a legal history of distinct versions is rejected.
func TestTimeline_SwappedNeighboursRejected(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(20) + 3
		var timeline []Version
		for i := 0; i < n; i++ {
			next, err := Next(Latest(timeline), bumpKinds[rng.Intn(len(bumpKinds))])
			require.NoError(t, err)
			timeline = append(timeline, next)
		}

		i := rng.Intn(n-2) + 1
		timeline[i], timeline[i+1] = timeline[i+1], timeline[i]
		assert.ErrorIs(t, ValidateTimeline(timeline), ErrInvalidVersionSequence, "trial %d: %v", trial, timeline)
	}
}

// TestTimeline_JumpsRejected property-tests that bumping any component by
// more than one on a legal history is rejected.
func TestTimeline_JumpsRejected(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(10) + 1
		var timeline []Version
		for i := 0; i < n; i++ {
			next, err := Next(Latest(timeline), bumpKinds[rng.Intn(len(bumpKinds))])
			require.NoError(t, err)
			timeline = append(timeline, next)
		}

		last := timeline[len(timeline)-1]
		jump := uint64(rng.Intn(5) + 2)
		var bad Version
		switch rng.Intn(3) {
		case 0:
			bad = Version{Major: last.Major + jump}
		case 1:
			bad = Version{Major: last.Major, Minor: last.Minor + jump}
		default:
			bad = Version{Major: last.Major, Minor: last.Minor, Patch: last.Patch + jump}
		}
		timeline = append(timeline, bad)
		assert.ErrorIs(t, ValidateTimeline(timeline), ErrInvalidVersionSequence, "trial %d: %v", trial, timeline)
	}
}
