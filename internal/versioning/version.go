// Package versioning derives and validates the release version timeline of a
// project. Versions are plain MAJOR.MINOR.PATCH triples; prerelease and build
// metadata are not part of a release note's version. Ordering goes through
// Masterminds semver.
package versioning

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrInvalidVersionFormat indicates a version string is not MAJOR.MINOR.PATCH
	// with non-negative integer components.
	ErrInvalidVersionFormat = errors.New("invalid release version format")

	// ErrInvalidBumpKind indicates a bump kind other than MAJOR, MINOR, or PATCH.
	ErrInvalidBumpKind = errors.New("invalid release version bump kind")

	// ErrDuplicatedVersion indicates two active releases of one project would
	// share a version.
	ErrDuplicatedVersion = errors.New("duplicated release version")

	// ErrImmutableInitialVersion indicates an attempt to move the project's
	// oldest release away from 1.0.0.
	ErrImmutableInitialVersion = errors.New("initial release version cannot change")

	// ErrInvalidVersionSequence indicates the version timeline is not a legal
	// progression of single-step bumps.
	ErrInvalidVersionSequence = errors.New("invalid release version sequence")
)

// Version is a parsed release version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// Initial is the version of every project's first release.
var Initial = Version{Major: 1}

// Parse reads a MAJOR.MINOR.PATCH string. Each component is a non-empty run
// of decimal digits of any length up to uint64, so "1.4.10" and "12.0.0"
// parse as expected and "1.01.0" reads as 1.1.0. A zero major parses here;
// the timeline rules reject it.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%q: want three components: %w", s, ErrInvalidVersionFormat)
	}
	var nums [3]uint64
	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return Version{}, fmt.Errorf("%q: component %q is not a number: %w", s, part, ErrInvalidVersionFormat)
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%q: component %q out of range: %w", s, part, ErrInvalidVersionFormat)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseAll parses every string, stopping at the first malformed one.
func ParseAll(ss []string) ([]Version, error) {
	out := make([]Version, 0, len(ss))
	for _, s := range ss {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) semver() *semver.Version {
	return semver.New(v.Major, v.Minor, v.Patch, "", "")
}

// Compare returns -1, 0 or +1 ordering v against o numerically.
func (v Version) Compare(o Version) int {
	return v.semver().Compare(o.semver())
}

func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Sorted returns an ascending copy of vs.
func Sorted(vs []Version) []Version {
	out := append([]Version(nil), vs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Latest returns the greatest version, or nil if vs is empty.
func Latest(vs []Version) *Version {
	if len(vs) == 0 {
		return nil
	}
	max := vs[0]
	for _, v := range vs[1:] {
		if max.Less(v) {
			max = v
		}
	}
	return &max
}
