package versioning

import (
	"fmt"
	"math"
	"strings"
)

type BumpKind string

const (
	BumpMajor BumpKind = "MAJOR"
	BumpMinor BumpKind = "MINOR"
	BumpPatch BumpKind = "PATCH"
)

// ParseBumpKind matches MAJOR, MINOR or PATCH case-insensitively.
func ParseBumpKind(s string) (BumpKind, error) {
	switch k := BumpKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case BumpMajor, BumpMinor, BumpPatch:
		return k, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidBumpKind)
	}
}

// Next returns the version that follows latest under the given bump. A
// project without releases always starts at 1.0.0, whatever the bump.
func Next(latest *Version, kind BumpKind) (Version, error) {
	if latest == nil {
		return Initial, nil
	}
	v := *latest
	switch kind {
	case BumpMajor:
		if v.Major == math.MaxUint64 {
			return Version{}, fmt.Errorf("major component of %s overflows: %w", v, ErrInvalidVersionFormat)
		}
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		if v.Minor == math.MaxUint64 {
			return Version{}, fmt.Errorf("minor component of %s overflows: %w", v, ErrInvalidVersionFormat)
		}
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		if v.Patch == math.MaxUint64 {
			return Version{}, fmt.Errorf("patch component of %s overflows: %w", v, ErrInvalidVersionFormat)
		}
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("%q: %w", kind, ErrInvalidBumpKind)
	}
}

// NextString parses latest (empty means no prior release) and bumps it.
func NextString(latest string, kind string) (string, error) {
	k, err := ParseBumpKind(kind)
	if err != nil {
		return "", err
	}
	var prev *Version
	if latest != "" {
		v, err := Parse(latest)
		if err != nil {
			return "", err
		}
		prev = &v
	}
	next, err := Next(prev, k)
	if err != nil {
		return "", err
	}
	return next.String(), nil
}
