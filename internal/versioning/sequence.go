package versioning

import "fmt"

// SequenceError names the consecutive pair that breaks the timeline.
type SequenceError struct {
	Prev   Version
	Next   Version
	Reason string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", ErrInvalidVersionSequence, e.Prev, e.Next, e.Reason)
}

func (e *SequenceError) Unwrap() error {
	return ErrInvalidVersionSequence
}

// ValidateTimeline checks a project's versions in release order, oldest
// release first. The oldest release must hold 1.0.0, versions are unique,
// later releases never carry lower versions, and each step up the sorted
// timeline is a single bump:
//
//	major +1  -> minor and patch reset to 0
//	minor +1  -> patch resets to 0
//	patch +1
//
// A major bump does not require the previous major's line to be exhausted.
func ValidateTimeline(timeline []Version) error {
	if len(timeline) == 0 {
		return nil
	}

	seen := make(map[Version]bool, len(timeline))
	for _, v := range timeline {
		if seen[v] {
			return fmt.Errorf("%s: %w", v, ErrDuplicatedVersion)
		}
		seen[v] = true
	}

	if timeline[0] != Initial {
		return fmt.Errorf("oldest release holds %s, want %s: %w", timeline[0], Initial, ErrImmutableInitialVersion)
	}

	for i := 1; i < len(timeline); i++ {
		if timeline[i].Less(timeline[i-1]) {
			return &SequenceError{Prev: timeline[i-1], Next: timeline[i], Reason: "released after a higher version"}
		}
	}

	sorted := Sorted(timeline)

	for i := 0; i+1 < len(sorted); i++ {
		if reason := stepViolation(sorted[i], sorted[i+1]); reason != "" {
			return &SequenceError{Prev: sorted[i], Next: sorted[i+1], Reason: reason}
		}
	}
	return nil
}

// stepViolation returns why next cannot directly follow prev, or "" when it can.
// The caller guarantees prev < next, so the deltas below never underflow.
func stepViolation(prev, next Version) string {
	switch dMajor := next.Major - prev.Major; {
	case dMajor > 1:
		return "major jumps by more than one"
	case dMajor == 1:
		if next.Minor != 0 || next.Patch != 0 {
			return "new major must reset minor and patch"
		}
		return ""
	}

	switch dMinor := next.Minor - prev.Minor; {
	case dMinor > 1:
		return "minor jumps by more than one"
	case dMinor == 1:
		if next.Patch != 0 {
			return "new minor must reset patch"
		}
		return ""
	}

	if next.Patch-prev.Patch > 1 {
		return "patch jumps by more than one"
	}
	return ""
}

// ValidateTimelineStrings parses and validates a release-ordered timeline.
func ValidateTimelineStrings(timeline []string) error {
	vs, err := ParseAll(timeline)
	if err != nil {
		return err
	}
	return ValidateTimeline(vs)
}
