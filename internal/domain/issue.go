package domain

import (
	"fmt"
	"strings"
	"time"
)

type Issue struct {
	ID        string
	ProjectID string
	Seq       int
	Title     string
	Content   string
	LifeCycle LifeCycle
	// ReleaseID links the issue to the release note that ships it. Only the
	// repository's LinkToRelease and UnlinkRelease change it.
	ReleaseID *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the user-editable fields.
func (i *Issue) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("issue title is required")
	}
	if !ValidLifeCycles[i.LifeCycle] {
		return fmt.Errorf("unknown issue lifecycle %q", i.LifeCycle)
	}
	return nil
}

// IsLinked reports whether the issue currently belongs to a release note.
func (i *Issue) IsLinked() bool {
	return i.ReleaseID != nil
}

// LinkedTo reports whether the issue belongs to the given release note.
func (i *Issue) LinkedTo(releaseID string) bool {
	return i.ReleaseID != nil && *i.ReleaseID == releaseID
}

// CheckLinkable returns nil when the issue may be attached to a release note.
func (i *Issue) CheckLinkable() error {
	if i.LifeCycle != LifeCycleDone {
		return fmt.Errorf("issue #%d is %s: %w", i.Seq, i.LifeCycle, ErrIssueNotDone)
	}
	if i.IsLinked() {
		return fmt.Errorf("issue #%d: %w", i.Seq, ErrIssueAlreadyLinked)
	}
	return nil
}

// ChangeLifeCycle applies a lifecycle transition. Completed is terminal, a
// linked issue may only move on to completed, and completed requires a link.
func (i *Issue) ChangeLifeCycle(next LifeCycle, now time.Time) error {
	if !ValidLifeCycles[next] {
		return fmt.Errorf("unknown issue lifecycle %q", next)
	}
	if i.LifeCycle == LifeCycleCompleted {
		return fmt.Errorf("issue #%d: %w", i.Seq, ErrIssueCompleted)
	}
	if next == LifeCycleCompleted && !i.IsLinked() {
		return fmt.Errorf("issue #%d cannot complete: %w", i.Seq, ErrIssueNotLinked)
	}
	if i.IsLinked() && next != LifeCycleCompleted && next != i.LifeCycle {
		return fmt.Errorf("issue #%d cannot move to %s: %w", i.Seq, next, ErrIssueAlreadyLinked)
	}
	i.LifeCycle = next
	i.UpdatedAt = now
	return nil
}

func (i *Issue) DisplayID() string {
	return shortID(i.ID)
}
