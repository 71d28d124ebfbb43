package domain

import (
	"fmt"
	"strings"
	"time"
)

// InitialVersion is the version every project's first release note carries.
const InitialVersion = "1.0.0"

type ReleaseNote struct {
	ID        string
	ProjectID string
	// Seq is the release's position in the project timeline, allocated from
	// the project sequence at creation and never reused.
	Seq          int
	Title        string
	Content      string
	Summary      string
	Version      string
	DeployDate   *time.Time
	DeployStatus DeployStatus
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the user-editable fields.
func (r *ReleaseNote) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("release title is required")
	}
	if strings.TrimSpace(r.Content) == "" {
		return fmt.Errorf("release content is required")
	}
	return nil
}

// IsInitial reports whether the release holds the project's baseline version.
func (r *ReleaseNote) IsInitial() bool {
	return r.Version == InitialVersion
}

// ApplyEdit overwrites the editable fields. Version is assumed validated.
func (r *ReleaseNote) ApplyEdit(title, content, summary, version string, deployDate *time.Time, now time.Time) {
	r.Title = title
	r.Content = content
	r.Summary = summary
	r.Version = version
	r.DeployDate = deployDate
	r.UpdatedAt = now
}

func (r *ReleaseNote) DisplayID() string {
	return shortID(r.ID)
}

// TimelineEntry is one active release's slot in a project's version timeline.
type TimelineEntry struct {
	ReleaseID string
	Seq       int
	Version   string
}
