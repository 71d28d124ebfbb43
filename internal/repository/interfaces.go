package repository

import (
	"context"

	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/versioning"
)

// SequenceKind selects which per-project counter to advance.
type SequenceKind string

const (
	SeqRelease SequenceKind = "release"
	SeqIssue   SequenceKind = "issue"
)

// GetByID methods return only active rows; a soft-deleted row is reported
// with the matching domain not-found error.

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Deactivate(ctx context.Context, id string) error
}

type ReleaseRepo interface {
	Create(ctx context.Context, r *domain.ReleaseNote) error
	GetByID(ctx context.Context, id string) (*domain.ReleaseNote, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ReleaseNote, error)
	Timeline(ctx context.Context, projectID string) ([]domain.TimelineEntry, error)
	LatestVersion(ctx context.Context, projectID string) (*versioning.Version, error)
	ExistsVersion(ctx context.Context, projectID, excludeReleaseID, version string) (bool, error)
	Update(ctx context.Context, r *domain.ReleaseNote) error
	Deactivate(ctx context.Context, id string) error
	DeactivateBatch(ctx context.Context, ids []string) error
}

type IssueRepo interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id string) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error)
	ListLinkable(ctx context.Context, projectID string) ([]*domain.Issue, error)
	ListByRelease(ctx context.Context, releaseID string) ([]*domain.Issue, error)
	ListIDsByRelease(ctx context.Context, releaseID string) ([]string, error)
	// Update writes title, content and lifecycle. The release link is only
	// changed through LinkToRelease and UnlinkRelease.
	Update(ctx context.Context, i *domain.Issue) error
	LinkToRelease(ctx context.Context, issueIDs []string, releaseID string) error
	// UnlinkRelease clears the link on every non-completed issue of the release.
	UnlinkRelease(ctx context.Context, releaseID string) (int64, error)
	DeactivateBatch(ctx context.Context, ids []string) error
}

type OpinionRepo interface {
	Create(ctx context.Context, o *domain.ReleaseOpinion) error
	GetByID(ctx context.Context, id string) (*domain.ReleaseOpinion, error)
	ListByRelease(ctx context.Context, releaseID string) ([]*domain.ReleaseOpinion, error)
	ListIDsByRelease(ctx context.Context, releaseID string) ([]string, error)
	DeactivateBatch(ctx context.Context, ids []string) error
}

type SequenceRepo interface {
	NextProjectSeq(ctx context.Context, projectID string, kind SequenceKind) (int, error)
}
