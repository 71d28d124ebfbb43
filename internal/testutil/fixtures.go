package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/google/uuid"
)

var testSeqCounter atomic.Int64

func nextTestSeq() int {
	return int(testSeqCounter.Add(1))
}

// Project options
type ProjectOption func(*domain.Project)

func WithDescription(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Description = d
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Issue options
type IssueOption func(*domain.Issue)

func WithLifeCycle(lc domain.LifeCycle) IssueOption {
	return func(i *domain.Issue) {
		i.LifeCycle = lc
	}
}

func WithReleaseID(id string) IssueOption {
	return func(i *domain.Issue) {
		i.ReleaseID = &id
	}
}

func NewTestIssue(projectID, title string, opts ...IssueOption) *domain.Issue {
	now := time.Now().UTC()
	i := &domain.Issue{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Seq:       nextTestSeq(),
		Title:     title,
		LifeCycle: domain.LifeCycleBacklog,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Release options
type ReleaseOption func(*domain.ReleaseNote)

func WithReleaseSeq(seq int) ReleaseOption {
	return func(r *domain.ReleaseNote) {
		r.Seq = seq
	}
}

func WithDeployDate(d time.Time) ReleaseOption {
	return func(r *domain.ReleaseNote) {
		r.DeployDate = &d
	}
}

func WithDeployStatus(s domain.DeployStatus) ReleaseOption {
	return func(r *domain.ReleaseNote) {
		r.DeployStatus = s
	}
}

func WithSummary(s string) ReleaseOption {
	return func(r *domain.ReleaseNote) {
		r.Summary = s
	}
}

func NewTestRelease(projectID, version string, opts ...ReleaseOption) *domain.ReleaseNote {
	now := time.Now().UTC()
	r := &domain.ReleaseNote{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		Seq:          nextTestSeq(),
		Title:        fmt.Sprintf("Release %s", version),
		Content:      "Notes for " + version,
		Version:      version,
		DeployStatus: domain.DeployPlanning,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewTestOpinion(releaseID, content string) *domain.ReleaseOpinion {
	return &domain.ReleaseOpinion{
		ID:        uuid.New().String(),
		ReleaseID: releaseID,
		Author:    "tester",
		Content:   content,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
}
