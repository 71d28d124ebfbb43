package contract

import (
	"time"

	"github.com/alexanderramin/releaser/internal/domain"
)

type CreateReleaseRequest struct {
	ProjectID  string
	Title      string
	Content    string
	Summary    string
	BumpKind   string
	DeployDate *time.Time
	IssueIDs   []string
	// Actor is the email of the member making the change. When set, the
	// notification is also sent to the actor's user channel.
	Actor string
}

// UpdateReleaseRequest is a partial edit of a release note. Nil fields keep
// their current value. IssueIDs, when set, is the full new issue set and
// issues missing from it are unlinked. ClearDeployDate removes the deploy
// date and wins over DeployDate.
type UpdateReleaseRequest struct {
	Title           *string
	Content         *string
	Summary         *string
	Version         *string
	DeployDate      *time.Time
	ClearDeployDate bool
	IssueIDs        *[]string
	Actor           string
}

// ReleaseDetail is a release note with its linked issues and opinions.
type ReleaseDetail struct {
	Release  *domain.ReleaseNote
	Issues   []*domain.Issue
	Opinions []*domain.ReleaseOpinion
}

type CreateIssueRequest struct {
	ProjectID string
	Title     string
	Content   string
}

type AddOpinionRequest struct {
	ReleaseID string
	Author    string
	Content   string
}
