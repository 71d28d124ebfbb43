package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/repository"
)

// issueLinker owns the issue to release-note link. It runs against the
// caller's tx-scoped repository so a failed check leaves no writes behind.
type issueLinker struct {
	issues repository.IssueRepo
}

func newIssueLinker(issues repository.IssueRepo) *issueLinker {
	return &issueLinker{issues: issues}
}

// Disconnect unlinks every issue of the release except completed ones,
// leaving lifecycles untouched.
func (l *issueLinker) Disconnect(ctx context.Context, releaseID string) (int64, error) {
	n, err := l.issues.UnlinkRelease(ctx, releaseID)
	if err != nil {
		return 0, fmt.Errorf("disconnecting issues: %w", err)
	}
	return n, nil
}

// Connect links the given issues to release. Every issue is checked before
// any link is written.
func (l *issueLinker) Connect(ctx context.Context, release *domain.ReleaseNote, issueIDs []string) error {
	ids := dedupe(issueIDs)
	toLink := make([]string, 0, len(ids))

	for _, id := range ids {
		issue, err := l.issues.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("connecting issue: %w", err)
		}
		if issue.ProjectID != release.ProjectID {
			return fmt.Errorf("issue %s belongs to another project: %w", id, domain.ErrIssueNotFound)
		}
		if issue.LifeCycle == domain.LifeCycleCompleted && issue.LinkedTo(release.ID) {
			continue
		}
		if err := issue.CheckLinkable(); err != nil {
			return fmt.Errorf("connecting issue: %w", err)
		}
		toLink = append(toLink, id)
	}

	if err := l.issues.LinkToRelease(ctx, toLink, release.ID); err != nil {
		return fmt.Errorf("connecting issues: %w", err)
	}
	return nil
}
