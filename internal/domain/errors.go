package domain

import "errors"

var (
	// ErrProjectNotFound indicates no active project has the requested ID.
	ErrProjectNotFound = errors.New("project not found")

	// ErrReleaseNotFound indicates no active release note has the requested ID.
	ErrReleaseNotFound = errors.New("release note not found")

	// ErrIssueNotFound indicates no active issue has the requested ID.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrOpinionNotFound indicates no active release opinion has the requested ID.
	ErrOpinionNotFound = errors.New("release opinion not found")

	// ErrIssueNotDone indicates an issue outside the done lifecycle was
	// offered for linking to a release note.
	ErrIssueNotDone = errors.New("issue is not done")

	// ErrIssueAlreadyLinked indicates the issue already belongs to a release note.
	ErrIssueAlreadyLinked = errors.New("issue is already linked to a release note")

	// ErrIssueCompleted indicates the issue shipped in a release and its
	// lifecycle can no longer change.
	ErrIssueCompleted = errors.New("issue is completed")

	// ErrIssueNotLinked indicates an operation that requires a release link
	// was attempted on an unlinked issue.
	ErrIssueNotLinked = errors.New("issue is not linked to a release note")

	// ErrProjectNameTaken indicates another active project already uses the
	// name. Names are compared case-insensitively.
	ErrProjectNameTaken = errors.New("project name already in use")
)
