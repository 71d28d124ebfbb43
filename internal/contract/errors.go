package contract

import (
	"errors"

	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/versioning"
)

// ErrorCode is the stable, client-facing classification of a failure.
type ErrorCode string

const (
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeConflict     ErrorCode = "CONFLICT"
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// ErrInvalidInput marks malformed requests, such as missing required fields.
var ErrInvalidInput = errors.New("invalid input")

var (
	notFoundErrors = []error{
		domain.ErrProjectNotFound,
		domain.ErrReleaseNotFound,
		domain.ErrIssueNotFound,
		domain.ErrOpinionNotFound,
	}
	invalidInputErrors = []error{
		ErrInvalidInput,
		versioning.ErrInvalidBumpKind,
		versioning.ErrInvalidVersionFormat,
	}
	conflictErrors = []error{
		versioning.ErrDuplicatedVersion,
		versioning.ErrImmutableInitialVersion,
		versioning.ErrInvalidVersionSequence,
		domain.ErrIssueNotDone,
		domain.ErrIssueAlreadyLinked,
		domain.ErrIssueCompleted,
		domain.ErrIssueNotLinked,
		domain.ErrProjectNameTaken,
	}
)

// CodeOf classifies err by the sentinel it wraps.
func CodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case matchesAny(err, notFoundErrors):
		return CodeNotFound
	case matchesAny(err, invalidInputErrors):
		return CodeInvalidInput
	case matchesAny(err, conflictErrors):
		return CodeConflict
	default:
		return CodeInternal
	}
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
