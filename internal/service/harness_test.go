package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/releaser/internal/db"
	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/notify"
	"github.com/alexanderramin/releaser/internal/repository"
	"github.com/alexanderramin/releaser/internal/testutil"
	"github.com/stretchr/testify/require"
)

type releaseHarness struct {
	db       *sql.DB
	projects *repository.SQLiteProjectRepo
	releases *repository.SQLiteReleaseRepo
	issues   *repository.SQLiteIssueRepo
	opinions *repository.SQLiteOpinionRepo
	recorder *testutil.RecordingPublisher
	observer *RecordingObserver
	svc      ReleaseService
	project  *domain.Project
}

// newReleaseHarness wires a release service over database. A nil uow uses the
// real SQLite unit of work.
func newReleaseHarness(t *testing.T, database *sql.DB, uow db.UnitOfWork) *releaseHarness {
	t.Helper()
	if uow == nil {
		uow = testutil.NewTestUoW(database)
	}
	h := &releaseHarness{
		db:       database,
		projects: repository.NewSQLiteProjectRepo(database),
		releases: repository.NewSQLiteReleaseRepo(database),
		issues:   repository.NewSQLiteIssueRepo(database),
		opinions: repository.NewSQLiteOpinionRepo(database),
		recorder: &testutil.RecordingPublisher{},
		observer: &RecordingObserver{},
	}
	h.svc = NewReleaseService(h.projects, h.releases, h.issues, h.opinions, uow,
		notify.NewNotifier(h.recorder, nil), h.observer)

	h.project = testutil.NewTestProject("Releaser")
	require.NoError(t, h.projects.Create(context.Background(), h.project))
	return h
}

func (h *releaseHarness) issue(t *testing.T, title string, opts ...testutil.IssueOption) *domain.Issue {
	t.Helper()
	issue := testutil.NewTestIssue(h.project.ID, title, opts...)
	require.NoError(t, h.issues.Create(context.Background(), issue))
	return issue
}

func (h *releaseHarness) doneIssue(t *testing.T, title string) *domain.Issue {
	t.Helper()
	return h.issue(t, title, testutil.WithLifeCycle(domain.LifeCycleDone))
}

func (h *releaseHarness) reload(t *testing.T, issueID string) *domain.Issue {
	t.Helper()
	issue, err := h.issues.GetByID(context.Background(), issueID)
	require.NoError(t, err)
	return issue
}

// RecordingObserver keeps every event it receives.
type RecordingObserver struct {
	mu     sync.Mutex
	Events []UseCaseEvent
}

func (r *RecordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}
