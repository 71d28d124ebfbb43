package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	repo := NewSQLiteIssueRepo(db)

	issue := testutil.NewTestIssue(proj.ID, "Fix login", testutil.WithLifeCycle(domain.LifeCycleTodo))
	require.NoError(t, repo.Create(ctx, issue))

	fetched, err := repo.GetByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fix login", fetched.Title)
	assert.Equal(t, domain.LifeCycleTodo, fetched.LifeCycle)
	assert.Nil(t, fetched.ReleaseID)
}

func TestIssueRepo_ListLinkable(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	relRepo := NewSQLiteReleaseRepo(db)
	repo := NewSQLiteIssueRepo(db)

	rel := testutil.NewTestRelease(proj.ID, "1.0.0")
	require.NoError(t, relRepo.Create(ctx, rel))

	done := testutil.NewTestIssue(proj.ID, "done", testutil.WithLifeCycle(domain.LifeCycleDone))
	linked := testutil.NewTestIssue(proj.ID, "linked",
		testutil.WithLifeCycle(domain.LifeCycleDone), testutil.WithReleaseID(rel.ID))
	todo := testutil.NewTestIssue(proj.ID, "todo", testutil.WithLifeCycle(domain.LifeCycleTodo))
	for _, i := range []*domain.Issue{done, linked, todo} {
		require.NoError(t, repo.Create(ctx, i))
	}

	linkable, err := repo.ListLinkable(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, linkable, 1)
	assert.Equal(t, done.ID, linkable[0].ID)

	all, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestIssueRepo_LinkAndUnlink(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	relRepo := NewSQLiteReleaseRepo(db)
	repo := NewSQLiteIssueRepo(db)

	rel := testutil.NewTestRelease(proj.ID, "1.0.0")
	require.NoError(t, relRepo.Create(ctx, rel))

	a := testutil.NewTestIssue(proj.ID, "a", testutil.WithLifeCycle(domain.LifeCycleDone))
	b := testutil.NewTestIssue(proj.ID, "b", testutil.WithLifeCycle(domain.LifeCycleDone))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.LinkToRelease(ctx, []string{a.ID, b.ID}, rel.ID))

	ids, err := repo.ListIDsByRelease(ctx, rel.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)

	// A completed issue keeps its link.
	b.LifeCycle = domain.LifeCycleCompleted
	require.NoError(t, repo.Update(ctx, b))

	n, err := repo.UnlinkRelease(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	fetchedA, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, fetchedA.ReleaseID)

	fetchedB, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, fetchedB.ReleaseID)
	assert.Equal(t, rel.ID, *fetchedB.ReleaseID)
}

func TestIssueRepo_LinkToRelease_MissingIssue(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	relRepo := NewSQLiteReleaseRepo(db)
	repo := NewSQLiteIssueRepo(db)

	rel := testutil.NewTestRelease(proj.ID, "1.0.0")
	require.NoError(t, relRepo.Create(ctx, rel))

	err := repo.LinkToRelease(ctx, []string{"ghost"}, rel.ID)
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)
}

func TestIssueRepo_DeactivateBatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	repo := NewSQLiteIssueRepo(db)

	a := testutil.NewTestIssue(proj.ID, "a")
	b := testutil.NewTestIssue(proj.ID, "b")
	c := testutil.NewTestIssue(proj.ID, "c")
	for _, i := range []*domain.Issue{a, b, c} {
		require.NoError(t, repo.Create(ctx, i))
	}

	require.NoError(t, repo.DeactivateBatch(ctx, nil))
	require.NoError(t, repo.DeactivateBatch(ctx, []string{a.ID, b.ID}))

	_, err := repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)
	remaining, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, c.ID, remaining[0].ID)
}
