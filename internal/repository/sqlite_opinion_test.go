package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpinionRepo_CreateListDeactivate(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	relRepo := NewSQLiteReleaseRepo(db)
	repo := NewSQLiteOpinionRepo(db)

	rel := testutil.NewTestRelease(proj.ID, "1.0.0")
	require.NoError(t, relRepo.Create(ctx, rel))

	o1 := testutil.NewTestOpinion(rel.ID, "ship it")
	o2 := testutil.NewTestOpinion(rel.ID, "needs a changelog")
	require.NoError(t, repo.Create(ctx, o1))
	require.NoError(t, repo.Create(ctx, o2))

	fetched, err := repo.GetByID(ctx, o1.ID)
	require.NoError(t, err)
	assert.Equal(t, "ship it", fetched.Content)
	assert.Equal(t, "tester", fetched.Author)

	ids, err := repo.ListIDsByRelease(ctx, rel.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{o1.ID, o2.ID}, ids)

	require.NoError(t, repo.DeactivateBatch(ctx, []string{o1.ID}))
	_, err = repo.GetByID(ctx, o1.ID)
	assert.ErrorIs(t, err, domain.ErrOpinionNotFound)

	list, err := repo.ListByRelease(ctx, rel.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, o2.ID, list[0].ID)
}
