package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Payments", testutil.WithDescription("billing backend"))
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Payments", fetched.Name)
	assert.Equal(t, "billing backend", fetched.Description)
	assert.True(t, fetched.Active)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectRepo_List_ExcludesInactive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	p1 := testutil.NewTestProject("Active1")
	p2 := testutil.NewTestProject("Active2")
	p3 := testutil.NewTestProject("Retired")
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))
	require.NoError(t, repo.Create(ctx, p3))
	require.NoError(t, repo.Deactivate(ctx, p3.ID))

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	listAll, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, listAll, 3)

	_, err = repo.GetByID(ctx, p3.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Old")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Name = "New"
	proj.Description = "renamed"
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", fetched.Name)
	assert.Equal(t, "renamed", fetched.Description)
}

func TestProjectRepo_Deactivate_Twice(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Once")
	require.NoError(t, repo.Create(ctx, proj))
	require.NoError(t, repo.Deactivate(ctx, proj.ID))
	assert.ErrorIs(t, repo.Deactivate(ctx, proj.ID), domain.ErrProjectNotFound)
}
