package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpinionService_AddListDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	h := newReleaseHarness(t, database, nil)
	svc := NewOpinionService(h.opinions, h.releases, testutil.NewTestUoW(database))
	ctx := context.Background()

	note, err := h.svc.Create(ctx, createReq(h.project.ID, "MAJOR"))
	require.NoError(t, err)

	op, err := svc.Add(ctx, contract.AddOpinionRequest{ReleaseID: note.ID, Author: "qa", Content: "verified on staging"})
	require.NoError(t, err)

	list, err := svc.ListByRelease(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "verified on staging", list[0].Content)

	detail, err := h.svc.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Opinions, 1)

	require.NoError(t, svc.Delete(ctx, op.ID))
	assert.ErrorIs(t, svc.Delete(ctx, op.ID), domain.ErrOpinionNotFound)

	list, err = svc.ListByRelease(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpinionService_AddRequiresActiveRelease(t *testing.T) {
	database := testutil.NewTestDB(t)
	h := newReleaseHarness(t, database, nil)
	svc := NewOpinionService(h.opinions, h.releases, testutil.NewTestUoW(database))
	ctx := context.Background()

	note, err := h.svc.Create(ctx, createReq(h.project.ID, "MAJOR"))
	require.NoError(t, err)
	require.NoError(t, h.svc.Delete(ctx, note.ID))

	_, err = svc.Add(ctx, contract.AddOpinionRequest{ReleaseID: note.ID, Content: "late"})
	assert.ErrorIs(t, err, domain.ErrReleaseNotFound)

	_, err = svc.Add(ctx, contract.AddOpinionRequest{ReleaseID: note.ID})
	assert.ErrorIs(t, err, contract.ErrInvalidInput)
}
