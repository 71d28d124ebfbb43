package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLinkable_DoneAndUnlinked(t *testing.T) {
	i := &Issue{Seq: 1, LifeCycle: LifeCycleDone}
	assert.NoError(t, i.CheckLinkable())
}

func TestCheckLinkable_RejectsEveryOtherLifeCycle(t *testing.T) {
	for _, lc := range []LifeCycle{LifeCycleBacklog, LifeCycleTodo, LifeCycleInProgress, LifeCycleCompleted} {
		i := &Issue{Seq: 3, LifeCycle: lc}
		err := i.CheckLinkable()
		require.Error(t, err, "lifecycle %s should not be linkable", lc)
		assert.ErrorIs(t, err, ErrIssueNotDone)
	}
}

func TestCheckLinkable_AlreadyLinked(t *testing.T) {
	rel := "rel-1"
	i := &Issue{Seq: 2, LifeCycle: LifeCycleDone, ReleaseID: &rel}
	assert.ErrorIs(t, i.CheckLinkable(), ErrIssueAlreadyLinked)
}

func TestLinkedTo(t *testing.T) {
	rel := "rel-9"
	i := &Issue{LifeCycle: LifeCycleDone, ReleaseID: &rel}
	require.True(t, i.IsLinked())
	assert.True(t, i.LinkedTo("rel-9"))
	assert.False(t, i.LinkedTo("rel-8"))

	assert.False(t, (&Issue{}).LinkedTo("rel-9"))
}

func TestChangeLifeCycle_CompletedIsTerminal(t *testing.T) {
	rel := "rel-1"
	i := &Issue{LifeCycle: LifeCycleCompleted, ReleaseID: &rel}
	err := i.ChangeLifeCycle(LifeCycleDone, time.Now())
	assert.ErrorIs(t, err, ErrIssueCompleted)
}

func TestChangeLifeCycle_CompletedRequiresLink(t *testing.T) {
	i := &Issue{LifeCycle: LifeCycleDone}
	err := i.ChangeLifeCycle(LifeCycleCompleted, time.Now())
	assert.ErrorIs(t, err, ErrIssueNotLinked)
}

func TestChangeLifeCycle_LinkedIssueOnlyCompletes(t *testing.T) {
	rel := "rel-1"
	i := &Issue{LifeCycle: LifeCycleDone, ReleaseID: &rel}

	err := i.ChangeLifeCycle(LifeCycleInProgress, time.Now())
	assert.ErrorIs(t, err, ErrIssueAlreadyLinked)

	require.NoError(t, i.ChangeLifeCycle(LifeCycleCompleted, time.Now()))
	assert.Equal(t, LifeCycleCompleted, i.LifeCycle)
}

func TestChangeLifeCycle_UnlinkedMovesFreely(t *testing.T) {
	i := &Issue{LifeCycle: LifeCycleBacklog}
	require.NoError(t, i.ChangeLifeCycle(LifeCycleInProgress, time.Now()))
	require.NoError(t, i.ChangeLifeCycle(LifeCycleDone, time.Now()))
	require.NoError(t, i.ChangeLifeCycle(LifeCycleTodo, time.Now()))
	assert.Equal(t, LifeCycleTodo, i.LifeCycle)
}

func TestParseLifeCycle(t *testing.T) {
	cases := map[string]LifeCycle{
		"done":        LifeCycleDone,
		"DONE":        LifeCycleDone,
		"in-progress": LifeCycleInProgress,
		"InProgress":  LifeCycleInProgress,
		" backlog ":   LifeCycleBacklog,
	}
	for in, want := range cases {
		got, err := ParseLifeCycle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLifeCycle("shipped")
	assert.Error(t, err)
}
