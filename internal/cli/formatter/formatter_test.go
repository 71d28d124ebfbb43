package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{
		{"wide cell", "x"},
		{"y"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// Second column starts at the same visible offset on every line.
	col := strings.Index(lines[2], "x")
	assert.Equal(t, len("wide cell")+colGap, col)
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}

func TestFormatReleaseList(t *testing.T) {
	deploy := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	out := FormatReleaseList([]*domain.ReleaseNote{
		{ID: "0123456789", Seq: 1, Version: "1.0.0", Title: "Launch", DeployStatus: domain.DeployDeployed, DeployDate: &deploy},
		{ID: "abcdef", Seq: 2, Version: "1.1.0", Title: "Search", DeployStatus: domain.DeployPlanning},
	})
	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "2026-01-02")
	assert.Contains(t, out, "01234567")
	assert.Contains(t, out, "planning")
}

func TestFormatReleaseDetail(t *testing.T) {
	rel := "r1"
	out := FormatReleaseDetail(&contract.ReleaseDetail{
		Release: &domain.ReleaseNote{ID: "r1", Version: "2.0.0", Title: "Big one", Content: "Rewrote everything", Summary: "tl;dr"},
		Issues: []*domain.Issue{
			{ID: "i1", Seq: 4, Title: "Migrate schema", LifeCycle: domain.LifeCycleDone, ReleaseID: &rel},
		},
		Opinions: []*domain.ReleaseOpinion{{Content: "ship it"}},
	})
	assert.Contains(t, out, "RELEASE 2.0.0")
	assert.Contains(t, out, "tl;dr")
	assert.Contains(t, out, "Migrate schema")
	assert.Contains(t, out, "anonymous")
	assert.Contains(t, out, "ship it")
}

func TestLifeCycleBadge(t *testing.T) {
	assert.Contains(t, LifeCycleBadge(domain.LifeCycleInProgress), "in progress")
}

func TestFormatProjectList(t *testing.T) {
	out := FormatProjectList([]*domain.Project{{ID: "p1", Name: "Web", Active: true}, {ID: "p2", Name: "Old"}})
	assert.Contains(t, out, "Web")
	assert.Contains(t, out, "inactive")
}
