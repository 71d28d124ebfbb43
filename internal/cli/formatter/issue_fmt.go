package formatter

import (
	"fmt"

	"github.com/alexanderramin/releaser/internal/domain"
)

func FormatIssueList(issues []*domain.Issue) string {
	rows := make([][]string, 0, len(issues))
	for _, i := range issues {
		release := Dim("-")
		if i.ReleaseID != nil {
			release = shortRef(*i.ReleaseID)
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", i.Seq),
			i.Title,
			LifeCycleBadge(i.LifeCycle),
			release,
			Dim(i.DisplayID()),
		})
	}
	return RenderTable([]string{"SEQ", "TITLE", "LIFECYCLE", "RELEASE", "ID"}, rows)
}

func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		state := StyleGreen.Render("active")
		if !p.Active {
			state = Dim("inactive")
		}
		rows = append(rows, []string{Bold(p.Name), p.Description, state, Dim(p.DisplayID())})
	}
	return RenderTable([]string{"NAME", "DESCRIPTION", "STATE", "ID"}, rows)
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
