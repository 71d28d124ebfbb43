package web

import (
	"fmt"
	"time"

	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/alexanderramin/releaser/internal/domain"
)

const dateLayout = "2006-01-02"

type createProjectBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type createReleaseBody struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Summary    string   `json:"summary"`
	BumpKind   string   `json:"bumpKind"`
	DeployDate *string  `json:"deployDate"`
	IssueIDs   []string `json:"issueIds"`
	Actor      string   `json:"actor"`
}

// updateReleaseBody is a partial edit. Absent fields keep their value; an
// explicit empty deployDate clears it.
type updateReleaseBody struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Summary    *string   `json:"summary"`
	Version    *string   `json:"version"`
	DeployDate *string   `json:"deployDate"`
	IssueIDs   *[]string `json:"issueIds"`
	Actor      string    `json:"actor"`
}

type createIssueBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type lifeCycleBody struct {
	LifeCycle string `json:"lifeCycle"`
}

type addOpinionBody struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type projectJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type releaseJSON struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	Seq          int       `json:"seq"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Summary      string    `json:"summary"`
	Version      string    `json:"version"`
	DeployDate   *string   `json:"deployDate"`
	DeployStatus string    `json:"deployStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type issueJSON struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Seq       int     `json:"seq"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	LifeCycle string  `json:"lifeCycle"`
	ReleaseID *string `json:"releaseId"`
}

type opinionJSON struct {
	ID        string    `json:"id"`
	ReleaseID string    `json:"releaseId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type releaseDetailJSON struct {
	releaseJSON
	Issues   []issueJSON   `json:"issues"`
	Opinions []opinionJSON `json:"opinions"`
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("deployDate %q must be YYYY-MM-DD: %w", *s, contract.ErrInvalidInput)
	}
	return &d, nil
}

func toProjectJSON(p *domain.Project) projectJSON {
	return projectJSON{ID: p.ID, Name: p.Name, Description: p.Description, CreatedAt: p.CreatedAt}
}

func toReleaseJSON(n *domain.ReleaseNote) releaseJSON {
	out := releaseJSON{
		ID:           n.ID,
		ProjectID:    n.ProjectID,
		Seq:          n.Seq,
		Title:        n.Title,
		Content:      n.Content,
		Summary:      n.Summary,
		Version:      n.Version,
		DeployStatus: string(n.DeployStatus),
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
	if n.DeployDate != nil {
		d := n.DeployDate.Format(dateLayout)
		out.DeployDate = &d
	}
	return out
}

func toIssueJSON(i *domain.Issue) issueJSON {
	return issueJSON{
		ID:        i.ID,
		ProjectID: i.ProjectID,
		Seq:       i.Seq,
		Title:     i.Title,
		Content:   i.Content,
		LifeCycle: string(i.LifeCycle),
		ReleaseID: i.ReleaseID,
	}
}

func toOpinionJSON(o *domain.ReleaseOpinion) opinionJSON {
	return opinionJSON{ID: o.ID, ReleaseID: o.ReleaseID, Author: o.Author, Content: o.Content, CreatedAt: o.CreatedAt}
}

func toDetailJSON(d *contract.ReleaseDetail) releaseDetailJSON {
	out := releaseDetailJSON{
		releaseJSON: toReleaseJSON(d.Release),
		Issues:      make([]issueJSON, 0, len(d.Issues)),
		Opinions:    make([]opinionJSON, 0, len(d.Opinions)),
	}
	for _, i := range d.Issues {
		out.Issues = append(out.Issues, toIssueJSON(i))
	}
	for _, o := range d.Opinions {
		out.Opinions = append(out.Opinions, toOpinionJSON(o))
	}
	return out
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
