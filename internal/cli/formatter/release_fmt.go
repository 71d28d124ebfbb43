package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/alexanderramin/releaser/internal/domain"
)

const dateLayout = "2006-01-02"

func FormatReleaseList(notes []*domain.ReleaseNote) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", n.Seq),
			Bold(n.Version),
			n.Title,
			DeployStatusBadge(n.DeployStatus),
			formatDeployDate(n),
			Dim(n.DisplayID()),
		})
	}
	return RenderTable([]string{"SEQ", "VERSION", "TITLE", "STATUS", "DEPLOY", "ID"}, rows)
}

func FormatReleaseDetail(d *contract.ReleaseDetail) string {
	n := d.Release
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Release %s", n.Version)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", Bold(n.Title), DeployStatusBadge(n.DeployStatus))
	fmt.Fprintf(&b, "%s %s   %s %s\n", Dim("id"), n.ID, Dim("deploy"), formatDeployDate(n))
	if n.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", n.Summary)
	}
	fmt.Fprintf(&b, "\n%s\n", n.Content)

	if len(d.Issues) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Issues"))
		b.WriteString("\n")
		b.WriteString(FormatIssueList(d.Issues))
	}
	if len(d.Opinions) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Opinions"))
		b.WriteString("\n")
		for _, o := range d.Opinions {
			author := o.Author
			if author == "" {
				author = "anonymous"
			}
			fmt.Fprintf(&b, "%s %s  %s\n", StyleBlue.Render(author), Dim(o.CreatedAt.Format(dateLayout)), o.Content)
		}
	}
	return b.String()
}

func formatDeployDate(n *domain.ReleaseNote) string {
	if n.DeployDate == nil {
		return Dim("-")
	}
	return n.DeployDate.Format(dateLayout)
}
