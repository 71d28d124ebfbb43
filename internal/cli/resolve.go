package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const uuidLen = 36

// resolveProjectID matches input against project IDs, ID prefixes, and
// names (case-insensitive).
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required (--project)")
	}

	projects, err := app.Projects.List(ctx, false)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return matchPrefix("project", input, ids)
}

// ref is an entity that can be addressed by ID, ID prefix, or #seq.
type ref struct {
	ID  string
	Seq int
}

// resolveRef picks one of candidates by "#3", "3", a full ID, or an ID prefix.
func resolveRef(kind, input string, candidates []ref) (string, error) {
	if seq, err := strconv.Atoi(strings.TrimPrefix(input, "#")); err == nil {
		for _, c := range candidates {
			if c.Seq == seq {
				return c.ID, nil
			}
		}
		return "", fmt.Errorf("%s #%d not found", kind, seq)
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		if c.ID == input {
			return c.ID, nil
		}
		ids[i] = c.ID
	}
	return matchPrefix(kind, input, ids)
}

func matchPrefix(kind, input string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// resolveReleaseID accepts a full release ID directly. Anything shorter is
// looked up within the project given by --project.
func resolveReleaseID(ctx context.Context, app *App, project, input string) (string, error) {
	if len(input) == uuidLen {
		return input, nil
	}
	projectID, err := resolveProjectID(ctx, app, project)
	if err != nil {
		return "", err
	}
	notes, err := app.Releases.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	refs := make([]ref, len(notes))
	for i, n := range notes {
		refs[i] = ref{ID: n.ID, Seq: n.Seq}
	}
	return resolveRef("release", input, refs)
}

func resolveIssueID(ctx context.Context, app *App, project, input string) (string, error) {
	if len(input) == uuidLen {
		return input, nil
	}
	projectID, err := resolveProjectID(ctx, app, project)
	if err != nil {
		return "", err
	}
	issues, err := app.Issues.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	refs := make([]ref, len(issues))
	for i, is := range issues {
		refs[i] = ref{ID: is.ID, Seq: is.Seq}
	}
	return resolveRef("issue", input, refs)
}

func resolveIssueIDs(ctx context.Context, app *App, project string, inputs []string) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		id, err := resolveIssueID(ctx, app, project, in)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
