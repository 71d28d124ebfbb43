package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/releaser/internal/cli/formatter"
	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newReleaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Create and maintain release notes",
	}

	cmd.PersistentFlags().String("project", "", "Project name, ID, or ID prefix")

	cmd.AddCommand(
		newReleaseCreateCmd(app),
		newReleaseUpdateCmd(app),
		newReleaseDeleteCmd(app),
		newReleaseShowCmd(app),
		newReleaseListCmd(app),
	)

	return cmd
}

func parseDeployDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid deploy date %q (want YYYY-MM-DD): %w", s, contract.ErrInvalidInput)
	}
	return &d, nil
}

func newReleaseCreateCmd(app *App) *cobra.Command {
	var title, content, summary, bump, deploy, actor string
	var issues []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a release note with the next version",
		Long: `Create a release note. The version is derived from the project's latest
release by the bump kind (MAJOR, MINOR, or PATCH). The first release of a
project is always 1.0.0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			deployDate, err := parseDeployDate(deploy)
			if err != nil {
				return err
			}
			issueIDs, err := resolveIssueIDs(ctx, app, project, issues)
			if err != nil {
				return err
			}

			note, err := app.Releases.Create(ctx, contract.CreateReleaseRequest{
				ProjectID:  projectID,
				Title:      title,
				Content:    content,
				Summary:    summary,
				BumpKind:   bump,
				DeployDate: deployDate,
				IssueIDs:   issueIDs,
				Actor:      actor,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Created release %s %q (#%d)", note.Version, note.Title, note.Seq))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Release title")
	cmd.Flags().StringVar(&content, "content", "", "Release notes body")
	cmd.Flags().StringVar(&summary, "summary", "", "One-line summary")
	cmd.Flags().StringVar(&bump, "bump", "", "Version bump: MAJOR, MINOR, or PATCH")
	cmd.Flags().StringVar(&deploy, "deploy-date", "", "Planned deploy date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&issues, "issue", nil, "Done issue to include (repeatable; #seq, ID, or ID prefix)")
	cmd.Flags().StringVar(&actor, "actor", "", "Email to notify in addition to the project channel")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	_ = cmd.MarkFlagRequired("bump")

	return cmd
}

func newReleaseUpdateCmd(app *App) *cobra.Command {
	var title, content, summary, version, deploy, actor string
	var issues []string
	var clearIssues, clearDeploy bool

	cmd := &cobra.Command{
		Use:   "update RELEASE",
		Short: "Edit a release note",
		Long: `Edit a release note. Unset flags keep their current values. --issue
replaces the issue set; --clear-issues unlinks every issue that is not
completed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			id, err := resolveReleaseID(ctx, app, project, args[0])
			if err != nil {
				return err
			}
			req := contract.UpdateReleaseRequest{Actor: actor}
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("content") {
				req.Content = &content
			}
			if flags.Changed("summary") {
				req.Summary = &summary
			}
			if flags.Changed("version") {
				req.Version = &version
			}
			if flags.Changed("deploy-date") {
				if req.DeployDate, err = parseDeployDate(deploy); err != nil {
					return err
				}
				req.ClearDeployDate = req.DeployDate == nil
			}
			if clearDeploy {
				req.ClearDeployDate = true
			}
			if flags.Changed("issue") {
				ids, err := resolveIssueIDs(ctx, app, project, issues)
				if err != nil {
					return err
				}
				req.IssueIDs = &ids
			}
			if clearIssues {
				req.IssueIDs = &[]string{}
			}

			note, err := app.Releases.Update(ctx, id, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Updated release %s %q", note.Version, note.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Release title")
	cmd.Flags().StringVar(&content, "content", "", "Release notes body")
	cmd.Flags().StringVar(&summary, "summary", "", "One-line summary")
	cmd.Flags().StringVar(&version, "version", "", "New version (MAJOR.MINOR.PATCH)")
	cmd.Flags().StringVar(&deploy, "deploy-date", "", "Planned deploy date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDeploy, "clear-deploy-date", false, "Remove the deploy date")
	cmd.Flags().StringSliceVar(&issues, "issue", nil, "Replace the issue set (repeatable)")
	cmd.Flags().BoolVar(&clearIssues, "clear-issues", false, "Unlink all issues")
	cmd.Flags().StringVar(&actor, "actor", "", "Email to notify in addition to the project channel")

	return cmd
}

func newReleaseDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete RELEASE",
		Short: "Delete a release note with its issues and opinions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			id, err := resolveReleaseID(ctx, app, project, args[0])
			if err != nil {
				return err
			}
			if err := app.Releases.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted release %s", id))
			return nil
		},
	}
}

func newReleaseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show RELEASE",
		Short: "Show a release note with its issues and opinions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			id, err := resolveReleaseID(ctx, app, project, args[0])
			if err != nil {
				return err
			}
			detail, err := app.Releases.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReleaseDetail(detail))
			return nil
		},
	}
}

func newReleaseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List a project's release notes in timeline order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			notes, err := app.Releases.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No release notes yet.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReleaseList(notes))
			return nil
		},
	}
}
