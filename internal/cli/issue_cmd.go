package cli

import (
	"fmt"

	"github.com/alexanderramin/releaser/internal/cli/formatter"
	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/spf13/cobra"
)

func newIssueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage project issues",
	}

	cmd.PersistentFlags().String("project", "", "Project name, ID, or ID prefix")

	cmd.AddCommand(
		newIssueAddCmd(app),
		newIssueListCmd(app),
		newIssueStatusCmd(app),
		newIssueRemoveCmd(app),
	)

	return cmd
}

func newIssueAddCmd(app *App) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open a new issue in the backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			issue, err := app.Issues.Create(ctx, contract.CreateIssueRequest{
				ProjectID: projectID,
				Title:     title,
				Content:   content,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Created issue #%d %s", issue.Seq, issue.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Issue title")
	cmd.Flags().StringVar(&content, "content", "", "Issue body")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newIssueListCmd(app *App) *cobra.Command {
	var linkable bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			list := app.Issues.ListByProject
			if linkable {
				list = app.Issues.ListLinkable
			}
			issues, err := list(ctx, projectID)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No issues found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIssueList(issues))
			return nil
		},
	}

	cmd.Flags().BoolVar(&linkable, "linkable", false, "Only done issues not yet in a release")

	return cmd
}

func newIssueStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ISSUE LIFECYCLE",
		Short: "Move an issue to backlog, todo, in_progress, done, or completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			id, err := resolveIssueID(ctx, app, project, args[0])
			if err != nil {
				return err
			}
			issue, err := app.Issues.UpdateLifeCycle(ctx, id, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Issue #%d is now %s", issue.Seq, formatter.LifeCycleBadge(issue.LifeCycle)))
			return nil
		},
	}
}

func newIssueRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ISSUE",
		Short: "Deactivate an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			id, err := resolveIssueID(ctx, app, project, args[0])
			if err != nil {
				return err
			}
			if err := app.Issues.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed issue %s", id))
			return nil
		},
	}
}
