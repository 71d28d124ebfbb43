package cli

import (
	"fmt"

	"github.com/alexanderramin/releaser/internal/cli/formatter"
	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/spf13/cobra"
)

func newOpinionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opinion",
		Short: "Comment on release notes",
	}

	cmd.PersistentFlags().String("project", "", "Project name, ID, or ID prefix")

	cmd.AddCommand(
		newOpinionAddCmd(app),
		newOpinionRemoveCmd(app),
	)

	return cmd
}

func newOpinionAddCmd(app *App) *cobra.Command {
	var author, content string

	cmd := &cobra.Command{
		Use:   "add RELEASE",
		Short: "Leave an opinion on a release note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetString("project")
			releaseID, err := resolveReleaseID(ctx, app, project, args[0])
			if err != nil {
				return err
			}
			op, err := app.Opinions.Add(ctx, contract.AddOpinionRequest{
				ReleaseID: releaseID,
				Author:    author,
				Content:   content,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Added opinion %s", op.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Who is commenting")
	cmd.Flags().StringVar(&content, "content", "", "The opinion")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newOpinionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove OPINION_ID",
		Short: "Remove an opinion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Opinions.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed opinion %s", args[0]))
			return nil
		},
	}
}
