package cli

import (
	"context"

	"github.com/alexanderramin/releaser/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Issues   service.IssueService
	Releases service.ReleaseService
	Opinions service.OpinionService

	// Serve runs the HTTP API until ctx is cancelled. Nil disables "serve".
	Serve func(ctx context.Context, addr string) error
	// DefaultAddr is the listen address used when --addr is not given.
	DefaultAddr string
}

// NewRootCmd creates the top-level "releaser" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "releaser",
		Short:         "Versioned release notes for your projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newIssueCmd(app),
		newReleaseCmd(app),
		newOpinionCmd(app),
		newServeCmd(app),
	)

	return root
}
