package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/releaser/internal/cli"
	"github.com/alexanderramin/releaser/internal/cli/formatter"
	"github.com/alexanderramin/releaser/internal/config"
	"github.com/alexanderramin/releaser/internal/db"
	"github.com/alexanderramin/releaser/internal/logging"
	"github.com/alexanderramin/releaser/internal/notify"
	"github.com/alexanderramin/releaser/internal/repository"
	"github.com/alexanderramin/releaser/internal/service"
	"github.com/alexanderramin/releaser/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer logCloser.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	releaseRepo := repository.NewSQLiteReleaseRepo(database)
	issueRepo := repository.NewSQLiteIssueRepo(database)
	opinionRepo := repository.NewSQLiteOpinionRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var publisher notify.Publisher = notify.NoopPublisher{}
	if cfg.Notify {
		publisher = notify.NewLogPublisher(logger)
	}
	notifier := notify.NewNotifier(publisher, logger)
	observer := service.NewSlogUseCaseObserver(logger)

	// Wire services
	app := &cli.App{
		Projects:    service.NewProjectService(projectRepo, uow),
		Issues:      service.NewIssueService(issueRepo, releaseRepo, uow, observer),
		Releases:    service.NewReleaseService(projectRepo, releaseRepo, issueRepo, opinionRepo, uow, notifier, observer),
		Opinions:    service.NewOpinionService(opinionRepo, releaseRepo, uow),
		DefaultAddr: cfg.HTTPAddr,
	}
	app.Serve = func(ctx context.Context, addr string) error {
		gin.SetMode(gin.ReleaseMode)
		srv := web.NewServer(web.Services{
			Projects: app.Projects,
			Issues:   app.Issues,
			Releases: app.Releases,
			Opinions: app.Opinions,
		}, logger)
		return srv.Run(ctx, addr)
	}

	return cli.NewRootCmd(app).Execute()
}
