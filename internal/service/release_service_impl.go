package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/alexanderramin/releaser/internal/db"
	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/notify"
	"github.com/alexanderramin/releaser/internal/repository"
	"github.com/alexanderramin/releaser/internal/versioning"
	"github.com/google/uuid"
)

type releaseService struct {
	projects repository.ProjectRepo
	releases repository.ReleaseRepo
	issues   repository.IssueRepo
	opinions repository.OpinionRepo
	uow      db.UnitOfWork
	locks    *projectLocks
	notifier *notify.Notifier
	observer UseCaseObserver
}

func NewReleaseService(
	projects repository.ProjectRepo,
	releases repository.ReleaseRepo,
	issues repository.IssueRepo,
	opinions repository.OpinionRepo,
	uow db.UnitOfWork,
	notifier *notify.Notifier,
	observers ...UseCaseObserver,
) ReleaseService {
	if notifier == nil {
		notifier = notify.NewNotifier(nil, nil)
	}
	return &releaseService{
		projects: projects,
		releases: releases,
		issues:   issues,
		opinions: opinions,
		uow:      uow,
		locks:    newProjectLocks(),
		notifier: notifier,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *releaseService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, newUseCaseEvent(name, startedAt, fields, err))
}

func (s *releaseService) Create(ctx context.Context, req contract.CreateReleaseRequest) (note *domain.ReleaseNote, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": req.ProjectID, "bump": req.BumpKind}
	defer func() { s.observe(ctx, "create-release", startedAt, fields, err) }()

	kind, err := versioning.ParseBumpKind(req.BumpKind)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	note = &domain.ReleaseNote{
		ID:           uuid.New().String(),
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Content:      req.Content,
		Summary:      req.Summary,
		DeployDate:   req.DeployDate,
		DeployStatus: domain.DeployPlanning,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = note.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	unlock := s.locks.Lock(req.ProjectID)
	defer unlock()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReleases := repository.NewSQLiteReleaseRepo(tx)

		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, req.ProjectID); err != nil {
			return err
		}

		latest, err := txReleases.LatestVersion(ctx, req.ProjectID)
		if err != nil {
			return err
		}
		next, err := versioning.Next(latest, kind)
		if err != nil {
			return err
		}
		note.Version = next.String()

		note.Seq, err = repository.NewSQLiteProjectSequenceRepo(tx).NextProjectSeq(ctx, req.ProjectID, repository.SeqRelease)
		if err != nil {
			return err
		}
		if err := txReleases.Create(ctx, note); err != nil {
			return err
		}
		return newIssueLinker(repository.NewSQLiteIssueRepo(tx)).Connect(ctx, note, req.IssueIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("creating release note: %w", err)
	}

	fields["version"] = note.Version
	s.notifier.Notify(ctx, notify.Message{
		Type:      notify.EventReleaseCreated,
		ProjectID: note.ProjectID,
		ReleaseID: note.ID,
		Version:   note.Version,
		Text:      fmt.Sprintf("Release %s %q was created", note.Version, note.Title),
	}, req.Actor)
	return note, nil
}

func (s *releaseService) Update(ctx context.Context, releaseID string, req contract.UpdateReleaseRequest) (note *domain.ReleaseNote, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"release_id": releaseID}
	if req.Version != nil {
		fields["version"] = *req.Version
	}
	defer func() { s.observe(ctx, "update-release", startedAt, fields, err) }()

	existing, err := s.releases.GetByID(ctx, releaseID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(existing.ProjectID)
	defer unlock()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReleases := repository.NewSQLiteReleaseRepo(tx)
		txIssues := repository.NewSQLiteIssueRepo(tx)
		linker := newIssueLinker(txIssues)

		current, err := txReleases.GetByID(ctx, releaseID)
		if err != nil {
			return err
		}

		version, err := versioning.Parse(stringOr(req.Version, current.Version))
		if err != nil {
			return err
		}
		if current.IsInitial() && version != versioning.Initial {
			return fmt.Errorf("release %s holds %s: %w", current.DisplayID(), current.Version, versioning.ErrImmutableInitialVersion)
		}

		var issueIDs []string
		if req.IssueIDs != nil {
			issueIDs = *req.IssueIDs
		} else if issueIDs, err = txIssues.ListIDsByRelease(ctx, current.ID); err != nil {
			return err
		}

		if _, err := linker.Disconnect(ctx, current.ID); err != nil {
			return err
		}

		dup, err := txReleases.ExistsVersion(ctx, current.ProjectID, current.ID, version.String())
		if err != nil {
			return err
		}
		if dup {
			return fmt.Errorf("version %s: %w", version, versioning.ErrDuplicatedVersion)
		}

		if err := s.validateEditedTimeline(ctx, txReleases, current, version); err != nil {
			return err
		}

		deployDate := current.DeployDate
		if req.DeployDate != nil {
			deployDate = req.DeployDate
		}
		if req.ClearDeployDate {
			deployDate = nil
		}
		current.ApplyEdit(
			stringOr(req.Title, current.Title),
			stringOr(req.Content, current.Content),
			stringOr(req.Summary, current.Summary),
			version.String(),
			deployDate,
			time.Now().UTC(),
		)
		if err := current.Validate(); err != nil {
			return invalidInput(err)
		}
		if err := txReleases.Update(ctx, current); err != nil {
			return err
		}
		if err := linker.Connect(ctx, current, issueIDs); err != nil {
			return err
		}

		note = current
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating release note: %w", err)
	}

	s.notifier.Notify(ctx, notify.Message{
		Type:      notify.EventReleaseUpdated,
		ProjectID: note.ProjectID,
		ReleaseID: note.ID,
		Version:   note.Version,
		Text:      fmt.Sprintf("Release %s %q was updated", note.Version, note.Title),
	}, req.Actor)
	return note, nil
}

// validateEditedTimeline checks the project's timeline with the release's
// version replaced by next.
func (s *releaseService) validateEditedTimeline(ctx context.Context, releases repository.ReleaseRepo, release *domain.ReleaseNote, next versioning.Version) error {
	entries, err := releases.Timeline(ctx, release.ProjectID)
	if err != nil {
		return err
	}
	timeline := make([]versioning.Version, 0, len(entries))
	for _, e := range entries {
		if e.ReleaseID == release.ID {
			timeline = append(timeline, next)
			continue
		}
		v, err := versioning.Parse(e.Version)
		if err != nil {
			return fmt.Errorf("stored version of release #%d: %w", e.Seq, err)
		}
		timeline = append(timeline, v)
	}
	return versioning.ValidateTimeline(timeline)
}

func (s *releaseService) Delete(ctx context.Context, releaseID string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"release_id": releaseID}
	defer func() { s.observe(ctx, "delete-release", startedAt, fields, err) }()

	existing, err := s.releases.GetByID(ctx, releaseID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(existing.ProjectID)
	defer unlock()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReleases := repository.NewSQLiteReleaseRepo(tx)
		txIssues := repository.NewSQLiteIssueRepo(tx)
		txOpinions := repository.NewSQLiteOpinionRepo(tx)

		if _, err := txReleases.GetByID(ctx, releaseID); err != nil {
			return err
		}
		opinionIDs, err := txOpinions.ListIDsByRelease(ctx, releaseID)
		if err != nil {
			return err
		}
		issueIDs, err := txIssues.ListIDsByRelease(ctx, releaseID)
		if err != nil {
			return err
		}
		fields["opinions"] = len(opinionIDs)
		fields["issues"] = len(issueIDs)

		if err := txReleases.Deactivate(ctx, releaseID); err != nil {
			return err
		}
		if err := txOpinions.DeactivateBatch(ctx, opinionIDs); err != nil {
			return err
		}
		return txIssues.DeactivateBatch(ctx, issueIDs)
	})
	if err != nil {
		return fmt.Errorf("deleting release note: %w", err)
	}

	s.notifier.Notify(ctx, notify.Message{
		Type:      notify.EventReleaseDeleted,
		ProjectID: existing.ProjectID,
		ReleaseID: existing.ID,
		Version:   existing.Version,
		Text:      fmt.Sprintf("Release %s %q was deleted", existing.Version, existing.Title),
	})
	return nil
}

func (s *releaseService) GetByID(ctx context.Context, releaseID string) (*contract.ReleaseDetail, error) {
	note, err := s.releases.GetByID(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	issues, err := s.issues.ListByRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	opinions, err := s.opinions.ListByRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	return &contract.ReleaseDetail{Release: note, Issues: issues, Opinions: opinions}, nil
}

func (s *releaseService) ListByProject(ctx context.Context, projectID string) ([]*domain.ReleaseNote, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.releases.ListByProject(ctx, projectID)
}
