package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/alexanderramin/releaser/internal/db"
	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/repository"
	"github.com/google/uuid"
)

type issueService struct {
	issues   repository.IssueRepo
	releases repository.ReleaseRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewIssueService(issues repository.IssueRepo, releases repository.ReleaseRepo, uow db.UnitOfWork, observers ...UseCaseObserver) IssueService {
	return &issueService{
		issues:   issues,
		releases: releases,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *issueService) Create(ctx context.Context, req contract.CreateIssueRequest) (issue *domain.Issue, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, newUseCaseEvent("create-issue", startedAt, map[string]any{"project_id": req.ProjectID}, err))
	}()

	now := time.Now().UTC()
	issue = &domain.Issue{
		ID:        uuid.New().String(),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Content:   req.Content,
		LifeCycle: domain.LifeCycleBacklog,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = issue.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, req.ProjectID); err != nil {
			return err
		}
		seq, err := repository.NewSQLiteProjectSequenceRepo(tx).NextProjectSeq(ctx, req.ProjectID, repository.SeqIssue)
		if err != nil {
			return err
		}
		issue.Seq = seq
		return repository.NewSQLiteIssueRepo(tx).Create(ctx, issue)
	})
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}
	return issue, nil
}

func (s *issueService) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	return s.issues.GetByID(ctx, id)
}

func (s *issueService) ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	return s.issues.ListByProject(ctx, projectID)
}

func (s *issueService) ListLinkable(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	return s.issues.ListLinkable(ctx, projectID)
}

func (s *issueService) ListByRelease(ctx context.Context, releaseID string) ([]*domain.Issue, error) {
	if _, err := s.releases.GetByID(ctx, releaseID); err != nil {
		return nil, err
	}
	return s.issues.ListByRelease(ctx, releaseID)
}

func (s *issueService) UpdateLifeCycle(ctx context.Context, id string, lifeCycle string) (*domain.Issue, error) {
	next, err := domain.ParseLifeCycle(lifeCycle)
	if err != nil {
		return nil, invalidInput(err)
	}

	var issue *domain.Issue
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txIssues := repository.NewSQLiteIssueRepo(tx)
		current, err := txIssues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := current.ChangeLifeCycle(next, time.Now().UTC()); err != nil {
			return err
		}
		if err := txIssues.Update(ctx, current); err != nil {
			return err
		}
		issue = current
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating issue lifecycle: %w", err)
	}
	return issue, nil
}

func (s *issueService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txIssues := repository.NewSQLiteIssueRepo(tx)
		if _, err := txIssues.GetByID(ctx, id); err != nil {
			return err
		}
		return txIssues.DeactivateBatch(ctx, []string{id})
	})
}
