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

type opinionService struct {
	opinions repository.OpinionRepo
	releases repository.ReleaseRepo
	uow      db.UnitOfWork
}

func NewOpinionService(opinions repository.OpinionRepo, releases repository.ReleaseRepo, uow db.UnitOfWork) OpinionService {
	return &opinionService{opinions: opinions, releases: releases, uow: uow}
}

func (s *opinionService) Add(ctx context.Context, req contract.AddOpinionRequest) (*domain.ReleaseOpinion, error) {
	opinion := &domain.ReleaseOpinion{
		ID:        uuid.New().String(),
		ReleaseID: req.ReleaseID,
		Author:    req.Author,
		Content:   req.Content,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := opinion.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteReleaseRepo(tx).GetByID(ctx, req.ReleaseID); err != nil {
			return err
		}
		return repository.NewSQLiteOpinionRepo(tx).Create(ctx, opinion)
	})
	if err != nil {
		return nil, fmt.Errorf("adding opinion: %w", err)
	}
	return opinion, nil
}

func (s *opinionService) ListByRelease(ctx context.Context, releaseID string) ([]*domain.ReleaseOpinion, error) {
	if _, err := s.releases.GetByID(ctx, releaseID); err != nil {
		return nil, err
	}
	return s.opinions.ListByRelease(ctx, releaseID)
}

func (s *opinionService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txOpinions := repository.NewSQLiteOpinionRepo(tx)
		if _, err := txOpinions.GetByID(ctx, id); err != nil {
			return err
		}
		return txOpinions.DeactivateBatch(ctx, []string{id})
	})
}
