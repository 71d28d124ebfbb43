package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/releaser/internal/db"
	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork) ProjectService {
	return &projectService{projects: projects, uow: uow}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	if err := p.Validate(); err != nil {
		return invalidInput(err)
	}
	if err := s.ensureNameFree(ctx, p); err != nil {
		return err
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Active = true
	if err := s.projects.Create(ctx, p); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

// ensureNameFree rejects p when another active project has the same name.
// The CLI resolves projects by name, so names must stay unambiguous.
func (s *projectService) ensureNameFree(ctx context.Context, p *domain.Project) error {
	existing, err := s.projects.List(ctx, false)
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}
	for _, other := range existing {
		if other.ID != p.ID && strings.EqualFold(other.Name, p.Name) {
			return fmt.Errorf("%q: %w", p.Name, domain.ErrProjectNameTaken)
		}
	}
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, includeInactive bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeInactive)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return invalidInput(err)
	}
	if err := s.ensureNameFree(ctx, p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// Deactivate soft-deletes the project and everything it owns: its release
// notes, their opinions, and its issues. The whole cascade is one transaction.
func (s *projectService) Deactivate(ctx context.Context, id string) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txReleases := repository.NewSQLiteReleaseRepo(tx)
		txIssues := repository.NewSQLiteIssueRepo(tx)
		txOpinions := repository.NewSQLiteOpinionRepo(tx)

		if _, err := txProjects.GetByID(ctx, id); err != nil {
			return err
		}

		notes, err := txReleases.ListByProject(ctx, id)
		if err != nil {
			return err
		}
		releaseIDs := make([]string, 0, len(notes))
		var opinionIDs []string
		for _, n := range notes {
			releaseIDs = append(releaseIDs, n.ID)
			ids, err := txOpinions.ListIDsByRelease(ctx, n.ID)
			if err != nil {
				return err
			}
			opinionIDs = append(opinionIDs, ids...)
		}

		issues, err := txIssues.ListByProject(ctx, id)
		if err != nil {
			return err
		}
		issueIDs := make([]string, 0, len(issues))
		for _, i := range issues {
			issueIDs = append(issueIDs, i.ID)
		}

		if err := txProjects.Deactivate(ctx, id); err != nil {
			return err
		}
		if err := txReleases.DeactivateBatch(ctx, releaseIDs); err != nil {
			return err
		}
		if err := txOpinions.DeactivateBatch(ctx, opinionIDs); err != nil {
			return err
		}
		return txIssues.DeactivateBatch(ctx, issueIDs)
	})
	if err != nil {
		return fmt.Errorf("deactivating project: %w", err)
	}
	return nil
}
