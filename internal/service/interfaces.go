package service

import (
	"context"

	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/alexanderramin/releaser/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Deactivate(ctx context.Context, id string) error
}

type IssueService interface {
	Create(ctx context.Context, req contract.CreateIssueRequest) (*domain.Issue, error)
	GetByID(ctx context.Context, id string) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error)
	ListLinkable(ctx context.Context, projectID string) ([]*domain.Issue, error)
	ListByRelease(ctx context.Context, releaseID string) ([]*domain.Issue, error)
	UpdateLifeCycle(ctx context.Context, id string, lifeCycle string) (*domain.Issue, error)
	Delete(ctx context.Context, id string) error
}

type ReleaseService interface {
	Create(ctx context.Context, req contract.CreateReleaseRequest) (*domain.ReleaseNote, error)
	Update(ctx context.Context, releaseID string, req contract.UpdateReleaseRequest) (*domain.ReleaseNote, error)
	Delete(ctx context.Context, releaseID string) error
	GetByID(ctx context.Context, releaseID string) (*contract.ReleaseDetail, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ReleaseNote, error)
}

type OpinionService interface {
	Add(ctx context.Context, req contract.AddOpinionRequest) (*domain.ReleaseOpinion, error)
	ListByRelease(ctx context.Context, releaseID string) ([]*domain.ReleaseOpinion, error)
	Delete(ctx context.Context, id string) error
}
