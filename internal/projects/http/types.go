package http

import (
	"context"

	"github.com/sftwrlab/hwlab-backend/internal/projects/domain"
	resdomain "github.com/sftwrlab/hwlab-backend/internal/resources/domain"
)

// ProjectStore is the persistence surface the handlers need.
type ProjectStore interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, projectID string) (*domain.Project, error)
}

// ResourceSeeder creates the default hardware sets for a new project.
type ResourceSeeder interface {
	SeedDefaults(ctx context.Context, projectID string, hw1Total, hw2Total int) ([]resdomain.Resource, error)
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	store  ProjectStore
	seeder ResourceSeeder
}

func New(store ProjectStore, seeder ResourceSeeder) *Handler {
	return &Handler{store: store, seeder: seeder}
}
