package http

import (
	"context"

	"github.com/sftwrlab/hwlab-backend/internal/resources/domain"
)

// ResourceStore is the persistence surface the handlers need.
type ResourceStore interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Resource, error)
	Checkout(ctx context.Context, projectID, hwsetID string, qty int) (*domain.Resource, error)
	Checkin(ctx context.Context, projectID, hwsetID string, qty int) (*domain.Resource, error)
}

// Handler bundles the dependencies for hardware-set HTTP endpoints.
type Handler struct {
	store ResourceStore
}

func New(store ResourceStore) *Handler {
	return &Handler{store: store}
}
