package ports

import (
	"context"

	"github.com/breatheright/health-system/internal/core/domain"
)

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// ListPatients returns all patient users in seed insertion order.
	ListPatients(ctx context.Context) ([]*domain.User, error)
}
