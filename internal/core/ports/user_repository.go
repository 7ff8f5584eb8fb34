package ports

import (
	"context"

	"github.com/breatheright/health-system/internal/core/domain"
)

// UserRepository defines lookups over the user store. Implementations return
// the stored record including the password hash; stripping is the service
// layer's job.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// ListByRole returns users with the given role in insertion order.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
