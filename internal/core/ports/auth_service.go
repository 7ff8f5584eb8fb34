package ports

import (
	"context"

	"github.com/breatheright/health-system/internal/core/domain"
)

type AuthService interface {
	// Login verifies a username/password pair and mints a session token.
	// Unknown username and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
