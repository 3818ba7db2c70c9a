package ports

import (
	"context"
	"time"

	"github.com/taskhive/task-tracker/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token identified by jti until exp has passed.
	Logout(ctx context.Context, jti string, exp time.Time) error
}
