package interfaces

import (
	"context"

	"requisicoes/internal/domain/entities"
)

// IUserRepository is the privileged credential store used by the password reset.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// IRoleChecker answers whether a user holds a role.
type IRoleChecker interface {
	HasRole(ctx context.Context, userID string, role string) (bool, error)
}

// ITokenVerifier validates a bearer credential and returns its claims.
type ITokenVerifier interface {
	Verify(token string) (entities.Claims, error)
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
}
