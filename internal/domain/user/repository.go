package user

import (
	"context"

	"github.com/medcare-africa/medcare-api/internal/domain"
)

type Repository interface {
	// GetByID retrieves a user by id. Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id int) (*User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List returns users in insertion order, optionally filtered by exact
	// role match. An empty role returns the full collection.
	List(ctx context.Context, role domain.Role) ([]*User, error)

	// Update merge-applies cmd to an existing user, preserving its ID.
	Update(ctx context.Context, id int, cmd *UpdateUserCommand) (*User, error)
}
