package users

import (
	"context"

	"github.com/acadex/acadex/internal/server/models"
)

// Repository is the persistence port for identities. Implementations must
// serialize Create's uniqueness check and append: two concurrent Create calls
// sharing an email or phone must not both succeed, and IDs must never repeat.
type Repository interface {
	// Create assigns the next sequential ID and persists the user.
	// Returns common.ErrorAlreadyExists if another user shares a non-empty
	// email or phone.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByIdentifier returns the user matching the given email or phone
	// (empty strings never match). Returns common.ErrorNotFound if no user
	// matches.
	FindByIdentifier(ctx context.Context, email, phone string) (*models.User, error)

	// FindByID returns the user with the given ID, or common.ErrorNotFound.
	FindByID(ctx context.Context, id int64) (*models.User, error)
}
