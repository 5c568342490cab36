package ports

import (
	"context"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
)

// AuthRepository defines the interface for admin identity persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a new identity; domain.ErrUserExists on duplicates.
	// Only used by the boot-time seeder, never by request traffic.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
