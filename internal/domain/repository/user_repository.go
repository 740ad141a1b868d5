package repository

import (
	"context"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
)

// UserRepository defines the persistence port for User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
