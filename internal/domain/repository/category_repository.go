package repository

import (
	"context"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
)

// CategoryRepository defines the persistence port for Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
