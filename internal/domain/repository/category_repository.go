package repository

import (
	"context"

	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// GetByName busca sin distinguir mayúsculas/minúsculas.
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter CategoryFilter, opts ListOptions) ([]*entity.Category, int, error)
}
