package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/validation"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

const msgCategoryExists = "Category with this name already exists"

// CategoryUseCase aplica reglas de negocio para categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	resolver *Resolver
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, resolver *Resolver) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, resolver: resolver}
}

// Create crea una categoría activa. El nombre es único sin distinguir mayúsculas.
func (uc *CategoryUseCase) Create(ctx context.Context, actor Actor, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflict(msgCategoryExists)
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		CreatedBy: actor.ID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, conflictOnDuplicate(err, msgCategoryExists)
	}
	zerolog.Ctx(ctx).Info().Str("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return uc.resolver.Category(ctx, category)
}

// List lista categorías con búsqueda, tipo e isActive.
func (uc *CategoryUseCase) List(ctx context.Context, q dto.CategoryQuery) (*dto.Page[dto.CategoryResponse], error) {
	opts := listOptions(&q.PageRequest, categorySortFields)
	categories, total, err := uc.repo.List(ctx, buildCategoryFilter(q), opts)
	if err != nil {
		return nil, err
	}
	items, err := uc.resolver.Categories(ctx, categories)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, q.PageRequest, total), nil
}

// GetByID obtiene una categoría (activa o no) con su creador.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.resolver.Category(ctx, category)
}

// Update actualiza nombre, tipo o estado. La unicidad solo se revalida si el nombre cambió.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validation.ID("category", id); err != nil {
		return nil, err
	}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		in.Name = &n
	}
	if in.Type != nil {
		t := strings.ToLower(strings.TrimSpace(*in.Type))
		in.Type = &t
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	category, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if !sameName(*in.Name, category.Name) {
			other, err := uc.repo.GetByName(ctx, *in.Name)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != category.ID {
				return nil, domain.NewConflict(msgCategoryExists)
			}
		}
		category.Name = *in.Name
	}
	if in.Type != nil {
		category.Type = *in.Type
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, conflictOnDuplicate(err, msgCategoryExists)
	}
	return uc.resolver.Category(ctx, category)
}

// Delete desactiva la categoría (borrado lógico). Los productos no se tocan.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("category_id", id).Str("deleted_by", actor.ID).Msg("category deactivated")
	return nil
}

func (uc *CategoryUseCase) get(ctx context.Context, id string) (*entity.Category, error) {
	if err := validation.ID("category", id); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("Category not found")
	}
	return category, nil
}

// sameName compara nombres con plegado de mayúsculas Unicode.
func sameName(a, b string) bool {
	return cases.Fold().String(a) == cases.Fold().String(b)
}
