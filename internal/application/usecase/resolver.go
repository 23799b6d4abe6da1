package usecase

import (
	"context"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

// Resolver expande referencias (categoría, proveedor, creador) en resúmenes embebidos.
// Carga cada tabla referenciada una sola vez por lote de registros.
type Resolver struct {
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	users      repository.UserRepository
}

// NewResolver construye el resolver con los puertos de lectura.
func NewResolver(
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	users repository.UserRepository,
) *Resolver {
	return &Resolver{categories: categories, suppliers: suppliers, users: users}
}

// Products resuelve categoría y proveedor. detailed incluye phone y email del proveedor.
func (r *Resolver) Products(ctx context.Context, products []*entity.Product, detailed bool) ([]dto.ProductResponse, error) {
	catIDs := make([]string, 0, len(products))
	supIDs := make([]string, 0, len(products))
	for _, p := range products {
		catIDs = append(catIDs, p.CategoryID)
		if p.SupplierID != "" {
			supIDs = append(supIDs, p.SupplierID)
		}
	}
	cats, err := r.categoryIndex(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	sups, err := r.supplierIndex(ctx, supIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp := toProductResponse(p)
		if c, ok := cats[p.CategoryID]; ok {
			resp.Category = &dto.CategorySummary{ID: c.ID, Name: c.Name, Type: c.Type}
		}
		if s, ok := sups[p.SupplierID]; ok {
			resp.Supplier = toSupplierSummary(s, detailed)
		}
		out = append(out, resp)
	}
	return out, nil
}

// Product resuelve un único producto.
func (r *Resolver) Product(ctx context.Context, p *entity.Product, detailed bool) (*dto.ProductResponse, error) {
	list, err := r.Products(ctx, []*entity.Product{p}, detailed)
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

// Categories resuelve el creador de cada categoría.
func (r *Resolver) Categories(ctx context.Context, categories []*entity.Category) ([]dto.CategoryResponse, error) {
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		if c.CreatedBy != "" {
			ids = append(ids, c.CreatedBy)
		}
	}
	users, err := r.userIndex(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp := toCategoryResponse(c)
		if u, ok := users[c.CreatedBy]; ok {
			resp.CreatedBy = toUserSummary(u)
		}
		out = append(out, resp)
	}
	return out, nil
}

// Category resuelve una única categoría.
func (r *Resolver) Category(ctx context.Context, c *entity.Category) (*dto.CategoryResponse, error) {
	list, err := r.Categories(ctx, []*entity.Category{c})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

// Transactions resuelve el usuario que registró cada transacción.
func (r *Resolver) Transactions(ctx context.Context, txs []*entity.InventoryTransaction) ([]dto.TransactionResponse, error) {
	ids := make([]string, 0, len(txs))
	for _, t := range txs {
		if t.CreatedBy != "" {
			ids = append(ids, t.CreatedBy)
		}
	}
	users, err := r.userIndex(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		resp := toTransactionResponse(t)
		if u, ok := users[t.CreatedBy]; ok {
			resp.CreatedBy = toUserSummary(u)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (r *Resolver) categoryIndex(ctx context.Context, ids []string) (map[string]*entity.Category, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	list, err := r.categories.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*entity.Category, len(list))
	for _, c := range list {
		m[c.ID] = c
	}
	return m, nil
}

func (r *Resolver) supplierIndex(ctx context.Context, ids []string) (map[string]*entity.Supplier, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	list, err := r.suppliers.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*entity.Supplier, len(list))
	for _, s := range list {
		m[s.ID] = s
	}
	return m, nil
}

func (r *Resolver) userIndex(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	list, err := r.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*entity.User, len(list))
	for _, u := range list {
		m[u.ID] = u
	}
	return m, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
