package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/ports"
	"github.com/jhoicas/erp-catalog-api/internal/application/validation"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

const (
	notesInitialStock = "initial stock"
	notesManualUpdate = "quantity updated from product edit"
	reportPageSize    = dto.MaxLimit
)

// ProductUseCase aplica reglas de negocio para productos y servicios.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	resolver   *Resolver
	txRunner   ports.TxRunner
	reports    ports.ReportGenerator
}

// NewProductUseCase construye el caso de uso. reports puede ser nil si no se exponen reportes.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	resolver *Resolver,
	txRunner ports.TxRunner,
	reports ports.ReportGenerator,
) *ProductUseCase {
	return &ProductUseCase{
		repo:       repo,
		categories: categories,
		suppliers:  suppliers,
		resolver:   resolver,
		txRunner:   txRunner,
		reports:    reports,
	}
}

// Create crea un producto o servicio. Un servicio siempre queda con cantidad 0.
// Si un producto nace con existencias se registra la transacción inicial en la misma tx.
func (uc *ProductUseCase) Create(ctx context.Context, actor Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		CategoryID:       in.CategoryID,
		Description:      in.Description,
		Price:            *in.Price,
		Type:             in.Type,
		SupplierID:       in.SupplierID,
		ReorderThreshold: entity.DefaultReorderThreshold,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.ReorderThreshold != nil {
		product.ReorderThreshold = *in.ReorderThreshold
	}
	product.Normalize()

	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, txs repository.InventoryTransactionRepository) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		if product.Type == entity.TypeProduct && product.Quantity > 0 {
			return txs.Create(ctx, entity.NewInventoryTransaction(
				product.ID, entity.TransactionPurchase, 0, product.Quantity, notesInitialStock, actor.ID, now))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("product_id", product.ID).Str("type", product.Type).Msg("product created")
	return uc.resolver.Product(ctx, product, false)
}

// GetByID obtiene un producto con categoría y proveedor (incluye contacto del proveedor).
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.resolver.Product(ctx, product, true)
}

// List aplica el filtro de consulta y resuelve referencias de la página.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) (*dto.Page[dto.ProductResponse], error) {
	opts := listOptions(&q.PageRequest, productSortFields)
	return uc.list(ctx, BuildProductFilter(q), q.PageRequest, opts)
}

// LowStock productos físicos en o bajo su umbral, de menor a mayor cantidad.
func (uc *ProductUseCase) LowStock(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.ProductResponse], error) {
	opts := listOptions(&page, productSortFields)
	opts.SortBy, opts.SortDesc = "quantity", false
	filter := repository.ProductFilter{Type: entity.TypeProduct, LowStock: true}
	return uc.list(ctx, filter, page, opts)
}

// OutOfStock productos físicos sin existencias, los actualizados más recientemente primero.
func (uc *ProductUseCase) OutOfStock(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.ProductResponse], error) {
	opts := listOptions(&page, productSortFields)
	opts.SortBy, opts.SortDesc = "updatedAt", true
	filter := repository.ProductFilter{Type: entity.TypeProduct, OutOfStock: true}
	return uc.list(ctx, filter, page, opts)
}

// ByCategory productos de una categoría existente.
func (uc *ProductUseCase) ByCategory(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.Page[dto.ProductResponse], error) {
	if err := validation.ID("category", categoryID); err != nil {
		return nil, err
	}
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("Category not found")
	}
	opts := listOptions(&page, productSortFields)
	return uc.list(ctx, repository.ProductFilter{CategoryID: categoryID}, page, opts)
}

// Update actualización parcial. Si cambia la cantidad de un producto físico se registra
// una transacción de ajuste dentro de la misma transacción de BD.
func (uc *ProductUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.ID("product", id); err != nil {
		return nil, err
	}
	trimPtr(in.Name)
	trimPtr(in.Description)
	if in.Type != nil {
		t := strings.ToLower(strings.TrimSpace(*in.Type))
		in.Type = &t
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var categoryID, supplierID string
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		supplierID = *in.SupplierID
	}
	if err := uc.checkReferences(ctx, categoryID, supplierID); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, txs repository.InventoryTransactionRepository) error {
		product, err := products.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewNotFound("Product not found")
		}
		prevQty := product.Quantity
		applyProductUpdate(product, in)
		product.Normalize()
		product.UpdatedAt = time.Now()
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		if product.Type == entity.TypeProduct && product.Quantity != prevQty {
			if err := txs.Create(ctx, entity.NewInventoryTransaction(
				product.ID, entity.TransactionAdjustment, prevQty, product.Quantity,
				notesManualUpdate, actor.ID, product.UpdatedAt)); err != nil {
				return err
			}
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.resolver.Product(ctx, updated, false)
}

// Delete elimina un producto de forma definitiva.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("product_id", id).Msg("product deleted")
	return product, nil
}

// LowStockReport genera el PDF con todos los productos en o bajo su umbral.
func (uc *ProductUseCase) LowStockReport(ctx context.Context) ([]byte, error) {
	if uc.reports == nil {
		return nil, domain.NewNotFound("Reports are not enabled")
	}
	filter := repository.ProductFilter{Type: entity.TypeProduct, LowStock: true}
	opts := repository.ListOptions{Limit: reportPageSize, SortBy: "quantity"}
	var all []*entity.Product
	for {
		page, total, err := uc.repo.List(ctx, filter, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		opts.Offset += opts.Limit
		if len(page) == 0 || opts.Offset >= total {
			break
		}
	}
	items, err := uc.resolver.Products(ctx, all, true)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateLowStockReport(ctx, ports.LowStockReport{
		Title:       "Low stock products",
		GeneratedAt: time.Now(),
		Products:    items,
	})
}

func (uc *ProductUseCase) list(ctx context.Context, filter repository.ProductFilter, page dto.PageRequest, opts repository.ListOptions) (*dto.Page[dto.ProductResponse], error) {
	products, total, err := uc.repo.List(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	items, err := uc.resolver.Products(ctx, products, false)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, page, total), nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	if err := validation.ID("product", id); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("Product not found")
	}
	return product, nil
}

// checkReferences verifica que la categoría y el proveedor indicados existan. Vacío = no verificar.
func (uc *ProductUseCase) checkReferences(ctx context.Context, categoryID, supplierID string) error {
	verr := &domain.ValidationError{}
	if categoryID != "" {
		c, err := uc.categories.GetByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if c == nil {
			verr.Add("category", "category does not exist")
		}
	}
	if supplierID != "" {
		s, err := uc.suppliers.GetByID(ctx, supplierID)
		if err != nil {
			return err
		}
		if s == nil {
			verr.Add("supplier", "supplier does not exist")
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func applyProductUpdate(p *entity.Product, in dto.UpdateProductRequest) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.SupplierID != nil {
		p.SupplierID = *in.SupplierID
	}
	if in.ReorderThreshold != nil {
		p.ReorderThreshold = *in.ReorderThreshold
	}
}
