package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/validation"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

const msgSupplierEmailExists = "Supplier with this email already exists"

// SupplierUseCase aplica reglas de negocio para proveedores y su vínculo con productos.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	products repository.ProductRepository
	resolver *Resolver
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, products repository.ProductRepository, resolver *Resolver) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, products: products, resolver: resolver}
}

// Create crea un proveedor. El email se guarda en minúsculas y es único.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = NormalizeEmail(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflict(msgSupplierEmailExists)
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, conflictOnDuplicate(err, msgSupplierEmailExists)
	}
	zerolog.Ctx(ctx).Info().Str("supplier_id", supplier.ID).Msg("supplier created")
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con búsqueda por nombre, contacto o email.
func (uc *SupplierUseCase) List(ctx context.Context, q dto.SupplierQuery) (*dto.Page[dto.SupplierResponse], error) {
	opts := listOptions(&q.PageRequest, supplierSortFields)
	filter := repository.SupplierFilter{Search: strings.TrimSpace(q.Search)}
	suppliers, total, err := uc.repo.List(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, *toSupplierResponse(s))
	}
	return dto.NewPage(items, q.PageRequest, total), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor; la unicidad del email solo se revalida si cambió.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := validation.ID("supplier", id); err != nil {
		return nil, err
	}
	trimPtr(in.Name)
	trimPtr(in.ContactPerson)
	trimPtr(in.Phone)
	trimPtr(in.Address)
	if in.Email != nil {
		e := NormalizeEmail(*in.Email)
		in.Email = &e
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	supplier, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != supplier.Email {
		other, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != supplier.ID {
			return nil, domain.NewConflict(msgSupplierEmailExists)
		}
		supplier.Email = *in.Email
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, conflictOnDuplicate(err, msgSupplierEmailExists)
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor sin productos vinculados.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	linked, err := uc.products.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if linked > 0 {
		return domain.NewConflict(fmt.Sprintf(
			"Cannot delete supplier. %d product(s) are linked to this supplier. Please unlink products first.", linked))
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("supplier_id", id).Msg("supplier deleted")
	return nil
}

// Products devuelve el resumen del proveedor y la página de sus productos.
func (uc *SupplierUseCase) Products(ctx context.Context, id string, page dto.PageRequest) (*dto.SupplierProductsResponse, *dto.Pagination, error) {
	supplier, err := uc.get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	opts := listOptions(&page, productSortFields)
	products, total, err := uc.products.List(ctx, repository.ProductFilter{SupplierID: id}, opts)
	if err != nil {
		return nil, nil, err
	}
	items, err := uc.resolver.Products(ctx, products, false)
	if err != nil {
		return nil, nil, err
	}
	pagination := dto.NewPagination(page.Page, page.Limit, total)
	return &dto.SupplierProductsResponse{
		Supplier: *toSupplierSummary(supplier, true),
		Products: items,
	}, &pagination, nil
}

// Stats agrega los productos vinculados al proveedor.
func (uc *SupplierUseCase) Stats(ctx context.Context, id string) (*dto.SupplierStatsResponse, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	s, err := uc.repo.Stats(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierStatsResponse{
		TotalProducts:      s.TotalProducts,
		TotalServices:      s.TotalServices,
		LowStockProducts:   s.LowStockProducts,
		OutOfStockProducts: s.OutOfStockProducts,
		TotalItems:         s.TotalItems,
	}, nil
}

// LinkProduct asigna el proveedor a un producto.
func (uc *SupplierUseCase) LinkProduct(ctx context.Context, in dto.LinkProductRequest) (*dto.ProductResponse, error) {
	if !validation.IsID(in.SupplierID) || !validation.IsID(in.ProductID) {
		return nil, domain.NewInvalidInput("Invalid supplier ID or product ID")
	}
	if _, err := uc.get(ctx, in.SupplierID); err != nil {
		return nil, err
	}
	return uc.setSupplier(ctx, in.ProductID, in.SupplierID)
}

// UnlinkProduct quita el proveedor de un producto.
func (uc *SupplierUseCase) UnlinkProduct(ctx context.Context, productID string) (*dto.ProductResponse, error) {
	if err := validation.ID("product", productID); err != nil {
		return nil, err
	}
	return uc.setSupplier(ctx, productID, "")
}

func (uc *SupplierUseCase) setSupplier(ctx context.Context, productID, supplierID string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("Product not found")
	}
	if err := uc.products.SetSupplier(ctx, productID, supplierID); err != nil {
		return nil, err
	}
	product.SupplierID = supplierID
	zerolog.Ctx(ctx).Info().Str("product_id", productID).Str("supplier_id", supplierID).Msg("product supplier changed")
	return uc.resolver.Product(ctx, product, false)
}

func (uc *SupplierUseCase) get(ctx context.Context, id string) (*entity.Supplier, error) {
	if err := validation.ID("supplier", id); err != nil {
		return nil, err
	}
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFound("Supplier not found")
	}
	return supplier, nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
