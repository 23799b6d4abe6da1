// Package inventory registra transacciones de existencias (venta, compra, ajuste)
// de forma transaccional con bloqueo de fila sobre el producto.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/ports"
	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
	"github.com/jhoicas/erp-catalog-api/internal/application/validation"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

// TransactionUseCase registra y consulta transacciones de inventario.
type TransactionUseCase struct {
	txRunner ports.TxRunner
	products repository.ProductRepository
	txRepo   repository.InventoryTransactionRepository
	resolver *usecase.Resolver
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	txRunner ports.TxRunner,
	products repository.ProductRepository,
	txRepo repository.InventoryTransactionRepository,
	resolver *usecase.Resolver,
) *TransactionUseCase {
	return &TransactionUseCase{txRunner: txRunner, products: products, txRepo: txRepo, resolver: resolver}
}

// Record aplica el delta sobre la cantidad del producto y guarda la transacción.
// Ventas restan (delta < 0), compras suman (delta > 0), ajustes en cualquier sentido.
func (uc *TransactionUseCase) Record(ctx context.Context, actor usecase.Actor, productID string, in dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	if err := validation.ID("product", productID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkSign(in.Type, in.Quantity); err != nil {
		return nil, err
	}

	var rec *entity.InventoryTransaction
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, txs repository.InventoryTransactionRepository) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE) para serializar cambios de existencias
		product, err := products.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewNotFound("Product not found")
		}
		if product.Type != entity.TypeProduct {
			return domain.NewInvalidInput("Services do not track stock")
		}
		newQty := product.Quantity + in.Quantity
		if newQty < 0 {
			return domain.NewInvalidInput(fmt.Sprintf("%s: available %d, requested %d",
				domain.ErrInsufficientStock.Error(), product.Quantity, -in.Quantity))
		}
		if newQty > entity.MaxQuantity {
			return domain.NewInvalidInput(fmt.Sprintf("Stock cannot exceed %d", entity.MaxQuantity))
		}
		if err := products.UpdateQuantity(ctx, productID, newQty); err != nil {
			return err
		}
		rec = entity.NewInventoryTransaction(productID, in.Type, product.Quantity, newQty, in.Notes, actor.ID, time.Now())
		return txs.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().
		Str("product_id", productID).
		Str("type", rec.Type).
		Int("delta", rec.Quantity).
		Int("new_quantity", rec.NewQuantity).
		Msg("inventory transaction recorded")

	out, err := uc.resolver.Transactions(ctx, []*entity.InventoryTransaction{rec})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// List transacciones de un producto, las más recientes primero.
func (uc *TransactionUseCase) List(ctx context.Context, productID string, page dto.PageRequest) (*dto.Page[dto.TransactionResponse], error) {
	if err := validation.ID("product", productID); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("Product not found")
	}
	page.Normalize()
	opts := repository.ListOptions{Limit: page.Limit, Offset: page.Offset(), SortBy: "createdAt", SortDesc: true}
	list, total, err := uc.txRepo.ListByProduct(ctx, productID, opts)
	if err != nil {
		return nil, err
	}
	items, err := uc.resolver.Transactions(ctx, list)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, page, total), nil
}

func checkSign(txType string, delta int) error {
	switch {
	case txType == entity.TransactionSale && delta > 0:
		return domain.NewValidationError("quantity", "quantity must be negative for a sale")
	case txType == entity.TransactionPurchase && delta < 0:
		return domain.NewValidationError("quantity", "quantity must be positive for a purchase")
	}
	return nil
}
