package entity

import "time"

// Tipos de transacción de inventario.
const (
	TransactionSale       = "sale"
	TransactionPurchase   = "purchase"
	TransactionAdjustment = "adjustment"
)

// ValidTransactionType indica si t es sale, purchase o adjustment.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionSale, TransactionPurchase, TransactionAdjustment:
		return true
	}
	return false
}

// InventoryTransaction registro de auditoría de un cambio de existencias.
type InventoryTransaction struct {
	ID               string
	ProductID        string
	Type             string
	Quantity         int // delta, distinto de 0
	PreviousQuantity int
	NewQuantity      int
	Notes            string
	CreatedBy        string
	CreatedAt        time.Time
}

// NewInventoryTransaction registra el paso de prev a next. El ID lo asigna el repositorio.
func NewInventoryTransaction(productID, txType string, prev, next int, notes, createdBy string, at time.Time) *InventoryTransaction {
	return &InventoryTransaction{
		ProductID:        productID,
		Type:             txType,
		Quantity:         next - prev,
		PreviousQuantity: prev,
		NewQuantity:      next,
		Notes:            notes,
		CreatedBy:        createdBy,
		CreatedAt:        at,
	}
}
