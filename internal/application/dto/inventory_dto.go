package dto

import "time"

// RecordTransactionRequest entrada para registrar un movimiento de existencias.
// Quantity es un delta: positivo suma, negativo resta.
type RecordTransactionRequest struct {
	Type     string `json:"type" validate:"required,oneof=sale purchase adjustment"`
	Quantity int    `json:"quantity" validate:"required,ne=0,min=-2147483647,max=2147483647"`
	Notes    string `json:"notes" validate:"max=200"`
}

// TransactionResponse salida de una transacción de inventario.
type TransactionResponse struct {
	ID               string       `json:"id"`
	ProductID        string       `json:"productId"`
	Type             string       `json:"type"`
	Quantity         int          `json:"quantity"`
	PreviousQuantity int          `json:"previousQuantity"`
	NewQuantity      int          `json:"newQuantity"`
	Notes            string       `json:"notes,omitempty"`
	CreatedBy        *UserSummary `json:"createdBy,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}
