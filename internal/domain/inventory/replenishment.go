// Package inventory servicios de dominio sobre existencias.
package inventory

import "github.com/shopspring/decimal"

// ReorderQuantity unidades a pedir para llevar el producto al doble de su umbral.
// Con umbral 0 el objetivo es una unidad.
func ReorderQuantity(quantity, threshold int) int {
	target := threshold * 2
	if target < 1 {
		target = 1
	}
	if quantity >= target {
		return 0
	}
	return target - quantity
}

// ReplenishmentCost costo estimado de reponer units al precio unitario vigente.
func ReplenishmentCost(units int, unitPrice decimal.Decimal) decimal.Decimal {
	if units <= 0 {
		return decimal.Zero
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(units)))
}
