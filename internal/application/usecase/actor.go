package usecase

import "github.com/jhoicas/erp-catalog-api/internal/domain/entity"

// Actor usuario autenticado que ejecuta la operación.
type Actor struct {
	ID   string
	Role string
}

// IsAdmin indica si el actor tiene rol admin.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}
