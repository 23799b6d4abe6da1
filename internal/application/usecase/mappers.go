package usecase

import (
	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

// ToUserResponse vista pública de un usuario (sin hash de password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserSummary(u *entity.User) *dto.UserSummary {
	return &dto.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toSupplierSummary(s *entity.Supplier, detailed bool) *dto.SupplierSummary {
	sum := &dto.SupplierSummary{ID: s.ID, Name: s.Name, ContactPerson: s.ContactPerson}
	if detailed {
		sum.Phone = s.Phone
		sum.Email = s.Email
	}
	return sum
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		Quantity:         p.Quantity,
		Type:             p.Type,
		ReorderThreshold: p.ReorderThreshold,
		IsLowStock:       p.IsLowStock(),
		IsOutOfStock:     p.IsOutOfStock(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toTransactionResponse(t *entity.InventoryTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:               t.ID,
		ProductID:        t.ProductID,
		Type:             t.Type,
		Quantity:         t.Quantity,
		PreviousQuantity: t.PreviousQuantity,
		NewQuantity:      t.NewQuantity,
		Notes:            t.Notes,
		CreatedAt:        t.CreatedAt,
	}
}
