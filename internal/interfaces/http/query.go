package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
)

// pageRequest lee page, limit, sortBy y sortOrder; valores no numéricos usan el default.
func pageRequest(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Page:      c.QueryInt("page", dto.DefaultPage),
		Limit:     c.QueryInt("limit", dto.DefaultLimit),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	p.Normalize()
	return p
}

func productQuery(c *fiber.Ctx) dto.ProductQuery {
	return dto.ProductQuery{
		PageRequest: pageRequest(c),
		Search:      c.Query("search"),
		Type:        c.Query("type"),
		Category:    c.Query("category"),
		Supplier:    c.Query("supplier"),
		MinPrice:    c.Query("minPrice"),
		MaxPrice:    c.Query("maxPrice"),
		LowStock:    c.Query("lowStock"),
	}
}

func categoryQuery(c *fiber.Ctx) dto.CategoryQuery {
	return dto.CategoryQuery{
		PageRequest: pageRequest(c),
		Search:      c.Query("search"),
		Type:        c.Query("type"),
		IsActive:    c.Query("isActive"),
	}
}

func supplierQuery(c *fiber.Ctx) dto.SupplierQuery {
	return dto.SupplierQuery{PageRequest: pageRequest(c), Search: c.Query("search")}
}

func userQuery(c *fiber.Ctx) dto.UserQuery {
	return dto.UserQuery{PageRequest: pageRequest(c), Search: c.Query("search"), Role: c.Query("role")}
}
