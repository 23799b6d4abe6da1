package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/validation"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

const defaultSortField = "createdAt"

var (
	productSortFields  = sortFields("name", "price", "quantity", "type", "createdAt", "updatedAt")
	categorySortFields = sortFields("name", "type", "createdAt", "updatedAt")
	supplierSortFields = sortFields("name", "contactPerson", "email", "createdAt", "updatedAt")
	userSortFields     = sortFields("name", "email", "role", "createdAt", "updatedAt")
)

func sortFields(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// listOptions normaliza la página y resuelve el orden contra la lista permitida.
// Un sortBy desconocido cae en createdAt descendente.
func listOptions(p *dto.PageRequest, allowed map[string]struct{}) repository.ListOptions {
	p.Normalize()
	opts := repository.ListOptions{
		Limit:    p.Limit,
		Offset:   p.Offset(),
		SortBy:   defaultSortField,
		SortDesc: true,
	}
	if _, ok := allowed[p.SortBy]; ok {
		opts.SortBy = p.SortBy
		opts.SortDesc = p.SortDesc()
	}
	return opts
}

// BuildProductFilter traduce los parámetros crudos a un filtro conjuntivo.
// Tipos, IDs y precios inválidos se ignoran en lugar de rechazar la petición.
func BuildProductFilter(q dto.ProductQuery) repository.ProductFilter {
	f := repository.ProductFilter{Search: strings.TrimSpace(q.Search)}
	if entity.ValidCatalogType(q.Type) {
		f.Type = q.Type
	}
	if validation.IsID(q.Category) {
		f.CategoryID = q.Category
	}
	if validation.IsID(q.Supplier) {
		f.SupplierID = q.Supplier
	}
	f.MinPrice = parsePrice(q.MinPrice)
	f.MaxPrice = parsePrice(q.MaxPrice)
	if truthy(q.LowStock) {
		f.LowStock = true
		f.Type = entity.TypeProduct
	}
	return f
}

func parsePrice(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true
	}
	return false
}

func buildCategoryFilter(q dto.CategoryQuery) repository.CategoryFilter {
	f := repository.CategoryFilter{Search: strings.TrimSpace(q.Search)}
	if entity.ValidCatalogType(q.Type) {
		f.Type = q.Type
	}
	switch strings.ToLower(strings.TrimSpace(q.IsActive)) {
	case "true", "1":
		v := true
		f.IsActive = &v
	case "false", "0":
		v := false
		f.IsActive = &v
	}
	return f
}

func buildUserFilter(q dto.UserQuery) repository.UserFilter {
	f := repository.UserFilter{Search: strings.TrimSpace(q.Search)}
	if entity.ValidRole(q.Role) {
		f.Role = q.Role
	}
	return f
}
