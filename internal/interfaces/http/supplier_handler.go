package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
)

// SupplierHandler maneja proveedores y su vínculo con productos.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(10)
// @Param        search     query  string  false  "Nombre, contacto o email"
// @Param        sortBy     query  string  false  "name | contactPerson | email | createdAt | updatedAt"
// @Param        sortOrder  query  string  false  "asc | desc"
// @Success      200  {object}  dto.Response{data=[]dto.SupplierResponse}
// @Router       /api/v1/supplier [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), supplierQuery(c))
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         supplier
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/v1/supplier [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody()
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, out, "Supplier created successfully")
}

// GetByID godoc
// @Summary      Obtener proveedor
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/supplier/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, out, "")
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         supplier
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/supplier/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody()
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, out, "Supplier updated successfully")
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Description  Falla si hay productos vinculados; desvincúlelos primero.
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/supplier/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, nil, "Supplier deleted successfully")
}

// Products godoc
// @Summary      Productos de un proveedor
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del proveedor"
// @Param        page   query  int     false  "Página"  default(1)
// @Param        limit  query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.Response{data=dto.SupplierProductsResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/supplier/{id}/products [get]
func (h *SupplierHandler) Products(c *fiber.Ctx) error {
	out, pagination, err := h.uc.Products(c.UserContext(), c.Params("id"), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.Response{Success: true, Data: out, Pagination: pagination})
}

// Stats godoc
// @Summary      Estadísticas de un proveedor
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response{data=dto.SupplierStatsResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/supplier/{id}/stats [get]
func (h *SupplierHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, out, "")
}

// LinkProduct godoc
// @Summary      Vincular producto a proveedor
// @Tags         supplier
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LinkProductRequest  true  "supplierId, productId"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/supplier/link-product [post]
func (h *SupplierHandler) LinkProduct(c *fiber.Ctx) error {
	var in dto.LinkProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody()
	}
	out, err := h.uc.LinkProduct(c.UserContext(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, out, "Product linked to supplier successfully")
}

// UnlinkProduct godoc
// @Summary      Desvincular producto de su proveedor
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/supplier/unlink-product/{productId} [delete]
func (h *SupplierHandler) UnlinkProduct(c *fiber.Ctx) error {
	out, err := h.uc.UnlinkProduct(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, out, "Product unlinked from supplier successfully")
}
