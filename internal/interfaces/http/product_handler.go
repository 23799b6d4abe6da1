package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/inventory"
	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	txs *inventory.TransactionUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, txs *inventory.TransactionUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, txs: txs}
}

// Create godoc
// @Summary      Crear producto o servicio
// @Description  Los servicios se guardan siempre con quantity 0.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody()
	}
	out, err := h.uc.Create(c.UserContext(), actor(c), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, out, kindLabel(out.Type)+" created successfully")
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, out, "")
}

// List godoc
// @Summary      Listar productos
// @Description  Filtros conjuntivos; valores inválidos se ignoran.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(10)
// @Param        search     query  string  false  "Nombre o descripción"
// @Param        type       query  string  false  "product | service"
// @Param        category   query  string  false  "ID de categoría"
// @Param        supplier   query  string  false  "ID de proveedor"
// @Param        minPrice   query  number  false  "Precio mínimo"
// @Param        maxPrice   query  number  false  "Precio máximo"
// @Param        lowStock   query  bool    false  "Solo en o bajo el umbral"
// @Param        sortBy     query  string  false  "name | price | quantity | type | createdAt | updatedAt"
// @Param        sortOrder  query  string  false  "asc | desc"
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), productQuery(c))
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// LowStock godoc
// @Summary      Productos con existencias bajas
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/v1/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	page, err := h.uc.LowStock(c.UserContext(), pageRequest(c))
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// OutOfStock godoc
// @Summary      Productos agotados
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/v1/products/out-of-stock [get]
func (h *ProductHandler) OutOfStock(c *fiber.Ctx) error {
	page, err := h.uc.OutOfStock(c.UserContext(), pageRequest(c))
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// ByCategory godoc
// @Summary      Productos de una categoría
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        categoryId  path   string  true   "ID de la categoría"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/category/{categoryId} [get]
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	page, err := h.uc.ByCategory(c.UserContext(), c.Params("categoryId"), pageRequest(c))
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// LowStockReport godoc
// @Summary      Reporte PDF de existencias bajas
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/low-stock/report [get]
func (h *ProductHandler) LowStockReport(c *fiber.Ctx) error {
	pdf, err := h.uc.LowStockReport(c.UserContext())
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("low-stock-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Un cambio de quantity registra un ajuste de inventario.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody()
	}
	out, err := h.uc.Update(c.UserContext(), actor(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, out, "Product/Service updated successfully")
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	product, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, nil, kindLabel(product.Type)+" deleted successfully")
}

// Transactions godoc
// @Summary      Historial de inventario de un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        page   query  int     false  "Página"  default(1)
// @Param        limit  query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.Response{data=[]dto.TransactionResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/{id}/transactions [get]
func (h *ProductHandler) Transactions(c *fiber.Ctx) error {
	page, err := h.txs.List(c.UserContext(), c.Params("id"), pageRequest(c))
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// RecordTransaction godoc
// @Summary      Registrar movimiento de inventario
// @Description  quantity es un delta: negativo en ventas, positivo en compras, cualquiera en ajustes.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del producto"
// @Param        body  body  dto.RecordTransactionRequest  true  "type, quantity, notes"
// @Success      201   {object}  dto.Response{data=dto.TransactionResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/products/{id}/transactions [post]
func (h *ProductHandler) RecordTransaction(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody()
	}
	out, err := h.txs.Record(c.UserContext(), actor(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, out, "Inventory transaction recorded successfully")
}

func kindLabel(productType string) string {
	if productType == entity.TypeService {
		return "Service"
	}
	return "Product"
}
