package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
)

const msgInternal = "Internal server error"

// respond envelope de éxito.
func respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(dto.Response{Success: true, Data: data, Message: message})
}

// respondPage envelope de listado con metadatos de paginación.
func respondPage[T any](c *fiber.Ctx, page *dto.Page[T]) error {
	return c.JSON(dto.Response{Success: true, Data: page.Items, Pagination: &page.Pagination})
}

// reject respuesta de error del gate de acceso (sin pasar por el ErrorHandler).
func reject(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Code: code, Message: message})
}

// ErrorHandler traduce los errores devueltos por los handlers al envelope uniforme.
// Con exposeInternal se incluye el detalle de los errores no clasificados (solo desarrollo).
func ErrorHandler(exposeInternal bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err)
		if status >= fiber.StatusInternalServerError {
			zerolog.Ctx(c.UserContext()).Error().Err(err).
				Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
			if exposeInternal {
				body.Message = err.Error()
			}
		}
		return c.Status(status).JSON(body)
	}
}

func classify(err error) (int, dto.Response) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		msgs := verr.Messages()
		return fiber.StatusBadRequest, dto.Response{
			Code:    "VALIDATION",
			Message: "Validation failed",
			Error:   strings.Join(msgs, ", "),
			Errors:  msgs,
		}
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ferr.Code, dto.Response{Error: ferr.Message}
	}
	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.Response{Code: "INVALID_INPUT", Error: msg}
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, dto.Response{Code: "CONFLICT", Error: msg}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.Response{Code: "UNAUTHORIZED", Error: msg}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.Response{Code: "FORBIDDEN", Error: msg}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.Response{Code: "NOT_FOUND", Error: msg}
	}
	return fiber.StatusInternalServerError, dto.Response{Code: "INTERNAL", Error: msgInternal}
}

// badBody error uniforme para JSON mal formado.
func badBody() error {
	return domain.NewInvalidInput("Invalid request body")
}
