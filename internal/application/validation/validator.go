// Package validation traduce las reglas declaradas en los DTOs (tags validate)
// a un domain.ValidationError con todos los campos inválidos.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)

// Límites de la columna price NUMERIC(14, 2) y del hash bcrypt.
const (
	PriceScale     = 2
	MaxPasswordLen = 72
)

// MaxPrice mayor precio que admite NUMERIC(14, 2).
var MaxPrice = decimal.RequireFromString("999999999999.99")

var std = New()

// Validator envoltorio de validator/v10 con los tags propios del catálogo.
type Validator struct {
	v *validator.Validate
}

// New construye un Validator con los tags phone, catalog_type y bcrypt_len, y la regla de precio de productos.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// decimal.Decimal se valida como float64 para poder usar gte/lte.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("catalog_type", func(fl validator.FieldLevel) bool {
		return entity.ValidCatalogType(fl.Field().String())
	})
	// max cuenta runas; bcrypt limita bytes.
	_ = v.RegisterValidation("bcrypt_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordLen
	})
	v.RegisterStructValidation(priceRules, dto.CreateProductRequest{}, dto.UpdateProductRequest{})
	return &Validator{v: v}
}

// priceRules revisa el decimal exacto: la conversión a float64 de gte no ve la escala.
func priceRules(sl validator.StructLevel) {
	var price *decimal.Decimal
	switch in := sl.Current().Interface().(type) {
	case dto.CreateProductRequest:
		price = in.Price
	case dto.UpdateProductRequest:
		price = in.Price
	}
	if price == nil {
		return
	}
	if !price.Equal(price.Truncate(PriceScale)) {
		sl.ReportError(price, "price", "Price", "price_scale", fmt.Sprint(PriceScale))
	}
	if price.GreaterThan(MaxPrice) {
		sl.ReportError(price, "price", "Price", "price_max", MaxPrice.String())
	}
}

// Struct valida s y devuelve *domain.ValidationError con un mensaje por campo, o nil.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

// Struct valida con el Validator por defecto.
func Struct(s any) error {
	return std.Struct(s)
}

// ID valida que id sea un UUID; field se usa en el mensaje.
func ID(field, id string) error {
	if !IsID(id) {
		return domain.NewInvalidInput(fmt.Sprintf("Invalid %s ID", field))
	}
	return nil
}

// IsID indica si s es un UUID válido.
func IsID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s cannot be negative", field)
	case "ne":
		return fmt.Sprintf("%s cannot be %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid":
		return fmt.Sprintf("%s must be a valid ID", field)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	case "catalog_type":
		return fmt.Sprintf("%s must be either product or service", field)
	case "bcrypt_len":
		return fmt.Sprintf("%s cannot exceed %d bytes", field, MaxPasswordLen)
	case "price_scale":
		return fmt.Sprintf("%s cannot have more than %s decimal places", field, fe.Param())
	case "price_max":
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	default:
		return fmt.Sprintf("invalid %s", field)
	}
}
