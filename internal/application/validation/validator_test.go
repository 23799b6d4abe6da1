package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/validation"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
)

func TestStruct_AgregaTodosLosErrores(t *testing.T) {
	err := validation.Struct(dto.CreateProductRequest{Type: "gadget"})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.ElementsMatch(t, []string{
		"name is required",
		"category is required",
		"price is required",
		"type must be either product or service",
	}, verr.Messages())
}

func TestStruct_PrecioNegativo(t *testing.T) {
	price := decimal.NewFromInt(-1)
	err := validation.Struct(dto.CreateProductRequest{
		Name:       "Drill",
		CategoryID: "6b1f1c8e-8d9a-4a36-9a3e-2f3c1f0f6a11",
		Price:      &price,
		Type:       "product",
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"price cannot be negative"}, verr.Messages())
}

func TestStruct_PrecioCeroEsValido(t *testing.T) {
	price := decimal.Zero
	err := validation.Struct(dto.CreateProductRequest{
		Name:       "Consulting",
		CategoryID: "6b1f1c8e-8d9a-4a36-9a3e-2f3c1f0f6a11",
		Price:      &price,
		Type:       "service",
	})
	assert.NoError(t, err)
}

func TestStruct_ProveedorTelefonoYEmail(t *testing.T) {
	err := validation.Struct(dto.CreateSupplierRequest{
		Name:          "ACME",
		ContactPerson: "Jane",
		Phone:         "call me",
		Email:         "not-an-email",
		Address:       "Main St 1",
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"phone must be a valid phone number",
		"email must be a valid email",
	}, verr.Messages())

	ok := dto.CreateSupplierRequest{
		Name: "ACME", ContactPerson: "Jane", Phone: "+1 (555) 010-2000",
		Email: "sales@acme.com", Address: "Main St 1",
	}
	assert.NoError(t, validation.Struct(ok))
}

func TestID(t *testing.T) {
	assert.NoError(t, validation.ID("product", "6b1f1c8e-8d9a-4a36-9a3e-2f3c1f0f6a11"))
	err := validation.ID("product", "123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Invalid product ID")
	assert.False(t, validation.IsID(""))
}

func TestStruct_PasswordLimiteBcrypt(t *testing.T) {
	base := dto.RegisterRequest{Name: "Ada", Email: "ada@example.com"}

	cases := []struct {
		name     string
		password string
		want     string
	}{
		{"ascii largo", strings.Repeat("a", 80), "password cannot exceed 72 characters"},
		{"multibyte supera 72 bytes", strings.Repeat("ñ", 40), "password cannot exceed 72 bytes"},
		{"justo 72", strings.Repeat("a", 72), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			in.Password = tc.password
			err := validation.Struct(in)
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, []string{tc.want}, verr.Messages())
		})
	}

	long := strings.Repeat("a", 73)
	err := validation.Struct(dto.UpdateUserRequest{Password: &long})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStruct_PrecioEscalaYMaximo(t *testing.T) {
	cases := []struct {
		price string
		want  []string
	}{
		{"19.99", nil},
		{"19.990", nil},
		{"999999999999.99", nil},
		{"19.999", []string{"price cannot have more than 2 decimal places"}},
		{"19.9999999999999999", []string{"price cannot have more than 2 decimal places"}},
		{"1000000000000", []string{"price cannot exceed 999999999999.99"}},
	}
	for _, tc := range cases {
		t.Run(tc.price, func(t *testing.T) {
			p := decimal.RequireFromString(tc.price)
			create := dto.CreateProductRequest{
				Name:       "Drill",
				CategoryID: "6b1f1c8e-8d9a-4a36-9a3e-2f3c1f0f6a11",
				Price:      &p,
				Type:       "product",
			}
			for _, in := range []any{create, dto.UpdateProductRequest{Price: &p}} {
				err := validation.Struct(in)
				if tc.want == nil {
					assert.NoError(t, err)
					continue
				}
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tc.want, verr.Messages())
			}
		})
	}
}

func TestStruct_EnterosDentroDeInteger(t *testing.T) {
	huge := 2147483648
	err := validation.Struct(dto.UpdateProductRequest{Quantity: &huge, ReorderThreshold: &huge})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"quantity cannot exceed 2147483647",
		"reorderThreshold cannot exceed 2147483647",
	}, verr.Messages())

	err = validation.Struct(dto.RecordTransactionRequest{Type: "purchase", Quantity: huge})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"quantity cannot exceed 2147483647"}, verr.Messages())

	err = validation.Struct(dto.RecordTransactionRequest{Type: "sale", Quantity: -huge})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"quantity must be at least -2147483647"}, verr.Messages())
}
