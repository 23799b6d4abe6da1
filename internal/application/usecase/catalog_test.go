package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/testutil/memstore"
)

type fixture struct {
	store     *memstore.Store
	users     *usecase.UserUseCase
	cats      *usecase.CategoryUseCase
	suppliers *usecase.SupplierUseCase
	products  *usecase.ProductUseCase
	admin     usecase.Actor
	staff     usecase.Actor
}

func init() {
	usecase.BcryptCost = 4
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memstore.New()
	resolver := usecase.NewResolver(s.Categories(), s.Suppliers(), s.Users())
	f := &fixture{
		store:     s,
		users:     usecase.NewUserUseCase(s.Users()),
		cats:      usecase.NewCategoryUseCase(s.Categories(), resolver),
		suppliers: usecase.NewSupplierUseCase(s.Suppliers(), s.Products(), resolver),
		products:  usecase.NewProductUseCase(s.Products(), s.Categories(), s.Suppliers(), resolver, s.TxRunner(), nil),
	}
	ctx := context.Background()
	admin, err := f.users.Create(ctx, dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	staff, err := f.users.Create(ctx, dto.CreateUserRequest{Name: "Sam", Email: "sam@example.com", Password: "secret1"})
	require.NoError(t, err)
	f.admin = usecase.Actor{ID: admin.ID, Role: admin.Role}
	f.staff = usecase.Actor{ID: staff.ID, Role: staff.Role}
	return f
}

func (f *fixture) category(t *testing.T, name, typ string) *dto.CategoryResponse {
	t.Helper()
	c, err := f.cats.Create(context.Background(), f.admin, dto.CreateCategoryRequest{Name: name, Type: typ})
	require.NoError(t, err)
	return c
}

func (f *fixture) supplier(t *testing.T, email string) *dto.SupplierResponse {
	t.Helper()
	s, err := f.suppliers.Create(context.Background(), dto.CreateSupplierRequest{
		Name: "Acme", ContactPerson: "Wile", Phone: "+1 (555) 010-2000", Email: email, Address: "1 Desert Rd",
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) product(t *testing.T, in dto.CreateProductRequest) *dto.ProductResponse {
	t.Helper()
	p, err := f.products.Create(context.Background(), f.staff, in)
	require.NoError(t, err)
	return p
}

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func assertKind(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "se esperaba %v, se obtuvo %v", kind, err)
	if msg != "" {
		assert.Equal(t, msg, err.Error())
	}
}

// ── Ida y vuelta: Create → GetByID conserva cada campo de entrada ─────────────

func TestCreateLuegoGetByID_ConservaCampos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"categoria", func(t *testing.T) {
			in := dto.CreateCategoryRequest{Name: "Power Tools", Type: entity.TypeProduct}
			created, err := f.cats.Create(ctx, f.admin, in)
			require.NoError(t, err)
			got, err := f.cats.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, in.Name, got.Name)
			assert.Equal(t, in.Type, got.Type)
			assert.True(t, got.IsActive)
			assert.Equal(t, created, got)
		}},
		{"proveedor", func(t *testing.T) {
			in := dto.CreateSupplierRequest{
				Name: "Globex", ContactPerson: "Hank", Phone: "+57 (1) 555-0199",
				Email: "orders@globex.test", Address: "Cra 7 # 12-34",
			}
			created, err := f.suppliers.Create(ctx, in)
			require.NoError(t, err)
			got, err := f.suppliers.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, in.Name, got.Name)
			assert.Equal(t, in.ContactPerson, got.ContactPerson)
			assert.Equal(t, in.Phone, got.Phone)
			assert.Equal(t, in.Email, got.Email)
			assert.Equal(t, in.Address, got.Address)
			assert.Equal(t, created, got)
		}},
		{"producto", func(t *testing.T) {
			cat := f.category(t, "Hardware", entity.TypeProduct)
			sup := f.supplier(t, "sales@initech.test")
			in := dto.CreateProductRequest{
				Name:             "Cordless Drill",
				CategoryID:       cat.ID,
				Description:      "18V, two batteries",
				Price:            price("149.95"),
				Quantity:         intPtr(7),
				Type:             entity.TypeProduct,
				SupplierID:       sup.ID,
				ReorderThreshold: intPtr(3),
			}
			created, err := f.products.Create(ctx, f.staff, in)
			require.NoError(t, err)
			got, err := f.products.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, in.Name, got.Name)
			require.NotNil(t, got.Category)
			assert.Equal(t, in.CategoryID, got.Category.ID)
			assert.Equal(t, in.Description, got.Description)
			assert.True(t, in.Price.Equal(got.Price), "price %s != %s", in.Price, got.Price)
			assert.True(t, created.Price.Equal(got.Price))
			assert.Equal(t, *in.Quantity, got.Quantity)
			assert.Equal(t, in.Type, got.Type)
			require.NotNil(t, got.Supplier)
			assert.Equal(t, in.SupplierID, got.Supplier.ID)
			assert.Equal(t, *in.ReorderThreshold, got.ReorderThreshold)
			assert.False(t, got.IsLowStock)
		}},
		{"servicio", func(t *testing.T) {
			cat := f.category(t, "Repairs", entity.TypeService)
			in := dto.CreateProductRequest{
				Name:             "On-site repair",
				CategoryID:       cat.ID,
				Description:      "Per visit",
				Price:            price("80.50"),
				Type:             entity.TypeService,
				ReorderThreshold: intPtr(0),
			}
			created, err := f.products.Create(ctx, f.staff, in)
			require.NoError(t, err)
			got, err := f.products.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, in.Name, got.Name)
			assert.Equal(t, in.Description, got.Description)
			assert.True(t, in.Price.Equal(got.Price))
			assert.Equal(t, 0, got.Quantity)
			assert.Equal(t, 0, got.ReorderThreshold)
			assert.Nil(t, got.Supplier)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestProduct_PrecioConMasDeDosDecimales(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	_, err := f.products.Create(context.Background(), f.staff, dto.CreateProductRequest{
		Name: "Hammer", CategoryID: c.ID, Price: price("19.999"), Type: entity.TypeProduct,
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"price cannot have more than 2 decimal places"}, verr.Messages())

	page, err := f.products.List(context.Background(), dto.ProductQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

// ── Categorías ────────────────────────────────────────────────────────────────

func TestCategory_NombreDuplicadoSinDistinguirMayusculas(t *testing.T) {
	f := newFixture(t)
	created := f.category(t, "Tools", entity.TypeProduct)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, "Ada", created.CreatedBy.Name)

	_, err := f.cats.Create(context.Background(), f.admin, dto.CreateCategoryRequest{Name: "tools", Type: entity.TypeProduct})
	assertKind(t, err, domain.ErrConflict, "Category with this name already exists")
}

func TestCategory_TipoInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.cats.Create(context.Background(), f.admin, dto.CreateCategoryRequest{Name: "X", Type: "gadget"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages(), "type must be either product or service")
}

func TestCategory_UpdateMismoNombreNoEsConflicto(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	f.category(t, "Repairs", entity.TypeService)

	out, err := f.cats.Update(context.Background(), c.ID, dto.UpdateCategoryRequest{Name: strPtr("TOOLS")})
	require.NoError(t, err)
	assert.Equal(t, "TOOLS", out.Name)

	_, err = f.cats.Update(context.Background(), c.ID, dto.UpdateCategoryRequest{Name: strPtr("repairs")})
	assertKind(t, err, domain.ErrConflict, "Category with this name already exists")
}

func TestCategory_DeleteEsBorradoLogico(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	require.NoError(t, f.cats.Delete(context.Background(), f.admin, c.ID))

	got, err := f.cats.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	page, err := f.cats.List(context.Background(), dto.CategoryQuery{IsActive: "true"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestCategory_IDInvalidoYNoEncontrado(t *testing.T) {
	f := newFixture(t)
	_, err := f.cats.GetByID(context.Background(), "abc")
	assertKind(t, err, domain.ErrInvalidInput, "Invalid category ID")

	_, err = f.cats.GetByID(context.Background(), "6b1f1c8e-8d9a-4a36-9a3e-2f3c1f0f6a11")
	assertKind(t, err, domain.ErrNotFound, "Category not found")
}

// ── Productos ─────────────────────────────────────────────────────────────────

func TestProduct_ServicioQuedaConCantidadCero(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Consulting", entity.TypeService)
	p := f.product(t, dto.CreateProductRequest{
		Name: "Audit", CategoryID: c.ID, Price: price("150.00"), Quantity: intPtr(40), Type: entity.TypeService,
	})
	assert.Equal(t, 0, p.Quantity)
	assert.False(t, p.IsLowStock)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Consulting", p.Category.Name)
}

func TestProduct_CategoriaInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.Create(context.Background(), f.staff, dto.CreateProductRequest{
		Name: "Hammer", CategoryID: "6b1f1c8e-8d9a-4a36-9a3e-2f3c1f0f6a11", Price: price("1"), Type: entity.TypeProduct,
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"category does not exist"}, verr.Messages())
}

func TestProduct_PrecioNegativoYErroresAgregados(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.Create(context.Background(), f.staff, dto.CreateProductRequest{
		Price: price("-1"), Type: "gadget",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Fields), 3)
	assert.Contains(t, verr.Messages(), "price cannot be negative")
}

func TestProduct_StockInicialRegistraCompra(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	p := f.product(t, dto.CreateProductRequest{
		Name: "Hammer", CategoryID: c.ID, Price: price("9.99"), Quantity: intPtr(12), Type: entity.TypeProduct,
	})
	txs, total, err := f.store.Transactions().ListByProduct(context.Background(), p.ID, defaultOpts())
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, entity.TransactionPurchase, txs[0].Type)
	assert.Equal(t, 12, txs[0].Quantity)
	assert.Equal(t, 0, txs[0].PreviousQuantity)
}

func TestProduct_UpdateCantidadRegistraAjuste(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	p := f.product(t, dto.CreateProductRequest{
		Name: "Hammer", CategoryID: c.ID, Price: price("9.99"), Quantity: intPtr(12), Type: entity.TypeProduct,
	})
	out, err := f.products.Update(context.Background(), f.staff, p.ID, dto.UpdateProductRequest{Quantity: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Quantity)
	assert.True(t, out.IsLowStock)

	txs, total, err := f.store.Transactions().ListByProduct(context.Background(), p.ID, defaultOpts())
	require.NoError(t, err)
	require.Equal(t, 2, total)
	assert.Equal(t, entity.TransactionAdjustment, txs[0].Type)
	assert.Equal(t, -9, txs[0].Quantity)
}

func TestProduct_UpdateATipoServicioPoneCantidadCero(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	p := f.product(t, dto.CreateProductRequest{
		Name: "Install", CategoryID: c.ID, Price: price("20"), Quantity: intPtr(7), Type: entity.TypeProduct,
	})
	out, err := f.products.Update(context.Background(), f.staff, p.ID, dto.UpdateProductRequest{Type: strPtr("service")})
	require.NoError(t, err)
	assert.Equal(t, entity.TypeService, out.Type)
	assert.Equal(t, 0, out.Quantity)
}

func TestProduct_LowStockYOutOfStock(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	s := f.category(t, "Consulting", entity.TypeService)
	f.product(t, dto.CreateProductRequest{Name: "A", CategoryID: c.ID, Price: price("1"), Quantity: intPtr(3), Type: entity.TypeProduct})
	f.product(t, dto.CreateProductRequest{Name: "B", CategoryID: c.ID, Price: price("1"), Quantity: intPtr(0), Type: entity.TypeProduct})
	f.product(t, dto.CreateProductRequest{Name: "C", CategoryID: c.ID, Price: price("1"), Quantity: intPtr(50), Type: entity.TypeProduct})
	f.product(t, dto.CreateProductRequest{Name: "D", CategoryID: s.ID, Price: price("1"), Type: entity.TypeService})

	low, err := f.products.LowStock(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, low.Items, 2)
	assert.Equal(t, "B", low.Items[0].Name)
	assert.Equal(t, "A", low.Items[1].Name)

	out, err := f.products.OutOfStock(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "B", out.Items[0].Name)

	list, err := f.products.List(context.Background(), dto.ProductQuery{LowStock: "true"})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

func TestProduct_ListPaginaYFiltraPorPrecio(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	for i, v := range []string{"5", "10", "15", "20", "25"} {
		f.product(t, dto.CreateProductRequest{Name: "P" + v, CategoryID: c.ID, Price: price(v), Quantity: intPtr(i + 10), Type: entity.TypeProduct})
	}
	page, err := f.products.List(context.Background(), dto.ProductQuery{
		PageRequest: dto.PageRequest{Page: 2, Limit: 2, SortBy: "price", SortOrder: "asc"},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "P15", page.Items[0].Name)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPrevPage)

	filtered, err := f.products.List(context.Background(), dto.ProductQuery{MinPrice: "10", MaxPrice: "20"})
	require.NoError(t, err)
	assert.Len(t, filtered.Items, 3)
}

func TestProduct_ByCategoryInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.ByCategory(context.Background(), "6b1f1c8e-8d9a-4a36-9a3e-2f3c1f0f6a11", dto.PageRequest{})
	assertKind(t, err, domain.ErrNotFound, "Category not found")
}

func TestProduct_DeleteDevuelveProducto(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tools", entity.TypeProduct)
	p := f.product(t, dto.CreateProductRequest{Name: "Saw", CategoryID: c.ID, Price: price("3"), Type: entity.TypeProduct})

	deleted, err := f.products.Delete(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Saw", deleted.Name)

	_, err = f.products.GetByID(context.Background(), p.ID)
	assertKind(t, err, domain.ErrNotFound, "Product not found")
}

func TestProduct_ReporteSinGenerador(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.LowStockReport(context.Background())
	assertKind(t, err, domain.ErrNotFound, "")
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func TestSupplier_EmailDuplicado(t *testing.T) {
	f := newFixture(t)
	f.supplier(t, "sales@acme.test")
	_, err := f.suppliers.Create(context.Background(), dto.CreateSupplierRequest{
		Name: "Other", ContactPerson: "Road", Phone: "555-0100", Email: " SALES@acme.test ", Address: "2 Mesa",
	})
	assertKind(t, err, domain.ErrConflict, "Supplier with this email already exists")
}

func TestSupplier_TelefonoInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.suppliers.Create(context.Background(), dto.CreateSupplierRequest{
		Name: "Acme", ContactPerson: "Wile", Phone: "call me", Email: "a@acme.test", Address: "1 Desert Rd",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages(), "phone must be a valid phone number")
}

func TestSupplier_DeleteBloqueadoHastaDesvincular(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sup := f.supplier(t, "sales@acme.test")
	c := f.category(t, "Tools", entity.TypeProduct)
	p := f.product(t, dto.CreateProductRequest{
		Name: "Anvil", CategoryID: c.ID, Price: price("99"), Quantity: intPtr(1), Type: entity.TypeProduct, SupplierID: sup.ID,
	})
	require.NotNil(t, p.Supplier)
	assert.Empty(t, p.Supplier.Email, "el resumen en listados no incluye contacto")

	err := f.suppliers.Delete(ctx, sup.ID)
	assertKind(t, err, domain.ErrConflict,
		"Cannot delete supplier. 1 product(s) are linked to this supplier. Please unlink products first.")

	out, err := f.suppliers.UnlinkProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, out.Supplier)

	require.NoError(t, f.suppliers.Delete(ctx, sup.ID))
	_, err = f.suppliers.GetByID(ctx, sup.ID)
	assertKind(t, err, domain.ErrNotFound, "Supplier not found")
}

func TestSupplier_LinkProductYStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sup := f.supplier(t, "sales@acme.test")
	c := f.category(t, "Tools", entity.TypeProduct)
	s := f.category(t, "Consulting", entity.TypeService)
	a := f.product(t, dto.CreateProductRequest{Name: "A", CategoryID: c.ID, Price: price("1"), Quantity: intPtr(0), Type: entity.TypeProduct})
	b := f.product(t, dto.CreateProductRequest{Name: "B", CategoryID: s.ID, Price: price("1"), Type: entity.TypeService})

	_, err := f.suppliers.LinkProduct(ctx, dto.LinkProductRequest{SupplierID: sup.ID, ProductID: "nope"})
	assertKind(t, err, domain.ErrInvalidInput, "Invalid supplier ID or product ID")

	for _, id := range []string{a.ID, b.ID} {
		out, err := f.suppliers.LinkProduct(ctx, dto.LinkProductRequest{SupplierID: sup.ID, ProductID: id})
		require.NoError(t, err)
		require.NotNil(t, out.Supplier)
		assert.Equal(t, sup.ID, out.Supplier.ID)
	}

	stats, err := f.suppliers.Stats(ctx, sup.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.SupplierStatsResponse{
		TotalProducts: 1, TotalServices: 1, LowStockProducts: 1, OutOfStockProducts: 1, TotalItems: 2,
	}, stats)

	res, pagination, err := f.suppliers.Products(ctx, sup.ID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, res.Products, 2)
	assert.Equal(t, "sales@acme.test", res.Supplier.Email)
	assert.Equal(t, 2, pagination.TotalItems)

	detail, err := f.products.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Supplier)
	assert.Equal(t, "sales@acme.test", detail.Supplier.Email, "el detalle incluye contacto del proveedor")
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

func TestUser_NoAdminNoEditaAOtros(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Update(context.Background(), f.staff, f.admin.ID, dto.UpdateUserRequest{Name: strPtr("X")})
	assertKind(t, err, domain.ErrForbidden, "Not authorized to update this user")
}

func TestUser_NoAdminNoCambiaSuRol(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Update(context.Background(), f.staff, f.staff.ID, dto.UpdateUserRequest{Role: strPtr(entity.RoleAdmin)})
	assertKind(t, err, domain.ErrForbidden, "Only admins can change user roles")

	out, err := f.users.Update(context.Background(), f.staff, f.staff.ID, dto.UpdateUserRequest{Name: strPtr("Samuel")})
	require.NoError(t, err)
	assert.Equal(t, "Samuel", out.Name)
}

func TestUser_AdminCambiaRol(t *testing.T) {
	f := newFixture(t)
	out, err := f.users.Update(context.Background(), f.admin, f.staff.ID, dto.UpdateUserRequest{Role: strPtr(entity.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestUser_EmailDuplicadoEnUpdate(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Update(context.Background(), f.staff, f.staff.ID, dto.UpdateUserRequest{Email: strPtr("ADA@example.com")})
	assertKind(t, err, domain.ErrConflict, "User with this email already exists")
}

func TestUser_NadieSeEliminaASiMismo(t *testing.T) {
	f := newFixture(t)
	err := f.users.Delete(context.Background(), f.admin, f.admin.ID)
	assertKind(t, err, domain.ErrInvalidInput, "You cannot delete your own account")

	require.NoError(t, f.users.Delete(context.Background(), f.admin, f.staff.ID))
	_, err = f.users.GetByID(context.Background(), f.staff.ID)
	assertKind(t, err, domain.ErrNotFound, "User not found")
}

func TestUser_PasswordMayorA72Bytes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.users.Create(ctx, dto.CreateUserRequest{
		Name: "Long", Email: "long@example.com", Password: strings.Repeat("a", 80),
	})
	assertKind(t, err, domain.ErrInvalidInput, "")

	long := strings.Repeat("a", 80)
	_, err = f.users.Update(ctx, f.staff, f.staff.ID, dto.UpdateUserRequest{Password: &long})
	assertKind(t, err, domain.ErrInvalidInput, "")

	_, err = usecase.HashPassword(strings.Repeat("é", 40))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"password cannot exceed 72 bytes"}, verr.Messages())
}

func TestUser_ListFiltraPorRol(t *testing.T) {
	f := newFixture(t)
	page, err := f.users.List(context.Background(), dto.UserQuery{Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ada@example.com", page.Items[0].Email)
}
