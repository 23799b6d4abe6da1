package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-catalog-api/internal/application/auth"
	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/inventory"
	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/erp-catalog-api/internal/interfaces/http"
	"github.com/jhoicas/erp-catalog-api/internal/testutil/memstore"
	"github.com/jhoicas/erp-catalog-api/pkg/jwt"
	"github.com/jhoicas/erp-catalog-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "erp-catalog-test"
	testExpMin    = 60
)

var jwtCfg = auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}

func init() {
	usecase.BcryptCost = 4
}

// testServer app completa sobre el store en memoria, con un admin y un staff sembrados.
type testServer struct {
	app        *fiber.App
	store      *memstore.Store
	admin      *dto.UserResponse
	staff      *dto.UserResponse
	adminToken string
	staffToken string
}

// envelope respuesta decodificada; Data queda cruda para decodificarla según el endpoint.
type envelope struct {
	Success    bool            `json:"success"`
	Code       string          `json:"code"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Errors     []string        `json:"errors"`
	Pagination *dto.Pagination `json:"pagination"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := memstore.New()
	resolver := usecase.NewResolver(s.Categories(), s.Suppliers(), s.Users())
	authUC := auth.NewAuthUseCase(s.Users(), jwtCfg)
	userUC := usecase.NewUserUseCase(s.Users())

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(false)})
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(logger.NewWithWriter(io.Discard, "error")))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CategoryUC: usecase.NewCategoryUseCase(s.Categories(), resolver),
		SupplierUC: usecase.NewSupplierUseCase(s.Suppliers(), s.Products(), resolver),
		ProductUC: usecase.NewProductUseCase(s.Products(), s.Categories(), s.Suppliers(), resolver,
			s.TxRunner(), pdf.NewMarotoPDFGenerator("ERP Catalog")),
		TransactionUC: inventory.NewTransactionUseCase(s.TxRunner(), s.Products(), s.Transactions(), resolver),
		Authenticator: authUC,
	})

	ctx := context.Background()
	admin, err := userUC.Create(ctx, dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	staff, err := userUC.Create(ctx, dto.CreateUserRequest{Name: "Sam", Email: "sam@example.com", Password: "secret1"})
	require.NoError(t, err)

	return &testServer{
		app:        app,
		store:      s,
		admin:      admin,
		staff:      staff,
		adminToken: tokenFor(t, admin.ID, admin.Role),
		staffToken: tokenFor(t, staff.ID, staff.Role),
	}
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := jwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// do lanza la petición y decodifica el envelope.
func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.Header.Get(fiber.HeaderContentType) != "application/pdf" {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

// decode decodifica env.Data en v.
func decode(t *testing.T, env envelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func (s *testServer) createCategory(t *testing.T, name, typ string) dto.CategoryResponse {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/v1/category", s.staffToken, fiber.Map{"name": name, "type": typ})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)
	var out dto.CategoryResponse
	decode(t, env, &out)
	return out
}

func (s *testServer) createSupplier(t *testing.T, name, email string) dto.SupplierResponse {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/v1/supplier", s.staffToken, fiber.Map{
		"name":          name,
		"contactPerson": "Rita",
		"phone":         "+57 300 123 4567",
		"email":         email,
		"address":       "Calle 1 # 2-3",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)
	var out dto.SupplierResponse
	decode(t, env, &out)
	return out
}

func (s *testServer) createProduct(t *testing.T, body fiber.Map) dto.ProductResponse {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/v1/products", s.staffToken, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)
	var out dto.ProductResponse
	decode(t, env, &out)
	return out
}
