package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	apphttp "github.com/jhoicas/erp-catalog-api/internal/interfaces/http"
	"github.com/jhoicas/erp-catalog-api/pkg/jwt"
)

// errStoreDown simula una caída del store de usuarios.
var errStoreDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// fakeAuthenticator acepta tokens conocidos y rechaza el resto.
// "store-down" falla como lo haría una consulta contra la base caída.
type fakeAuthenticator map[string]*entity.User

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*entity.User, error) {
	if token == "store-down" {
		return nil, errStoreDown
	}
	if u, ok := f[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthorized
}

var testUsers = fakeAuthenticator{
	"admin-token": {ID: "00000000-0000-0000-0000-000000000001", Name: "Ada", Email: "ada@example.com", Role: entity.RoleAdmin},
	"staff-token": {ID: "00000000-0000-0000-0000-000000000002", Name: "Sam", Email: "sam@example.com", Role: entity.RoleStaff},
}

// buildTestApp app mínima: AuthMiddleware + RequireRole + handler dummy.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(false)})
	app.Get("/protected",
		apphttp.AuthMiddleware(testUsers),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c), "user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	resp, body := doProtected(t, buildTestApp(entity.RoleAdmin), "Bearer admin-token")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", body["user_id"])
}

func TestRequireRole_MultiRol(t *testing.T) {
	resp, _ := doProtected(t, buildTestApp(entity.RoleAdmin, entity.RoleStaff), "Bearer staff-token")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_StaffBloqueadoEnRutaAdmin(t *testing.T) {
	resp, body := doProtected(t, buildTestApp(entity.RoleAdmin), "Bearer staff-token")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.Equal(t, "Admin access required", body["message"])
}

func TestRequireRole_SinUsuario_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp, body := doProtected(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", body["code"])
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"bearer vacio", "Bearer ", "MISSING_TOKEN"},
		{"esquema distinto", "Basic admin-token", "INVALID_TOKEN"},
		{"token desconocido", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doProtected(t, buildTestApp(entity.RoleAdmin), tt.header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestAuthMiddleware_FalloDelStoreEs500(t *testing.T) {
	resp, body := doProtected(t, buildTestApp(entity.RoleAdmin), "Bearer store-down")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body["error"], "5432")
}

func TestAuthMiddleware_UsuarioEliminado(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := srv.do(t, http.MethodGet, "/api/v1/auth/me", srv.staffToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodDelete, "/api/v1/users/"+srv.staff.ID, srv.adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := srv.do(t, http.MethodGet, "/api/v1/auth/me", srv.staffToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", env.Code)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	srv := newTestServer(t)
	tok, err := jwt.Generate(testJWTSecret, srv.admin.ID, srv.admin.Role, testIssuer, -1)
	require.NoError(t, err)
	resp, env := srv.do(t, http.MethodGet, "/api/v1/auth/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token is not valid", env.Message)
}
