package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

// Locals keys para los datos del usuario autenticado en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalName   = "name"
	LocalEmail  = "email"
)

// Authenticator valida un token y devuelve el usuario vigente. Lo implementa *auth.AuthUseCase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token, carga el usuario desde el store y lo deja en c.Locals.
// Un token válido de un usuario eliminado se rechaza igual que un token inválido;
// cualquier otro error (store caído) sigue al ErrorHandler como 500.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return reject(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "No token provided, authorization denied")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return reject(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Token is not valid")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return reject(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "No token provided, authorization denied")
		}
		user, err := authn.Authenticate(c.UserContext(), tokenString)
		if errors.Is(err, domain.ErrUnauthorized) || (err == nil && user == nil) {
			return reject(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Token is not valid")
		}
		if err != nil {
			return err
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, user.Role)
		c.Locals(LocalName, user.Name)
		c.Locals(LocalEmail, user.Email)

		ctx := c.UserContext()
		sub := zerolog.Ctx(ctx).With().Str("user_id", user.ID).Logger()
		c.SetUserContext(sub.WithContext(ctx))
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE → no hay usuario/rol en el contexto.
//   - 403 FORBIDDEN    → el rol no está permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	msg := "Insufficient permissions"
	if len(roles) == 1 && roles[0] == entity.RoleAdmin {
		msg = "Admin access required"
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return reject(c, fiber.StatusUnauthorized, "MISSING_ROLE", "User not authenticated")
		}
		if _, ok := allowed[role]; !ok {
			return reject(c, fiber.StatusForbidden, "FORBIDDEN", msg)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return local(c, LocalUserID)
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	return local(c, LocalRole)
}

func actor(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{ID: GetUserID(c), Role: GetRole(c)}
}

func local(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
