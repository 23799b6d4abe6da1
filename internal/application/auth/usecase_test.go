package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-catalog-api/internal/application/auth"
	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/testutil/memstore"
	"github.com/jhoicas/erp-catalog-api/pkg/jwt"
)

var cfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "erp-catalog-test"}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memstore.Store) {
	t.Helper()
	usecase.BcryptCost = 4
	s := memstore.New()
	return auth.NewAuthUseCase(s.Users(), cfg), s
}

func TestRegister_CreaStaffYDevuelveToken(t *testing.T) {
	uc, _ := newAuth(t)
	out, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Lin", Email: " Lin@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "lin@example.com", out.User.Email)
	assert.Equal(t, entity.RoleStaff, out.User.Role)

	userID, role, err := jwt.Parse(cfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleStaff, role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Lin", Email: "lin@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Name: "Lin 2", Email: "LIN@example.com", Password: "secret2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, "User already exists with this email", err.Error())
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Lin", Email: "lin@example.com", Password: "123"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Fields[0].Field)
}

func TestLogin_CredencialesInvalidasMismoError(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Lin", Email: "lin@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{Email: "lin@example.com", Password: "wrong-pass"})
	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
	assert.True(t, errors.Is(errWrongPass, domain.ErrInvalidInput))

	ok, err := uc.Login(context.Background(), dto.LoginRequest{Email: "LIN@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, ok.Token)
}

func TestAuthenticate_UsuarioEliminadoInvalidaToken(t *testing.T) {
	uc, s := newAuth(t)
	out, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Lin", Email: "lin@example.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := uc.Authenticate(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, user.ID)

	require.NoError(t, s.Users().Delete(context.Background(), out.User.ID))
	_, err = uc.Authenticate(context.Background(), out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_UsaRolActual(t *testing.T) {
	uc, s := newAuth(t)
	out, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Lin", Email: "lin@example.com", Password: "secret1"})
	require.NoError(t, err)

	u, err := s.Users().GetByID(context.Background(), out.User.ID)
	require.NoError(t, err)
	u.Role = entity.RoleAdmin
	require.NoError(t, s.Users().Update(context.Background(), u))

	refreshed, err := uc.Refresh(context.Background(), out.User.ID)
	require.NoError(t, err)
	_, role, err := jwt.Parse(cfg.Secret, refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	me, err := uc.Me(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, me.Role)
}
