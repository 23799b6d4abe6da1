package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/validation"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

const msgUserEmailExists = "User with this email already exists"

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con búsqueda por nombre/email y filtro por rol.
func (uc *UserUseCase) List(ctx context.Context, q dto.UserQuery) (*dto.Page[dto.UserResponse], error) {
	opts := listOptions(&q.PageRequest, userSortFields)
	users, total, err := uc.repo.List(ctx, buildUserFilter(q), opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *ToUserResponse(u))
	}
	return dto.NewPage(items, q.PageRequest, total), nil
}

// Create crea un usuario (uso administrativo). Role por defecto staff.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Email = NormalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflict(msgUserEmailExists)
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, conflictOnDuplicate(err, msgUserEmailExists)
	}
	zerolog.Ctx(ctx).Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Profile devuelve el usuario autenticado.
func (uc *UserUseCase) Profile(ctx context.Context, actor Actor) (*dto.UserResponse, error) {
	return uc.GetByID(ctx, actor.ID)
}

// Update actualiza un usuario. Un no-admin solo puede editarse a sí mismo y nunca cambiar su rol.
func (uc *UserUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validation.ID("user", id); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && actor.ID != id {
		return nil, domain.NewForbidden("Not authorized to update this user")
	}
	if in.Email != nil {
		e := NormalizeEmail(*in.Email)
		in.Email = &e
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil && *in.Role != user.Role && !actor.IsAdmin() {
		return nil, domain.NewForbidden("Only admins can change user roles")
	}

	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.NewConflict(msgUserEmailExists)
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, conflictOnDuplicate(err, msgUserEmailExists)
	}
	return ToUserResponse(user), nil
}

// Delete elimina un usuario. Nadie puede eliminar su propia cuenta.
func (uc *UserUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if err := validation.ID("user", id); err != nil {
		return err
	}
	if actor.ID == id {
		return domain.NewInvalidInput("You cannot delete your own account")
	}
	if !actor.IsAdmin() {
		return domain.NewForbidden("Admin access required")
	}
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("user_id", id).Str("deleted_by", actor.ID).Msg("user deleted")
	return nil
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	if err := validation.ID("user", id); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("User not found")
	}
	return user, nil
}
