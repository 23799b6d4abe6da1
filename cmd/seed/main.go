// seed aplica las migraciones y crea un usuario admin más categorías de ejemplo.
// Es idempotente: los registros existentes (mismo email o nombre) se omiten.
//
// Uso: go run ./cmd/seed -email admin@example.com -password secret123
// También lee SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/erp-catalog-api/pkg/config"
	"github.com/jhoicas/erp-catalog-api/pkg/logger"
)

var sampleCategories = []dto.CreateCategoryRequest{
	{Name: "Hardware", Type: entity.TypeProduct},
	{Name: "Office Supplies", Type: entity.TypeProduct},
	{Name: "Electronics", Type: entity.TypeProduct},
	{Name: "Consulting", Type: entity.TypeService},
	{Name: "Maintenance", Type: entity.TypeService},
}

func main() {
	name := flag.String("name", "Administrator", "nombre del admin")
	email := flag.String("email", envOr("SEED_ADMIN_EMAIL", "admin@example.com"), "email del admin")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "password del admin (mínimo 6 caracteres)")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "password requerido: -password o SEED_ADMIN_PASSWORD")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	resolver := usecase.NewResolver(categoryRepo, supplierRepo, userRepo)
	users := usecase.NewUserUseCase(userRepo)
	categories := usecase.NewCategoryUseCase(categoryRepo, resolver)

	admin, err := users.Create(ctx, dto.CreateUserRequest{Name: *name, Email: *email, Password: *password, Role: entity.RoleAdmin})
	switch {
	case errors.Is(err, domain.ErrConflict):
		existing, gerr := userRepo.GetByEmail(ctx, usecase.NormalizeEmail(*email))
		if gerr != nil || existing == nil {
			log.Fatal().Err(gerr).Str("email", *email).Msg("leer admin existente")
		}
		admin = usecase.ToUserResponse(existing)
		log.Info().Str("email", admin.Email).Msg("admin ya existe, se omite")
	case err != nil:
		log.Fatal().Err(err).Msg("crear admin")
	default:
		log.Info().Str("email", admin.Email).Msg("admin creado")
	}

	actor := usecase.Actor{ID: admin.ID, Role: admin.Role}
	created := 0
	for _, c := range sampleCategories {
		_, err := categories.Create(ctx, actor, c)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("category", c.Name).Msg("crear categoría")
		}
		created++
	}
	log.Info().Int("created", created).Int("total", len(sampleCategories)).Msg("categorías de ejemplo")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
