package usecase

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/erp-catalog-api/internal/domain"
)

// BcryptCost costo de hash de passwords.
var BcryptCost = 12

// HashPassword genera el hash bcrypt de un password en texto plano.
// Más de 72 bytes es entrada inválida, no un fallo interno.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", "password cannot exceed 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compara un password con su hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NormalizeEmail recorta espacios y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// conflictOnDuplicate traduce la violación de unicidad del store al mismo conflicto del pre-check.
func conflictOnDuplicate(err error, msg string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.NewConflict(msg)
	}
	return err
}
