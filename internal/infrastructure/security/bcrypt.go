// Package security verificación de credenciales con bcrypt.
package security

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
)

var (
	_ auth.CredentialVerifier = BcryptVerifier{}
	_ auth.PasswordHasher     = BcryptVerifier{}
)

// BcryptVerifier guarda hashes bcrypt. Las contraseñas heredadas en texto plano (datos
// iniciales o respaldos antiguos) se aceptan por comparación exacta.
type BcryptVerifier struct {
	Cost int
}

func (b BcryptVerifier) cost() int {
	if b.Cost == 0 {
		return bcrypt.DefaultCost
	}
	return b.Cost
}

// Hash genera el hash de la contraseña.
func (b BcryptVerifier) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost())
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara contra el hash, o exacto si lo almacenado no es un hash bcrypt.
func (b BcryptVerifier) Verify(stored, given string) bool {
	if stored == "" {
		return false
	}
	if !isBcrypt(stored) {
		return stored == given
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

func isBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
