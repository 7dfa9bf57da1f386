package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalido token mal formado, expirado o con firma incorrecta.
var ErrTokenInvalido = errors.New("token inválido")

var errSecretVacio = errors.New("jwt: secret vacío")

// Claims identidad de la sesión: cuenta, cliente (solo usuarios de cliente) y rol.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	ClienteID string `json:"cliente_id,omitempty"`
	Role      string `json:"role"` // "Administrador" | "Revisor" | "Usuario" | "Trabajador"
}

// Generate firma un token HS256 con vencimiento en expMinutes.
func Generate(secret, userID, clienteID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", errSecretVacio
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		ClienteID: clienteID,
		Role:      role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma HS256 y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, errSecretVacio
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalido, err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: sin user_id", ErrTokenInvalido)
	}
	return claims, nil
}
