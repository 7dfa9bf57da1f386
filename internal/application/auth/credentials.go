package auth

// CredentialVerifier compara la contraseña ingresada con la almacenada.
// La implementación por defecto es comparación exacta; BcryptVerifier (infrastructure/security)
// la reemplaza sin cambiar el contrato.
type CredentialVerifier interface {
	Verify(stored, given string) bool
}

// PasswordHasher prepara la contraseña que se guarda al crear o actualizar una cuenta.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// PlainVerifier comparación exacta; Hash devuelve la contraseña sin cambios.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, given string) bool {
	return stored != "" && stored == given
}

func (PlainVerifier) Hash(plain string) (string, error) {
	return plain, nil
}
