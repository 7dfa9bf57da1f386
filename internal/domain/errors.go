package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Violaciones de precondición del ciclo de vida del candidato y de los proyectos.
// Se envuelven con fmt.Errorf("%w: ...") para dar un mensaje legible.
var (
	ErrPrecondition      = errors.New("precondición no cumplida")
	ErrReasonRequired    = errors.New("el motivo de rechazo es obligatorio")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrNotValidated      = errors.New("el trabajador no tiene documentación validada")
	ErrAlreadyAssigned   = errors.New("el trabajador ya tiene un proyecto asignado")
	ErrShiftMismatch     = errors.New("la suma de turnos no coincide con la cantidad del cargo")
	ErrDateOrder         = errors.New("las fechas deben seguir el orden: inicio reclutamiento < término reclutamiento < inicio trabajo")
	ErrNoReviewers       = errors.New("no hay revisores disponibles")
	ErrTooManyUsers      = errors.New("un cliente debe tener entre 1 y 5 usuarios")
)

// IsPrecondition informa si err corresponde a una operación rechazada por reglas de negocio.
func IsPrecondition(err error) bool {
	for _, target := range []error{
		ErrPrecondition, ErrReasonRequired, ErrInvalidTransition, ErrNotValidated,
		ErrAlreadyAssigned, ErrShiftMismatch, ErrDateOrder, ErrNoReviewers, ErrTooManyUsers,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
