package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/distribution"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// RevisorUseCase cuentas de revisores.
type RevisorUseCase struct {
	store  *store.Store
	hasher auth.PasswordHasher
	now    func() time.Time
}

// NewRevisorUseCase construye el caso de uso.
func NewRevisorUseCase(st *store.Store, hasher auth.PasswordHasher) *RevisorUseCase {
	if hasher == nil {
		hasher = auth.PlainVerifier{}
	}
	return &RevisorUseCase{store: st, hasher: hasher, now: time.Now}
}

func revisorEmailTaken(s *entity.Snapshot, email, exceptID string) bool {
	for _, r := range s.Revisores {
		if r.ID != exceptID && strings.EqualFold(r.Email, email) {
			return true
		}
	}
	return false
}

// Create crea un revisor.
func (uc *RevisorUseCase) Create(ctx context.Context, in dto.RevisorRequest) (*dto.RevisorResponse, error) {
	email := strings.TrimSpace(in.Email)
	if strings.TrimSpace(in.Nombre) == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: nombre, email y contraseña requeridos", domain.ErrInvalidInput)
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	r := entity.Revisor{
		ID:                 store.NewID(store.PrefixRevisor),
		UserID:             store.NewID(store.PrefixUsuario),
		Nombre:             strings.TrimSpace(in.Nombre),
		Email:              email,
		Password:           hash,
		FechaCreacion:      uc.now(),
		ProyectosAsignados: append([]string{}, in.ProyectosAsignados...),
	}
	err = uc.store.Mutate(ctx, "crear_revisor", func(s *entity.Snapshot) error {
		if revisorEmailTaken(s, email, "") {
			return domain.ErrEmailAlreadyExists
		}
		s.Revisores = append(s.Revisores, r)
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	resp := dto.ToRevisorResponse(r, 0)
	return &resp, err
}

// Update edita nombre, email, proyectos asignados y, si llega, la contraseña.
func (uc *RevisorUseCase) Update(ctx context.Context, id string, in dto.RevisorRequest) (*dto.RevisorResponse, error) {
	email := strings.TrimSpace(in.Email)
	if strings.TrimSpace(in.Nombre) == "" || email == "" {
		return nil, fmt.Errorf("%w: nombre y email requeridos", domain.ErrInvalidInput)
	}
	var hash string
	if in.Password != "" {
		h, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	var resp dto.RevisorResponse
	err := uc.store.Mutate(ctx, "actualizar_revisor", func(s *entity.Snapshot) error {
		i := s.RevisorIndex(id)
		if i < 0 {
			return fmt.Errorf("%w: revisor %s", domain.ErrNotFound, id)
		}
		if revisorEmailTaken(s, email, id) {
			return domain.ErrEmailAlreadyExists
		}
		r := s.Revisores[i]
		r.Nombre = strings.TrimSpace(in.Nombre)
		r.Email = email
		r.ProyectosAsignados = append([]string{}, in.ProyectosAsignados...)
		if hash != "" {
			r.Password = hash
		}
		s.Revisores[i] = r
		resp = dto.ToRevisorResponse(r, distribution.ReviewerLoad(s.Trabajadores, r.ID))
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return &resp, err
}

// Delete elimina el revisor y limpia la referencia en sus trabajadores (sin reasignarlos).
// Devuelve cuántos trabajadores quedaron sin revisor.
func (uc *RevisorUseCase) Delete(ctx context.Context, id string) (int, error) {
	cleared := 0
	err := uc.store.Mutate(ctx, "eliminar_revisor", func(s *entity.Snapshot) error {
		i := s.RevisorIndex(id)
		if i < 0 {
			return fmt.Errorf("%w: revisor %s", domain.ErrNotFound, id)
		}
		s.Revisores = append(s.Revisores[:i], s.Revisores[i+1:]...)
		s.Trabajadores, cleared = distribution.ClearReviewer(s.Trabajadores, id)
		return nil
	})
	if store.Failed(err) {
		return 0, err
	}
	return cleared, err
}

// List revisores con su carga pendiente.
func (uc *RevisorUseCase) List() ([]dto.RevisorResponse, error) {
	out := []dto.RevisorResponse{}
	_ = uc.store.View(func(s *entity.Snapshot) error {
		for _, r := range s.Revisores {
			out = append(out, dto.ToRevisorResponse(r, distribution.ReviewerLoad(s.Trabajadores, r.ID)))
		}
		return nil
	})
	return out, nil
}
