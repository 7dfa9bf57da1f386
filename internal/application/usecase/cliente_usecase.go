package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// ClienteUseCase clientes y sus usuarios (1 a 5 por cliente).
type ClienteUseCase struct {
	store  *store.Store
	hasher auth.PasswordHasher
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(st *store.Store, hasher auth.PasswordHasher) *ClienteUseCase {
	if hasher == nil {
		hasher = auth.PlainVerifier{}
	}
	return &ClienteUseCase{store: st, hasher: hasher}
}

func validateUsuarios(in []dto.UsuarioRequest) error {
	if len(in) < 1 || len(in) > entity.MaxUsuariosPorCliente {
		return fmt.Errorf("%w: se recibieron %d", domain.ErrTooManyUsers, len(in))
	}
	seen := map[string]bool{}
	for _, u := range in {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" || strings.TrimSpace(u.Nombre) == "" {
			return fmt.Errorf("%w: nombre y email de usuario requeridos", domain.ErrInvalidInput)
		}
		if seen[email] {
			return fmt.Errorf("%w: %s repetido", domain.ErrEmailAlreadyExists, u.Email)
		}
		seen[email] = true
	}
	return nil
}

// buildUsuarios arma los usuarios del cliente. Los existentes conservan id y, si no llega
// contraseña, la anterior.
func (uc *ClienteUseCase) buildUsuarios(s *entity.Snapshot, clienteID string, in []dto.UsuarioRequest) ([]entity.Usuario, error) {
	prev := map[string]entity.Usuario{}
	for _, u := range s.Usuarios {
		if u.ClienteID == clienteID {
			prev[u.ID] = u
		}
	}
	out := make([]entity.Usuario, 0, len(in))
	for _, u := range in {
		email := strings.TrimSpace(u.Email)
		for _, other := range s.Usuarios {
			if other.ClienteID != clienteID && strings.EqualFold(other.Email, email) {
				return nil, fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, email)
			}
		}
		nu := entity.Usuario{
			ID:              u.ID,
			Nombre:          strings.TrimSpace(u.Nombre),
			Email:           email,
			Telefono:        u.Telefono,
			Cargo:           u.Cargo,
			HorarioContacto: u.HorarioContacto,
			ClienteID:       clienteID,
		}
		old, exists := prev[u.ID]
		if !exists {
			nu.ID = store.NewID(store.PrefixUsuario)
		}
		switch {
		case u.Password != "":
			h, err := uc.hasher.Hash(u.Password)
			if err != nil {
				return nil, err
			}
			nu.Password = h
		case exists:
			nu.Password = old.Password
		default:
			return nil, fmt.Errorf("%w: contraseña requerida para %s", domain.ErrInvalidInput, email)
		}
		out = append(out, nu)
	}
	return out, nil
}

// replaceUsuarios reemplaza los usuarios del cliente en la colección global.
func replaceUsuarios(s *entity.Snapshot, clienteID string, users []entity.Usuario) {
	out := make([]entity.Usuario, 0, len(s.Usuarios)+len(users))
	for _, u := range s.Usuarios {
		if u.ClienteID != clienteID {
			out = append(out, u)
		}
	}
	s.Usuarios = append(out, users...)
}

func applyClienteFields(c *entity.Cliente, in dto.ClienteRequest) {
	c.Nombre = strings.TrimSpace(in.Nombre)
	c.LogoURL = in.LogoURL
	c.ContactoPrincipal = in.ContactoPrincipal
	c.TelefonoPrincipal = in.TelefonoPrincipal
	c.EmailPrincipal = in.EmailPrincipal
	c.Direccion = in.Direccion
	c.PlanContratado = in.PlanContratado
}

// Create crea el cliente con sus usuarios.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	if err := validateUsuarios(in.Usuarios); err != nil {
		return nil, err
	}
	var resp dto.ClienteResponse
	err := uc.store.Mutate(ctx, "crear_cliente", func(s *entity.Snapshot) error {
		c := entity.Cliente{ID: store.NewID(store.PrefixCliente), ProyectosActivos: []string{}}
		applyClienteFields(&c, in)
		users, err := uc.buildUsuarios(s, c.ID, in.Usuarios)
		if err != nil {
			return err
		}
		c.Usuarios = users
		s.Clientes = append(s.Clientes, c)
		replaceUsuarios(s, c.ID, users)
		resp = dto.ToClienteResponse(c)
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return &resp, err
}

// UpdateWithUsers actualiza el cliente y reemplaza sus usuarios.
func (uc *ClienteUseCase) UpdateWithUsers(ctx context.Context, id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	if err := validateUsuarios(in.Usuarios); err != nil {
		return nil, err
	}
	var resp dto.ClienteResponse
	err := uc.store.Mutate(ctx, "actualizar_cliente", func(s *entity.Snapshot) error {
		i := s.ClienteIndex(id)
		if i < 0 {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
		}
		c := s.Clientes[i].Clone()
		applyClienteFields(&c, in)
		users, err := uc.buildUsuarios(s, id, in.Usuarios)
		if err != nil {
			return err
		}
		c.Usuarios = users
		s.Clientes[i] = c
		replaceUsuarios(s, id, users)
		resp = dto.ToClienteResponse(c)
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return &resp, err
}

// GetByID cliente con usuarios.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	var out *dto.ClienteResponse
	err := uc.store.View(func(s *entity.Snapshot) error {
		i := s.ClienteIndex(id)
		if i < 0 {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
		}
		r := dto.ToClienteResponse(s.Clientes[i])
		out = &r
		return nil
	})
	return out, err
}

// List todos los clientes.
func (uc *ClienteUseCase) List() ([]dto.ClienteResponse, error) {
	out := []dto.ClienteResponse{}
	_ = uc.store.View(func(s *entity.Snapshot) error {
		for _, c := range s.Clientes {
			out = append(out, dto.ToClienteResponse(c))
		}
		return nil
	})
	return out, nil
}
