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
	"github.com/jhoicas/Reclutamiento-api/internal/domain/bulkimport"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/reporting"
)

// TrabajadorUseCase cuentas y perfiles de trabajadores.
type TrabajadorUseCase struct {
	store  *store.Store
	hasher auth.PasswordHasher
	now    func() time.Time
}

// NewTrabajadorUseCase construye el caso de uso. hasher nil guarda la contraseña tal cual.
func NewTrabajadorUseCase(st *store.Store, hasher auth.PasswordHasher) *TrabajadorUseCase {
	if hasher == nil {
		hasher = auth.PlainVerifier{}
	}
	return &TrabajadorUseCase{store: st, hasher: hasher, now: time.Now}
}

func normEmail(s string) string { return strings.TrimSpace(s) }

func credentialEmailTaken(s *entity.Snapshot, email, exceptID string) bool {
	for _, c := range s.TrabajadorCredenciales {
		if c.ID != exceptID && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

// CreateAccount crea la credencial y un perfil provisorio (nombre = email, en revisión).
// El id de la credencial es el id del trabajador.
func (uc *TrabajadorUseCase) CreateAccount(ctx context.Context, in dto.RegistroRequest) (*dto.RegistroResponse, error) {
	email := normEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y contraseña requeridos", domain.ErrInvalidInput)
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	id := store.NewID(store.PrefixTrabajador)
	err = uc.store.Mutate(ctx, "crear_cuenta_trabajador", func(s *entity.Snapshot) error {
		if credentialEmailTaken(s, email, "") {
			return domain.ErrEmailAlreadyExists
		}
		s.TrabajadorCredenciales = append(s.TrabajadorCredenciales, entity.TrabajadorCredencial{
			ID: id, Email: email, Password: hash,
		})
		s.Trabajadores = append(s.Trabajadores, entity.Trabajador{
			ID:               id,
			Numero:           s.MaxNumero() + 1,
			Nombre:           email,
			EstadoDocumental: entity.EstadoEnRevision,
			FechaRegistro:    uc.now(),
		})
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return &dto.RegistroResponse{ID: id}, err
}

// CompleteProfile actualiza los datos personales. Si llega fecha de nacimiento sin edad,
// la edad se calcula.
func (uc *TrabajadorUseCase) CompleteProfile(ctx context.Context, id string, in dto.PerfilRequest) (*dto.TrabajadorResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	var updated entity.Trabajador
	err := uc.store.Mutate(ctx, "completar_perfil", func(s *entity.Snapshot) error {
		i, err := findTrabajador(s, id)
		if err != nil {
			return err
		}
		t := s.Trabajadores[i].Clone()
		t.Nombre = strings.TrimSpace(in.Nombre)
		t.Especialidad = in.Especialidad
		t.Rut = in.Rut
		t.Ciudad = in.Ciudad
		t.Nacionalidad = in.Nacionalidad
		t.Telefono = in.Telefono
		t.Edad = in.Edad
		if in.FechaNacimiento != nil {
			fn := *in.FechaNacimiento
			t.FechaNacimiento = &fn
			if t.Edad == 0 {
				t.Edad = bulkimport.AgeAt(fn, uc.now())
			}
		}
		s.Trabajadores[i] = t
		updated = t
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	resp := dto.ToTrabajadorResponse(updated)
	return &resp, err
}

// UpdateCredential cambia email y/o contraseña; los campos vacíos no se modifican.
func (uc *TrabajadorUseCase) UpdateCredential(ctx context.Context, id string, in dto.CredencialRequest) error {
	email := normEmail(in.Email)
	var hash string
	if in.Password != "" {
		h, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return err
		}
		hash = h
	}
	return uc.store.Mutate(ctx, "actualizar_credencial", func(s *entity.Snapshot) error {
		for i := range s.TrabajadorCredenciales {
			c := &s.TrabajadorCredenciales[i]
			if c.ID != id {
				continue
			}
			if email != "" {
				if credentialEmailTaken(s, email, id) {
					return domain.ErrEmailAlreadyExists
				}
				c.Email = email
			}
			if hash != "" {
				c.Password = hash
			}
			return nil
		}
		return fmt.Errorf("%w: credencial %s", domain.ErrNotFound, id)
	})
}

// DeleteAccount elimina el perfil y su credencial.
func (uc *TrabajadorUseCase) DeleteAccount(ctx context.Context, id string) error {
	return uc.store.Mutate(ctx, "eliminar_cuenta_trabajador", func(s *entity.Snapshot) error {
		found := false
		ws := s.Trabajadores[:0]
		for _, t := range s.Trabajadores {
			if t.ID == id {
				found = true
				continue
			}
			ws = append(ws, t)
		}
		cs := s.TrabajadorCredenciales[:0]
		for _, c := range s.TrabajadorCredenciales {
			if c.ID == id {
				found = true
				continue
			}
			cs = append(cs, c)
		}
		if !found {
			return fmt.Errorf("%w: trabajador %s", domain.ErrNotFound, id)
		}
		s.Trabajadores, s.TrabajadorCredenciales = ws, cs
		return nil
	})
}

func knownDocument(tipo string) bool {
	for _, d := range bulkimport.Known {
		if d == tipo {
			return true
		}
	}
	return false
}

// AttachDocument guarda (o reemplaza) un documento del trabajador.
func (uc *TrabajadorUseCase) AttachDocument(ctx context.Context, id string, in dto.DocumentoRequest) (*dto.TrabajadorResponse, error) {
	tipo := strings.ToLower(strings.TrimSpace(in.Tipo))
	if !knownDocument(tipo) {
		return nil, fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, in.Tipo)
	}
	if strings.TrimSpace(in.Contenido) == "" {
		return nil, fmt.Errorf("%w: documento vacío", domain.ErrInvalidInput)
	}
	var updated entity.Trabajador
	err := uc.store.Mutate(ctx, "adjuntar_documento", func(s *entity.Snapshot) error {
		i, err := findTrabajador(s, id)
		if err != nil {
			return err
		}
		t := s.Trabajadores[i].Clone()
		if t.Documentos == nil {
			t.Documentos = map[string]string{}
		}
		t.Documentos[tipo] = in.Contenido
		s.Trabajadores[i] = t
		updated = t
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	resp := dto.ToTrabajadorResponse(updated)
	return &resp, err
}

// GetDocument contenido de un documento.
func (uc *TrabajadorUseCase) GetDocument(id, tipo string) (*dto.DocumentoResponse, error) {
	var out *dto.DocumentoResponse
	err := uc.store.View(func(s *entity.Snapshot) error {
		i, err := findTrabajador(s, id)
		if err != nil {
			return err
		}
		c, ok := s.Trabajadores[i].Documentos[tipo]
		if !ok {
			return fmt.Errorf("%w: documento %s", domain.ErrNotFound, tipo)
		}
		out = &dto.DocumentoResponse{Tipo: tipo, Contenido: c}
		return nil
	})
	return out, err
}

// GetByID obtiene un trabajador.
func (uc *TrabajadorUseCase) GetByID(id string) (*dto.TrabajadorResponse, error) {
	var out *dto.TrabajadorResponse
	err := uc.store.View(func(s *entity.Snapshot) error {
		i, err := findTrabajador(s, id)
		if err != nil {
			return err
		}
		r := dto.ToTrabajadorResponse(s.Trabajadores[i])
		out = &r
		return nil
	})
	return out, err
}

// List lista trabajadores filtrados y paginados, en orden de número.
func (uc *TrabajadorUseCase) List(f dto.TrabajadorFilter) (*dto.TrabajadorListResponse, error) {
	f.DefaultPage()
	var matched []entity.Trabajador
	_ = uc.store.View(func(s *entity.Snapshot) error {
		for _, t := range reporting.Search(s.Trabajadores, f.Q) {
			if f.EstadoDocumental != "" && string(t.EstadoDocumental) != f.EstadoDocumental {
				continue
			}
			if f.RevisorID != "" && t.RevisorAsignadoID != f.RevisorID {
				continue
			}
			if f.ProyectoID != "" && t.ProyectoAsignado != f.ProyectoID {
				continue
			}
			matched = append(matched, t)
		}
		return nil
	})
	total := len(matched)
	start := min(f.Offset, total)
	end := min(start+f.Limit, total)
	return &dto.TrabajadorListResponse{
		Items: dto.ToTrabajadorResponses(matched[start:end]),
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}, nil
}

// Portal vista del propio trabajador.
func (uc *TrabajadorUseCase) Portal(id string) (*dto.PortalResponse, error) {
	var out *dto.PortalResponse
	err := uc.store.View(func(s *entity.Snapshot) error {
		i, err := findTrabajador(s, id)
		if err != nil {
			return err
		}
		t := s.Trabajadores[i]
		resp := &dto.PortalResponse{
			Trabajador:      dto.ToTrabajadorResponse(t),
			PerfilCompleto:  t.Rut != "" && t.Especialidad != "" && t.Nombre != "",
			DocumentosFalta: []string{},
		}
		for _, c := range s.TrabajadorCredenciales {
			if c.ID == id {
				resp.Email = c.Email
				resp.PerfilCompleto = resp.PerfilCompleto && t.Nombre != c.Email
			}
		}
		if t.ProyectoAsignado != "" {
			if p, err := findProyecto(s, t.ProyectoAsignado); err == nil {
				resp.ProyectoNombre = p.Nombre
			}
		}
		for _, d := range bulkimport.Required {
			if t.Documentos[d] == "" {
				resp.DocumentosFalta = append(resp.DocumentosFalta, d)
			}
		}
		out = resp
		return nil
	})
	return out, err
}
