package auth

import (
	"fmt"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login por rol y emisión de token.
type AuthUseCase struct {
	store    *store.Store
	verifier CredentialVerifier
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(st *store.Store, verifier CredentialVerifier, jwtCfg JWTConfig) *AuthUseCase {
	if verifier == nil {
		verifier = PlainVerifier{}
	}
	return &AuthUseCase{store: st, verifier: verifier, jwtCfg: jwtCfg}
}

// Login verifica email/password contra la colección del rol, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	role := entity.Rol(in.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Role)
	}
	var user *CurrentUser
	err := uc.store.View(func(s *entity.Snapshot) error {
		var err error
		user, err = Authenticate(s, in.Email, in.Password, role, uc.verifier)
		return err
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.ClienteID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		User:     toSessionResponse(user),
		Redirect: DashboardPath(user.Role),
	}, nil
}

// Me reconstruye el usuario de la sesión a partir de los claims; falla si la cuenta ya no existe.
func (uc *AuthUseCase) Me(userID string, role entity.Rol) (*dto.SessionUser, error) {
	var out *dto.SessionUser
	err := uc.store.View(func(s *entity.Snapshot) error {
		u := lookup(s, userID, role)
		if u == nil {
			return domain.ErrUserNotFound
		}
		resp := toSessionResponse(u)
		out = &resp
		return nil
	})
	return out, err
}

// Session usuario actual como CurrentUser (para el guard); nil si no existe.
func (uc *AuthUseCase) Session(userID string, role entity.Rol) *CurrentUser {
	var u *CurrentUser
	_ = uc.store.View(func(s *entity.Snapshot) error {
		u = lookup(s, userID, role)
		return nil
	})
	return u
}

func lookup(s *entity.Snapshot, id string, role entity.Rol) *CurrentUser {
	switch role {
	case entity.RolAdmin:
		for _, a := range s.Admins {
			if a.ID == id {
				return &CurrentUser{ID: a.ID, Nombre: a.Nombre, Email: a.Email, Role: role}
			}
		}
	case entity.RolRevisor:
		if i := s.RevisorIndex(id); i >= 0 {
			r := s.Revisores[i]
			return &CurrentUser{ID: r.ID, Nombre: r.Nombre, Email: r.Email, Role: role}
		}
	case entity.RolUsuario:
		for _, u := range s.Usuarios {
			if u.ID == id {
				return &CurrentUser{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Role: role, ClienteID: u.ClienteID, Cargo: u.Cargo}
			}
		}
	case entity.RolTrabajador:
		for _, c := range s.TrabajadorCredenciales {
			if c.ID == id {
				cu := &CurrentUser{ID: c.ID, Nombre: c.Email, Email: c.Email, Role: role}
				if i := s.TrabajadorIndex(id); i >= 0 {
					cu.Nombre = s.Trabajadores[i].Nombre
				}
				return cu
			}
		}
	}
	return nil
}

func toSessionResponse(u *CurrentUser) dto.SessionUser {
	return dto.SessionUser{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Role:      string(u.Role),
		ClienteID: u.ClienteID,
		Cargo:     u.Cargo,
	}
}
