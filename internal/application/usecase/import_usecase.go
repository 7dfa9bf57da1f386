package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/bulkimport"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// ImportUseCase carga masiva de candidatos ya parseados.
type ImportUseCase struct {
	store *store.Store
	now   func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(st *store.Store) *ImportUseCase {
	return &ImportUseCase{store: st, now: time.Now}
}

// Import agrega los registros elegibles y reporta los descartados.
func (uc *ImportUseCase) Import(ctx context.Context, in dto.ImportRequest) (*dto.ImportResponse, error) {
	if len(in.Registros) == 0 {
		return nil, fmt.Errorf("%w: sin registros", domain.ErrInvalidInput)
	}
	resp := &dto.ImportResponse{Importados: []dto.TrabajadorResponse{}, Rechazados: []bulkimport.Rejection{}}
	err := uc.store.Mutate(ctx, "importar_trabajadores", func(s *entity.Snapshot) error {
		imported, rejected := bulkimport.Build(in.Registros, s.MaxNumero(), uc.now(), func() string {
			return store.NewID(store.PrefixTrabajador)
		})
		s.Trabajadores = append(s.Trabajadores, imported...)
		resp.Importados = dto.ToTrabajadorResponses(imported)
		if rejected != nil {
			resp.Rechazados = rejected
		}
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return resp, err
}
