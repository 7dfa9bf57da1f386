package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// BackupUseCase respaldo y restauración del estado completo, y el logo de la plataforma.
type BackupUseCase struct {
	store *store.Store
	now   func() time.Time
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(st *store.Store) *BackupUseCase {
	return &BackupUseCase{store: st, now: time.Now}
}

// BackupFilename nombre del archivo de respaldo para la fecha dada.
func BackupFilename(t time.Time) string {
	return "respaldo_plataforma_reclutamiento_" + t.Format("2006-01-02") + ".json"
}

// Export snapshot como JSON indentado (fechas ISO-8601) y su nombre de archivo.
func (uc *BackupUseCase) Export() ([]byte, string, error) {
	data, err := json.MarshalIndent(uc.store.Snapshot(), "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("serializar respaldo: %w", err)
	}
	return data, BackupFilename(uc.now()), nil
}

// Restore reemplaza el estado completo por el respaldo recibido.
func (uc *BackupUseCase) Restore(ctx context.Context, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: respaldo vacío", domain.ErrInvalidInput)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: respaldo inválido: %v", domain.ErrInvalidInput, err)
	}
	return uc.store.Replace(ctx, &snap)
}

// SetPlatformLogo fija o elimina (vacío) el logo de la plataforma.
func (uc *BackupUseCase) SetPlatformLogo(ctx context.Context, logo string) error {
	logo = strings.TrimSpace(logo)
	return uc.store.Mutate(ctx, "logo_plataforma", func(s *entity.Snapshot) error {
		if logo == "" {
			s.PlatformLogo = nil
			return nil
		}
		s.PlatformLogo = &logo
		return nil
	})
}

// PlatformLogo logo actual; vacío si no hay.
func (uc *BackupUseCase) PlatformLogo() string {
	var logo string
	_ = uc.store.View(func(s *entity.Snapshot) error {
		if s.PlatformLogo != nil {
			logo = *s.PlatformLogo
		}
		return nil
	})
	return logo
}
