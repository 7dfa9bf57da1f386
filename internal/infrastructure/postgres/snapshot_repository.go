package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/repository"
)

// Asegura que SnapshotRepo implementa repository.SnapshotRepository.
var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// StateID fila única de app_state.
const StateID = "plataforma"

// SnapshotRepo guarda el snapshot completo como JSONB en una fila de app_state y mantiene
// la proyección proyecto_puestos (sueldos NUMERIC) para consultas SQL.
type SnapshotRepo struct {
	db DB
}

// NewSnapshotRepository construye el adaptador.
func NewSnapshotRepository(db DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Load lee el snapshot. Devuelve nil, nil si la fila no existe.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM app_state WHERE id = $1`, StateID).Scan(&data)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer app_state: %w", err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decodificar app_state: %w", err)
	}
	return &snap, nil
}

// Save reemplaza la fila y la proyección de cargos en una sola transacción.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO app_state (id, data, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
			StateID, data,
		)
		if err != nil {
			return fmt.Errorf("upsert app_state: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM proyecto_puestos`); err != nil {
			return fmt.Errorf("limpiar proyecto_puestos: %w", err)
		}
		for _, p := range snap.Proyectos {
			for i, pu := range p.Puestos {
				_, err := tx.Exec(ctx, `
					INSERT INTO proyecto_puestos (proyecto_id, posicion, tipo, categoria, cantidad, sueldo)
					VALUES ($1, $2, $3, $4, $5, $6)`,
					p.ID, i, pu.Tipo, string(pu.Categoria), pu.Cantidad, pu.Sueldo,
				)
				if err != nil {
					return fmt.Errorf("insertar cargo %s/%d: %w", p.ID, i, err)
				}
			}
		}
		return nil
	})
}

// inTx confirma si fn termina sin error; en cualquier otro caso revierte.
func (r *SnapshotRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
