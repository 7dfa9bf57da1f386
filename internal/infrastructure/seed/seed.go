// Package seed carga el estado inicial de la plataforma desde un archivo YAML.
// Un respaldo JSON exportado también es una semilla válida.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// Load lee y decodifica el archivo de semilla.
func Load(path string) (*entity.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer semilla %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodifica YAML (o JSON) hacia un Snapshot.
// Las claves siguen las etiquetas json de las entidades; las fechas van en RFC3339.
func Parse(data []byte) (*entity.Snapshot, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("semilla vacía")
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml semilla: %w", err)
	}
	// yaml.v3 entrega map[string]any anidados, compatibles con encoding/json.
	bridge, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convertir semilla: %w", err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(bridge, &snap); err != nil {
		return nil, fmt.Errorf("decodificar semilla: %w", err)
	}
	syncUsuarios(&snap)
	return &snap, nil
}

// syncUsuarios completa la colección plana de usuarios desde los clientes.
func syncUsuarios(snap *entity.Snapshot) {
	seen := make(map[string]bool, len(snap.Usuarios))
	for _, u := range snap.Usuarios {
		seen[u.ID] = true
	}
	for _, c := range snap.Clientes {
		for _, u := range c.Usuarios {
			if seen[u.ID] {
				continue
			}
			if u.ClienteID == "" {
				u.ClienteID = c.ID
			}
			snap.Usuarios = append(snap.Usuarios, u)
			seen[u.ID] = true
		}
	}
}
