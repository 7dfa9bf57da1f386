package reporting

import (
	"sort"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// OthersBucket nombre del grupo que suma las categorías fuera del top.
const OthersBucket = "Otros"

// DefaultTopN cantidad de categorías visibles en los gráficos del tablero.
const DefaultTopN = 10

// Bucket categoría y su conteo.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Count agrupa por la clave indicada, ignorando valores vacíos. Orden: conteo
// descendente y luego nombre, para que la salida sea estable.
func Count(workers []entity.Trabajador, key func(entity.Trabajador) string) []Bucket {
	counts := map[string]int{}
	for _, t := range workers {
		if v := key(t); v != "" {
			counts[v]++
		}
	}
	out := make([]Bucket, 0, len(counts))
	for name, v := range counts {
		out = append(out, Bucket{Name: name, Value: v})
	}
	sortBuckets(out)
	return out
}

func sortBuckets(b []Bucket) {
	sort.SliceStable(b, func(i, j int) bool {
		if b[i].Value != b[j].Value {
			return b[i].Value > b[j].Value
		}
		return b[i].Name < b[j].Name
	})
}

// TopN conserva las n categorías mayores y suma el resto en "Otros" si es distinto de cero.
func TopN(buckets []Bucket, n int) []Bucket {
	sorted := append([]Bucket(nil), buckets...)
	sortBuckets(sorted)
	if n < 0 || len(sorted) <= n {
		return sorted
	}
	others := 0
	for _, b := range sorted[n:] {
		others += b.Value
	}
	out := sorted[:n:n]
	if others > 0 {
		out = append(out, Bucket{Name: OthersBucket, Value: others})
	}
	return out
}

// ByEspecialidad agrupa por especialidad.
func ByEspecialidad(t entity.Trabajador) string { return t.Especialidad }

func ByCiudad(t entity.Trabajador) string { return t.Ciudad }

func ByNacionalidad(t entity.Trabajador) string { return t.Nacionalidad }

func ByEstadoDocumental(t entity.Trabajador) string { return string(t.EstadoDocumental) }
