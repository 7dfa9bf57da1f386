package reporting

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// fold pasa a minúsculas y elimina tildes ("José" → "jose").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// MatchesSearch coincidencia sin distinguir mayúsculas ni tildes sobre nombre, RUT y
// especialidad. Un término vacío coincide con todo.
func MatchesSearch(t entity.Trabajador, term string) bool {
	term = fold(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(fold(t.Nombre), term) ||
		strings.Contains(fold(t.Rut), term) ||
		strings.Contains(fold(t.Especialidad), term)
}

// Search filtra la colección con MatchesSearch.
func Search(workers []entity.Trabajador, term string) []entity.Trabajador {
	if strings.TrimSpace(term) == "" {
		return workers
	}
	out := []entity.Trabajador{}
	for _, t := range workers {
		if MatchesSearch(t, term) {
			out = append(out, t)
		}
	}
	return out
}
