// Package bulkimport convierte los registros de una carga masiva en trabajadores nuevos.
package bulkimport

import (
	"strings"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// Tipos de documento reconocidos en la carga masiva.
const (
	DocCV           = "cv"
	DocCedula       = "cedula"
	DocAntecedentes = "antecedentes"
	DocCertificado  = "certificado"
)

// Required documentos obligatorios, en el orden en que se informan.
var Required = []string{DocCV, DocCedula, DocAntecedentes}

// Known todos los tipos aceptados; cualquier otra clave se descarta.
var Known = []string{DocCV, DocCedula, DocAntecedentes, DocCertificado}

// placeholder valor por defecto de los campos de texto faltantes.
const placeholder = "N/A"

// Record candidato ya parseado desde el archivo de carga.
type Record struct {
	Nombre          string            `json:"nombre" yaml:"nombre"`
	Rut             string            `json:"rut" yaml:"rut"`
	FechaNacimiento string            `json:"fechaNacimiento" yaml:"fechaNacimiento"`
	Telefono        string            `json:"telefono" yaml:"telefono"`
	Ciudad          string            `json:"ciudad" yaml:"ciudad"`
	Nacionalidad    string            `json:"nacionalidad" yaml:"nacionalidad"`
	Especialidad    string            `json:"especialidad" yaml:"especialidad"`
	Documentos      map[string]string `json:"documentos" yaml:"documentos"`
}

// Rejection registro descartado y los documentos obligatorios que le faltan.
type Rejection struct {
	Index     int      `json:"index"`
	Rut       string   `json:"rut"`
	Nombre    string   `json:"nombre"`
	Faltantes []string `json:"faltantes"`
}

// Missing documentos obligatorios ausentes (o vacíos) en el registro.
func Missing(r Record) []string {
	var out []string
	for _, d := range Required {
		if strings.TrimSpace(r.Documentos[d]) == "" {
			out = append(out, d)
		}
	}
	return out
}

// Eligible: cv, cédula y antecedentes presentes. El certificado es opcional.
func Eligible(r Record) bool {
	return len(Missing(r)) == 0
}

var birthLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

// ParseBirthDate acepta ISO-8601 y los formatos día-mes-año habituales.
func ParseBirthDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range birthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AgeAt edad como diferencia de años calendario.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if age < 0 {
		return 0
	}
	return age
}

func orDefault(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return placeholder
	}
	return s
}

// Build crea los trabajadores de los registros elegibles, numerados a continuación de
// maxNumero y en revisión documental. newID genera el id de cada trabajador.
func Build(records []Record, maxNumero int, now time.Time, newID func() string) ([]entity.Trabajador, []Rejection) {
	var (
		out      []entity.Trabajador
		rejected []Rejection
	)
	for i, r := range records {
		if faltan := Missing(r); len(faltan) > 0 {
			rejected = append(rejected, Rejection{Index: i, Rut: r.Rut, Nombre: r.Nombre, Faltantes: faltan})
			continue
		}
		t := entity.Trabajador{
			ID:               newID(),
			Numero:           maxNumero + len(out) + 1,
			Nombre:           orDefault(r.Nombre),
			Especialidad:     orDefault(r.Especialidad),
			Rut:              orDefault(r.Rut),
			Ciudad:           orDefault(r.Ciudad),
			Nacionalidad:     orDefault(r.Nacionalidad),
			Telefono:         orDefault(r.Telefono),
			EstadoDocumental: entity.EstadoEnRevision,
			FechaRegistro:    now,
			Documentos:       map[string]string{},
		}
		if birth, ok := ParseBirthDate(r.FechaNacimiento); ok {
			t.FechaNacimiento = &birth
			t.Edad = AgeAt(birth, now)
		}
		for _, d := range Known {
			if v := strings.TrimSpace(r.Documentos[d]); v != "" {
				t.Documentos[d] = v
			}
		}
		out = append(out, t)
	}
	return out, rejected
}
