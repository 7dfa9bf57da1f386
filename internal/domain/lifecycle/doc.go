// Package lifecycle contiene la máquina de estados del candidato: revisión documental,
// asignación a proyecto y etapas del cliente, más la derivación del estado de completitud
// de un proyecto.
//
// Todas las funciones son puras: reciben una copia del trabajador y devuelven la copia
// actualizada o un error de precondición (domain.Err*). Nunca persisten ni registran logs.
package lifecycle
