// Package reporting consultas de solo lectura para tableros: filtros por fecha,
// clasificación de ocupación, histogramas y kanban de proyectos.
package reporting
