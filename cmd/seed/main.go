// Comando seed: carga un archivo YAML (o un respaldo JSON) y lo guarda en el
// almacenamiento configurado, reemplazando el estado existente.
package main

import (
	"context"
	"flag"

	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/seed"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/storage"
	"github.com/jhoicas/Reclutamiento-api/pkg/config"
	"github.com/jhoicas/Reclutamiento-api/pkg/logger"
)

func main() {
	file := flag.String("file", "assets/seed.yaml", "archivo con los datos iniciales")
	force := flag.Bool("force", false, "sobrescribir aunque ya exista un estado guardado")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	snap, err := seed.Load(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("leer datos iniciales")
	}

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeRepo()

	current, err := repo.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer estado actual")
	}
	if current != nil && !*force {
		log.Warn().Msg("ya existe un estado guardado; use -force para reemplazarlo")
		return
	}

	if err := repo.Save(ctx, snap); err != nil {
		log.Fatal().Err(err).Msg("guardar datos iniciales")
	}
	log.Info().
		Str("storage", cfg.Storage.Driver).
		Int("trabajadores", len(snap.Trabajadores)).
		Int("proyectos", len(snap.Proyectos)).
		Int("clientes", len(snap.Clientes)).
		Msg("datos iniciales guardados")
}
