package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Reclutamiento-api/internal/application/analytics"
	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/application/usecase"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/Reclutamiento-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/security"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/seed"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Reclutamiento-api/internal/interfaces/http"
	"github.com/jhoicas/Reclutamiento-api/pkg/config"
	"github.com/jhoicas/Reclutamiento-api/pkg/logger"
)

// passwords es el verificador y el hasher a la vez.
type passwords interface {
	auth.CredentialVerifier
	auth.PasswordHasher
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeRepo()

	var initial *entity.Snapshot
	if cfg.App.SeedFile != "" {
		initial, err = seed.Load(cfg.App.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.App.SeedFile).Msg("datos iniciales")
		}
	}

	st := store.New(repo, initial, log)
	if err := st.Load(ctx); store.Failed(err) {
		log.Fatal().Err(err).Msg("cargar estado")
	}

	var pw passwords = auth.PlainVerifier{}
	if cfg.Auth.PasswordMode == config.PasswordBcrypt {
		pw = security.BcryptVerifier{}
	}

	authUC := auth.NewAuthUseCase(st, pw, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: reporte de candidatos por proyecto
	reportUC := appanalytics.NewReportUseCase(st, infrapdf.NewMarotoReportRenderer())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Reclutamiento API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		TrabajadorUC:   usecase.NewTrabajadorUseCase(st, pw),
		LifecycleUC:    usecase.NewLifecycleUseCase(st),
		ProyectoUC:     usecase.NewProyectoUseCase(st),
		ClienteUC:      usecase.NewClienteUseCase(st, pw),
		RevisorUC:      usecase.NewRevisorUseCase(st, pw),
		DistributionUC: usecase.NewDistributionUseCase(st),
		ImportUC:       usecase.NewImportUseCase(st),
		BackupUC:       usecase.NewBackupUseCase(st),
		DashboardUC:    appanalytics.NewDashboardUseCase(st),
		BoardUC:        appanalytics.NewBoardUseCase(st),
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
