package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Reclutamiento-api/internal/application/analytics"
	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/usecase"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	TrabajadorUC   *usecase.TrabajadorUseCase
	LifecycleUC    *usecase.LifecycleUseCase
	ProyectoUC     *usecase.ProyectoUseCase
	ClienteUC      *usecase.ClienteUseCase
	RevisorUC      *usecase.RevisorUseCase
	DistributionUC *usecase.DistributionUseCase
	ImportUC       *usecase.ImportUseCase
	BackupUC       *usecase.BackupUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	BoardUC        *appanalytics.BoardUseCase
	ReportUC       *appanalytics.ReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API: un grupo por portal, cada uno restringido a su rol.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	trabajadorHandler := NewTrabajadorHandler(deps.TrabajadorUC)
	lifecycleHandler := NewLifecycleHandler(deps.LifecycleUC)
	proyectoHandler := NewProyectoHandler(deps.ProyectoUC)
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	revisorHandler := NewRevisorHandler(deps.RevisorUC, deps.DistributionUC)
	backupHandler := NewBackupHandler(deps.BackupUC, deps.ImportUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	analyticsHandler := NewAnalyticsHandler(deps.BoardUC, deps.ReportUC)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Públicos
	api.Post("/auth/login", authHandler.Login)
	api.Get("/guard", OptionalAuth(deps.JWTSecret), authHandler.Guard)
	api.Get("/plataforma/logo", backupHandler.GetLogo)
	api.Post("/trabajador/registro", trabajadorHandler.Registro)

	session := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireSession(deps.AuthUC)}
	portal := func(prefix string, roles ...entity.Rol) fiber.Router {
		handlers := append(append([]fiber.Handler{}, session...), RequireRole(roles...))
		return api.Group(prefix, handlers...)
	}

	api.Get("/auth/me", append(session, authHandler.Me)...)

	// Administrador
	admin := portal("/admin", entity.RolAdmin)
	admin.Get("/dashboard", dashboardHandler.Admin)

	admin.Get("/trabajadores", trabajadorHandler.List)
	admin.Get("/trabajadores/:id", trabajadorHandler.GetByID)
	admin.Put("/trabajadores/:id", trabajadorHandler.UpdatePerfil)
	admin.Delete("/trabajadores/:id", trabajadorHandler.Delete)
	admin.Post("/trabajadores/:id/documentos", trabajadorHandler.AttachDocumento)
	admin.Get("/trabajadores/:id/documentos/:tipo", trabajadorHandler.GetDocumento)
	registerReview(admin, lifecycleHandler)
	registerStages(admin, lifecycleHandler)

	admin.Get("/proyectos", proyectoHandler.List)
	admin.Post("/proyectos", proyectoHandler.Create)
	admin.Get("/proyectos/:id", proyectoHandler.GetByID)
	admin.Put("/proyectos/:id", proyectoHandler.Update)
	admin.Get("/proyectos/:id/tablero", analyticsHandler.Board)
	admin.Get("/proyectos/:id/reporte", analyticsHandler.Reporte)

	admin.Get("/clientes", clienteHandler.List)
	admin.Post("/clientes", clienteHandler.Create)
	admin.Get("/clientes/:id", clienteHandler.GetByID)
	admin.Put("/clientes/:id", clienteHandler.Update)

	admin.Get("/revisores", revisorHandler.List)
	admin.Post("/revisores", revisorHandler.Create)
	admin.Put("/revisores/:id", revisorHandler.Update)
	admin.Delete("/revisores/:id", revisorHandler.Delete)
	admin.Get("/distribucion", revisorHandler.Distribucion)
	admin.Post("/distribucion", revisorHandler.Distribuir)
	admin.Post("/distribucion/auto", revisorHandler.AutoDistribuir)

	admin.Get("/rechazados", analyticsHandler.Rechazados)
	admin.Post("/importacion", backupHandler.Import)
	admin.Get("/respaldo", backupHandler.Export)
	admin.Post("/respaldo", backupHandler.Restore)
	admin.Put("/plataforma/logo", backupHandler.SetLogo)

	// Revisor
	revisor := portal("/revisor", entity.RolRevisor)
	revisor.Get("/dashboard", dashboardHandler.Revisor)
	revisor.Get("/cola", analyticsHandler.ColaValidacion)
	revisor.Get("/rechazos-documentales", analyticsHandler.RechazosDocumentales)
	revisor.Get("/pool", analyticsHandler.PoolLibre)
	revisor.Get("/rechazados", analyticsHandler.Rechazados)
	revisor.Get("/proyectos", proyectoHandler.ListPublicados)
	revisor.Get("/proyectos/:id/tablero", analyticsHandler.Board)
	revisor.Get("/trabajadores/:id", trabajadorHandler.GetByID)
	revisor.Get("/trabajadores/:id/documentos/:tipo", trabajadorHandler.GetDocumento)
	registerReview(revisor, lifecycleHandler)

	// Usuario de cliente
	usuario := portal("/usuario", entity.RolUsuario)
	usuario.Get("/dashboard", dashboardHandler.Usuario)
	usuario.Get("/proyectos/:id", proyectoHandler.GetByID)
	usuario.Get("/proyectos/:id/tablero", analyticsHandler.Board)
	usuario.Get("/proyectos/:id/reporte", analyticsHandler.Reporte)
	registerStages(usuario, lifecycleHandler)

	// Trabajador
	trabajador := portal("/trabajador", entity.RolTrabajador)
	trabajador.Get("/me", trabajadorHandler.Portal)
	trabajador.Put("/perfil", trabajadorHandler.UpdatePerfil)
	trabajador.Put("/credencial", trabajadorHandler.UpdateCredencial)
	trabajador.Post("/documentos", trabajadorHandler.AttachDocumento)
	trabajador.Get("/documentos/:tipo", trabajadorHandler.GetDocumento)
	trabajador.Delete("/cuenta", trabajadorHandler.Delete)
}

// registerReview revisión documental y asignación desde el pool libre.
func registerReview(r fiber.Router, h *LifecycleHandler) {
	r.Post("/trabajadores/:id/validar", h.Validar)
	r.Post("/trabajadores/:id/rechazar-documental", h.RechazarDocumental)
	r.Post("/trabajadores/:id/revalidar", h.Revalidar)
	r.Post("/trabajadores/:id/asignar", h.Asignar)
}

// registerStages etapas del cliente y contratación.
func registerStages(r fiber.Router, h *LifecycleHandler) {
	r.Post("/trabajadores/:id/avanzar", h.Avanzar)
	r.Post("/trabajadores/:id/rechazar", h.RechazarEtapa)
	r.Post("/trabajadores/:id/contratacion", h.AvanzarContratacion)
	r.Post("/proyectos/:id/carpetas", h.SolicitarCarpetas)
}
