package router

import (
	"context"
	"time"

	"restaurante/internal/config"
	"restaurante/internal/handler"
	"restaurante/internal/infra"
	"restaurante/internal/middleware"
	"restaurante/internal/model"
	"restaurante/internal/repository"
	"restaurante/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// crudHandler is the five-operation surface every resource exposes.
type crudHandler interface {
	Crear(c *gin.Context)
	Listar(c *gin.Context)
	ObtenerPorID(c *gin.Context)
	Actualizar(c *gin.Context)
	Eliminar(c *gin.Context)
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Cache.
// Background work started here (rate limiter purge) stops when ctx is done.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, cache infra.Cache) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	apiLimiter := middleware.NewLimiter(cfg.RateLimitPerMinute, time.Minute)
	loginLimiter := middleware.NewLimiter(20, time.Minute)
	middleware.StartPurge(ctx.Done(), apiLimiter, loginLimiter)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler(!cfg.IsProduction()))
	r.Use(middleware.RateLimiter(apiLimiter))

	// ── Metrics ──────────────────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	extra := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	if sqlDB, err := db.DB(); err == nil {
		extra = append(extra, collectors.NewDBStatsCollector(sqlDB, "restaurante"))
	}
	metrics, err := middleware.NewMetrics(reg, extra...)
	if err != nil {
		log.Error().Err(err).Msg("metrics disabled")
	} else {
		r.Use(metrics.Middleware())
		r.GET("/metrics", metrics.Handler())
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	turnoRepo := repository.NewTurnoRepository(db)
	ingredienteRepo := repository.NewIngredienteRepository(db)
	platoRepo := repository.NewPlatoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	menu := service.NewCacheMenu(cache, time.Duration(cfg.MenuCacheTTLMinutes)*time.Minute)

	authSvc := service.NewAuthService(empleadoRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo)
	turnoSvc := service.NewTurnoService(turnoRepo)
	ingredienteSvc := service.NewIngredienteService(ingredienteRepo, menu)
	platoSvc := service.NewPlatoService(platoRepo, ingredienteRepo, menu)
	pedidoSvc := service.NewPedidoService(pedidoRepo, platoRepo)
	reporteSvc := service.NewReporteService(pedidoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clienteH := handler.NewClienteHandler(clienteSvc)
	empleadoH := handler.NewEmpleadoHandler(empleadoSvc)
	turnoH := handler.NewTurnoHandler(turnoSvc)
	ingredienteH := handler.NewIngredienteHandler(ingredienteSvc)
	menuH := handler.NewMenuHandler(platoSvc)
	pedidoH := handler.NewPedidoHandler(pedidoSvc, reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, cache))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(loginLimiter), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// isAdmin gate for every /admin variant
	isAdmin := []gin.HandlerFunc{
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRol(model.RolAdministrador),
	}

	// Static segments are registered before the CRUD routes for readability;
	// gin resolves them ahead of :id either way.
	api.GET("/empleado/buscar", empleadoH.Buscar)
	api.GET("/turno/conflicto", turnoH.Conflicto)
	api.GET("/pedido/export", pedidoH.Exportar)
	api.GET("/pedido/:id/ticket", pedidoH.Ticket)
	api.POST("/pedido/:id/platos/:platoID", pedidoH.AgregarPlato)
	api.DELETE("/pedido/:id/platos/:platoID", pedidoH.QuitarPlato)

	recursos := []struct {
		path string
		h    crudHandler
	}{
		{"/cliente", clienteH},
		{"/empleado", empleadoH},
		{"/turno", turnoH},
		{"/menu", menuH},
		{"/ingrediente", ingredienteH},
		{"/pedido", pedidoH},
	}
	for _, rec := range recursos {
		registrarCRUD(api.Group(rec.path), rec.h, isAdmin)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// registrarCRUD mounts the open routes and their /admin twins.
func registrarCRUD(g *gin.RouterGroup, h crudHandler, isAdmin []gin.HandlerFunc) {
	g.POST("", h.Crear)
	g.GET("", h.Listar)
	g.GET("/:id", h.ObtenerPorID)
	g.PUT("/:id", h.Actualizar)
	g.DELETE("/:id", h.Eliminar)

	admin := g.Group("/admin", isAdmin...)
	{
		admin.POST("", h.Crear)
		admin.PUT("/:id", h.Actualizar)
		admin.DELETE("/:id", h.Eliminar)
	}
}
