package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mrftrack/internal/config"
	"mrftrack/internal/domain"
	"mrftrack/internal/handler"
	"mrftrack/internal/middleware"
	"mrftrack/internal/service"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Waste  *handler.WasteHandler
	Sale   *handler.SaleHandler
	Report *handler.ReportHandler
	Health *handler.HealthHandler
}

// New builds the Gin engine with middleware and all routes registered.
// Authorization is composed per route: AuthMiddleware establishes
// identity, RequireActiveUser re-checks soft deletion, and RequireRole
// gates each operation on the caller's role.
func New(
	cfg *config.Config,
	log *zap.Logger,
	h Handlers,
	authService service.AuthService,
	userService service.UserService,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	protected.Use(middleware.RequireActiveUser(userService))

	recorders := middleware.RequireRole(domain.RoleOperator, domain.RoleManager)
	managers := middleware.RequireRole(domain.RoleManager)
	panchayat := middleware.RequireRole(domain.RolePanchayat)

	users := protected.Group("/users")
	{
		users.GET("/me", h.User.Me)
		users.PUT("/me", h.User.UpdateMe)
		users.POST("", managers, h.User.Create)
		users.GET("", managers, h.User.List)
		users.GET("/:id", managers, h.User.GetByID)
		users.PUT("/:id", managers, h.User.Update)
		users.DELETE("/:id", managers, h.User.Delete)
	}

	waste := protected.Group("/waste")
	{
		waste.POST("/intake", recorders, h.Waste.CreateIntake)
		waste.GET("/intake", h.Waste.ListIntake)
		waste.POST("/sort", recorders, h.Waste.CreateSorted)
		waste.GET("/sort/:intake_id", h.Waste.ListSorted)
		waste.GET("/categories", h.Waste.ListCategories)
		waste.POST("/categories", managers, h.Waste.CreateCategory)
	}

	sales := protected.Group("/sales")
	{
		sales.POST("", recorders, h.Sale.Create)
		sales.GET("", h.Sale.List)
		sales.GET("/summary", h.Sale.Summary)
		sales.PUT("/:id", managers, h.Sale.Update)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/daily", h.Report.Daily)
		reports.GET("/monthly", h.Report.Monthly)
		reports.GET("/monthly/export", h.Report.MonthlyExport)
		reports.GET("/panchayat", panchayat, h.Report.Panchayat)
	}

	return r
}
