package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookstay/internal/handler/api"
	"bookstay/internal/handler/middleware"
	"bookstay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	calendarHandler *api.CalendarHandler,
	inventoryHandler *api.InventoryHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, calendarHandler, inventoryHandler, paymentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	calendarHandler *api.CalendarHandler,
	inventoryHandler *api.InventoryHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		listings := apiGroup.Group("/listings/:listing_id")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "/calendar", Handler: calendarHandler.GetCalendar},
			})

			operatorRequired := listings.Group("")
			operatorRequired.Use(authMiddleware.RequireOperator())
			addRoutes(operatorRequired, []route{
				{Method: http.MethodPut, Path: "/ranges", Handler: inventoryHandler.UpsertRange},
				{Method: http.MethodPost, Path: "/blocks", Handler: inventoryHandler.BlockDate},
				{Method: http.MethodDelete, Path: "/blocks/:date", Handler: inventoryHandler.UnblockDate},
				{Method: http.MethodPut, Path: "/overrides", Handler: inventoryHandler.UpsertOverride},
				{Method: http.MethodDelete, Path: "/overrides/:date", Handler: inventoryHandler.RemoveOverride},
				{Method: http.MethodPost, Path: "/capacity/consume", Handler: inventoryHandler.ConsumeCapacity},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/breakdown", Handler: paymentHandler.CalculateBreakdown},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
