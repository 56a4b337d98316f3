package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"zerowaste-exchange/internal/handler/api"
	"zerowaste-exchange/internal/handler/middleware"
	"zerowaste-exchange/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Catalog     *api.CatalogHandler
	Offer       *api.OfferHandler
	Reservation *api.ReservationHandler
	Pickup      *api.PickupHandler
	Markdown    *api.MarkdownHandler
	Impact      *api.ImpactHandler
}

// NewRouter mounts all routes at the root; the store console client expects
// the unprefixed paths.
func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group(""), []route{
		{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
		{Method: http.MethodPost, Path: "/products", Handler: h.Catalog.CreateProduct},
		{Method: http.MethodGet, Path: "/batches", Handler: h.Catalog.ListBatches},
		{Method: http.MethodPost, Path: "/batches", Handler: h.Catalog.CreateBatch},
		{Method: http.MethodPost, Path: "/import/products", Handler: h.Catalog.ImportProducts},
		{Method: http.MethodPost, Path: "/import/batches", Handler: h.Catalog.ImportBatches},

		{Method: http.MethodGet, Path: "/offers", Handler: h.Offer.ListOffers},
		{Method: http.MethodPost, Path: "/markdown/calculate", Handler: h.Markdown.Calculate},

		{Method: http.MethodPost, Path: "/reserve", Handler: h.Reservation.Reserve},
		{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListByUser},
		{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.GetByID},
		{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel},

		{Method: http.MethodPost, Path: "/pickup/confirm", Handler: h.Pickup.Confirm},
		{Method: http.MethodPost, Path: "/pickup/relist", Handler: h.Pickup.Relist},

		{Method: http.MethodGet, Path: "/impact", Handler: h.Impact.Get},
	})
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
