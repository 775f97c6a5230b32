package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"

	"meeting-room-booking/internal/handler/api"
	"meeting-room-booking/internal/handler/middleware"
	"meeting-room-booking/internal/pkg/config"
	"meeting-room-booking/internal/usecase/commands"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Room    *api.RoomHandler
	History *api.HistoryHandler
	Alert   *api.AlertHandler
	Archive *api.ArchiveHandler
}

type Middlewares struct {
	fx.In

	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
	Archive     commands.ArchiveCommands
	Logger      *slog.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	sweep := middleware.SweepBeforeRead(mw.Archive)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.ListNames},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListUpcoming, Mw: []gin.HandlerFunc{sweep}},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{mw.RateLimiter.Middleware()}},
			{Method: http.MethodGet, Path: "/available_times", Handler: h.Booking.AvailableTimes},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{mw.RateLimiter.Middleware()}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := admin.Group("")
			authRequired.Use(mw.Auth.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListAll, Mw: []gin.HandlerFunc{sweep}},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Booking.Update},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Delete},

				{Method: http.MethodGet, Path: "/history", Handler: h.History.List, Mw: []gin.HandlerFunc{sweep}},
				{Method: http.MethodDelete, Path: "/history/:id", Handler: h.History.Delete},

				{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.List},
				{Method: http.MethodPost, Path: "/rooms", Handler: h.Room.Create},
				{Method: http.MethodPut, Path: "/rooms/:id", Handler: h.Room.Rename},
				{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Room.Delete},

				{Method: http.MethodGet, Path: "/alerts", Handler: h.Alert.List},
				{Method: http.MethodPost, Path: "/archive/sweep", Handler: h.Archive.Sweep},
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
