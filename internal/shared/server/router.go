package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"guide-backend/internal/careers"
	"guide-backend/internal/resorts"
	"guide-backend/internal/services/health"
	"guide-backend/internal/shared/config"
	"guide-backend/internal/shared/metrics"
	"guide-backend/internal/shared/server/middleware"
	"guide-backend/internal/shared/server/respond"
	"guide-backend/internal/shoulder"
	"guide-backend/internal/web"
)

const (
	groupAPI   = "API"
	groupPages = "PAGES"
	groupOther = "OTHER"
)

// RouterDeps holds everything NewRouter wires.
type RouterDeps struct {
	Config          config.Config
	Limiter         middleware.Limiter
	Health          *health.Service
	CareersHandler  *careers.Handler
	ResortsHandler  *resorts.Handler
	ShoulderHandler *shoulder.Handler
}

// NewRouter constructs the Gin engine with middleware, pages and API routes registered.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := RegisterValidations(map[string]validator.Func{
		careers.TypeCodeTag:   careers.ValidateTypeCode,
		resorts.TravelModeTag: resorts.ValidateTravelMode,
	}); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: groupOther,
			GroupFor:     rateLimitGroup,
			Limiter:      deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				groupAPI:   {Rate: deps.Config.RateLimit.Rate, Burst: deps.Config.RateLimit.Burst},
				groupPages: {Rate: deps.Config.RateLimit.Rate, Burst: deps.Config.RateLimit.Burst},
			},
		}),
	)

	if err := web.Install(r); err != nil {
		return nil, err
	}
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})

	if h := deps.CareersHandler; h != nil {
		h.RegisterRoutes(api)
		h.RegisterPages(r)
	}
	if h := deps.ResortsHandler; h != nil {
		h.RegisterRoutes(api)
		h.RegisterPages(r)
	}
	if h := deps.ShoulderHandler; h != nil {
		h.RegisterRoutes(api)
		h.RegisterPages(r)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})
	return r, nil
}

func rateLimitGroup(c *gin.Context) string {
	path := c.Request.URL.Path
	switch {
	case path == "/api/v1/health":
		return groupOther
	case strings.HasPrefix(path, "/api/"):
		return groupAPI
	case path == "/" || path == "/careers" || path == "/resorts" || path == "/shoulder":
		return groupPages
	default:
		return groupOther
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
