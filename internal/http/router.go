package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yuvrajghadi/thakkar-backend/internal/auth"
	"github.com/yuvrajghadi/thakkar-backend/internal/cache"
	"github.com/yuvrajghadi/thakkar-backend/internal/config"
	"github.com/yuvrajghadi/thakkar-backend/internal/http/handlers"
	"github.com/yuvrajghadi/thakkar-backend/internal/http/middlewares"
	"github.com/yuvrajghadi/thakkar-backend/internal/observability"
	"github.com/yuvrajghadi/thakkar-backend/internal/repo/mongodb"
)

const maxBodyBytes = 1 << 20 // listings carry base64 image refs, keep it roomy

type Deps struct {
	Cfg      config.Config
	Store    *mongodb.Store
	Cache    *cache.Client // nil when no redis configured
	Metrics  *observability.Prom
	Registry *prometheus.Registry
	JWT      *auth.Manager
}

func NewRouter(deps Deps) *gin.Engine {
	if deps.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(deps.Cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))
	r.Use(middlewares.RequireJSON())

	if deps.Metrics != nil {
		r.Use(deps.Metrics.GinHandleMiddleware())
	}

	if deps.Cfg.OtelEnabled {
		r.Use(otelgin.Middleware("thakkar-backend"))
	}

	// health + metrics
	ping := func(ctx context.Context) error {
		if deps.Store == nil {
			return nil
		}

		return deps.Store.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// wire up repositories
	propertiesRepo := mongodb.NewPropertiesRepo(deps.Store, deps.Metrics)
	blogsRepo := mongodb.NewBlogsRepo(deps.Store, deps.Metrics)
	usersRepo := mongodb.NewUsersRepo(deps.Store, deps.Metrics)

	// handlers
	propertiesHandler := handlers.NewPropertiesHandler(propertiesRepo, deps.Cache)
	blogsHandler := handlers.NewBlogsHandler(blogsRepo, deps.Cache)
	authHandler := handlers.NewAuthHandler(usersRepo, deps.JWT)

	authMw := middlewares.NewAuthMiddleware(deps.JWT)
	requireAdmin := authMw.RequireAdmin()

	loginLimiter := middlewares.NewRateLimiter(deps.Cfg.LoginRateLimit, deps.Cfg.LoginRateWindow)

	api := r.Group("/api")

	api.POST("/property", requireAdmin, propertiesHandler.Create)
	api.GET("/properties", propertiesHandler.List)
	api.GET("/property/:id", propertiesHandler.GetByID)
	api.PUT("/property/:id", requireAdmin, propertiesHandler.Update)
	api.DELETE("/property/:id", requireAdmin, propertiesHandler.Delete)

	api.POST("/blog", requireAdmin, blogsHandler.Create)
	api.GET("/blogs", blogsHandler.List)
	api.GET("/blog/:id", blogsHandler.GetByID)

	api.POST("/login", loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Login)

	return r
}
