package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/dexsamir/portfolio/internal/admin"
	httpapi "github.com/dexsamir/portfolio/internal/api/http"
	"github.com/dexsamir/portfolio/internal/api/http/middleware"
	"github.com/dexsamir/portfolio/internal/api/http/routes"
	"github.com/dexsamir/portfolio/internal/auth"
	authhttp "github.com/dexsamir/portfolio/internal/auth/http"
	authmw "github.com/dexsamir/portfolio/internal/auth/middleware"
	authservice "github.com/dexsamir/portfolio/internal/auth/service"
	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/cache"
	projecthttp "github.com/dexsamir/portfolio/internal/projects/http"
	projectservice "github.com/dexsamir/portfolio/internal/projects/service"
	"github.com/dexsamir/portfolio/internal/ratelimit"
	"github.com/dexsamir/portfolio/internal/site"
	testimonialhttp "github.com/dexsamir/portfolio/internal/testimonials/http"
	testimonialservice "github.com/dexsamir/portfolio/internal/testimonials/service"
	"github.com/dexsamir/portfolio/internal/web"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string

	Backend   *backend.Client
	Redis     *redis.Client
	Snapshots *cache.Snapshots
	Sessions  *auth.Sessions
	Limiter   ratelimit.Limiter
	Site      *site.Content
	Registry  *prometheus.Registry
	Logger    *slog.Logger
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	if dep.Logger == nil {
		dep.Logger = slog.Default()
	}
	if dep.Registry == nil {
		dep.Registry = prometheus.NewRegistry()
	}

	renderer, err := web.NewRenderer(dep.Backend)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	httpMetrics := middleware.NewHTTPMetrics(dep.Registry)

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(httpMetrics.Middleware())
	r.Use(web.WithSite(dep.Site))

	r.StaticFS("/static", web.Static())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(dep.Registry, promhttp.HandlerOpts{})))

	routes.RegisterV1(r, routes.V1Deps{
		Snapshots:   dep.Snapshots,
		CORSOrigins: dep.CORSOrigins,
	})

	public := web.NewPublic(dep.Backend, dep.Snapshots, dep.Logger)
	public.Register(r, middleware.RateLimit(dep.Limiter, "testimonial", httpMetrics, web.TooManyRequests))

	authService := authservice.NewAuthService(dep.Backend, dep.Logger)
	authHandler := authhttp.New(authService, dep.Sessions, dep.Logger)
	authHandler.Register(r, middleware.RateLimit(dep.Limiter, "login", httpMetrics, web.TooManyRequests))

	adminGroup := r.Group("/admin")
	adminGroup.Use(authmw.AdminGuard(dep.Sessions))

	admin.New(dep.Backend, dep.Snapshots, dep.Sessions, dep.Logger).Register(adminGroup)

	projectService := projectservice.NewProjectService(dep.Backend, dep.Snapshots)
	projecthttp.New(projectService, dep.Sessions, dep.Logger).Register(adminGroup.Group("/projects"))

	testimonialService := testimonialservice.NewTestimonialService(dep.Backend, dep.Snapshots)
	testimonialhttp.New(testimonialService, dep.Sessions, dep.Logger).Register(adminGroup.Group("/testimonials"))

	r.NoRoute(web.NotFound)

	return r, nil
}
