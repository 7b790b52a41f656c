package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/cache"
	"github.com/dexsamir/portfolio/internal/domain"
)

type V1Deps struct {
	Snapshots   *cache.Snapshots
	CORSOrigins []string
}

// RegisterV1 exposes the cached public lists as JSON for other front ends.
func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(cors.New(corsConfig(dep.CORSOrigins)))

	api.GET("/projects", func(c *gin.Context) {
		projects, err := dep.Snapshots.Projects(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
	})

	api.GET("/testimonials", func(c *gin.Context) {
		all, err := dep.Snapshots.Testimonials(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "testimonials": domain.PublicTestimonials(all)})
	})
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
