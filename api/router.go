package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/goglobe/config"
	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Registrar mounts a resource's routes under /api. authn is the bearer
// token middleware; handlers attach it to the routes that need a principal.
type Registrar interface {
	Register(router *gin.RouterGroup, authn gin.HandlerFunc)
}

func NewRouter(cfg config.HTTPConfig, tokens *auth.TokenManager, log logrus.FieldLogger, handlers ...Registrar) *gin.Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(log))

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
			ExposeHeaders:    []string{requestIDHeader, "Location"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.SwaggerDir != "" {
		r.Static("/swagger", cfg.SwaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/goglobe.swagger.json"),
		)))
	}

	api := r.Group("/api")
	authn := auth.Authenticate(tokens)
	for _, h := range handlers {
		h.Register(api, authn)
	}

	return r
}
