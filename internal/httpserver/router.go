package httpserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewRouter wires all API routes. Exposed separately from New so tests can
// drive the handler chain without binding a listener.
func NewRouter(logger zerolog.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/articles", h.listArticles)
		api.POST("/articles", h.createArticle)
		api.GET("/articles/:id", h.getArticle)
		api.PUT("/articles/:id", h.updateArticle)
		api.DELETE("/articles/:id", h.deleteArticle)
		api.POST("/articles/:id/like", h.likeArticle)
		api.POST("/articles/:id/views", h.viewArticle)

		api.GET("/articles/:id/comments", h.listComments)
		api.POST("/articles/:id/comments", h.createComment)
		api.DELETE("/comments/:id", h.deleteComment)

		api.GET("/categories", h.listCategories)
		api.POST("/categories", h.createCategory)
		api.GET("/categories/:slug", h.getCategoryBySlug)
		api.PUT("/categories/:id", h.updateCategory)
		api.DELETE("/categories/:id", h.deleteCategory)

		api.GET("/search", h.searchArticles)
	}

	router.GET("/sitemap.xml", h.sitemap)
	router.GET("/robots.txt", h.robots)

	return router
}

// requestLogger logs one line per request with method, path, status and latency.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
