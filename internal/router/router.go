package router

import (
	"net/http"
	"time"

	"github.com/Stephan2025u/FMS-NEW/internal/config"
	"github.com/Stephan2025u/FMS-NEW/internal/handlers"
	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/repository"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, catalog *models.Catalog, store *repository.SessionStore) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	// The cookie session only carries the in-progress assessment session id.
	cookieStore := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400,
	})
	router.Use(sessions.Sessions("fms_session", cookieStore))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	exercisesHandler := handlers.NewExercisesHandler(log, catalog)
	clientsHandler := handlers.NewClientsHandler(log)
	assessmentHandler := handlers.NewAssessmentHandler(log, catalog, store)
	resultsHandler := handlers.NewResultsHandler(log, catalog)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 60,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		exerciseRoutes := api.Group("/fms-exercises")
		{
			exerciseRoutes.GET("", exercisesHandler.List)
			exerciseRoutes.GET("/:id", exercisesHandler.Get)
		}

		clientRoutes := api.Group("/clients")
		{
			clientRoutes.POST("", limiter, clientsHandler.Create)
			clientRoutes.GET("", clientsHandler.List)
			clientRoutes.GET("/:id", clientsHandler.Get)
			clientRoutes.PUT("/:id", limiter, clientsHandler.Update)
			clientRoutes.DELETE("/:id", limiter, clientsHandler.Delete)
			clientRoutes.GET("/:id/progress", resultsHandler.Progress)
		}

		assessmentRoutes := api.Group("/assessment")
		{
			assessmentRoutes.POST("/start", limiter, assessmentHandler.Start)
			assessmentRoutes.GET("/current", assessmentHandler.Current)
			assessmentRoutes.POST("/score", assessmentHandler.Score)
			assessmentRoutes.POST("/next", assessmentHandler.Next)
			assessmentRoutes.POST("/prev", assessmentHandler.Prev)
			assessmentRoutes.POST("/submit", limiter, assessmentHandler.Submit)
			assessmentRoutes.POST("/abandon", assessmentHandler.Abandon)
		}

		resultRoutes := api.Group("/test-results")
		{
			resultRoutes.POST("", limiter, resultsHandler.Create)
			resultRoutes.GET("/:id", resultsHandler.Get)
			resultRoutes.GET("/client/:clientId", resultsHandler.ListForClient)
			resultRoutes.DELETE("/:id", limiter, resultsHandler.Delete)
		}
	}

	return router
}
