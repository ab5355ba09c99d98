package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/taskboard-dev/taskboard/internal/handlers"
	"github.com/taskboard-dev/taskboard/internal/middleware"
	"github.com/taskboard-dev/taskboard/internal/types"
)

type Options struct {
	AllowedOrigins     []string
	StrictBearerScheme bool
	Tokens             middleware.TokenVerifier
	Handler            *handlers.Handler
	Logger             zerolog.Logger
}

func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(opts.Logger), gin.Recovery())

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = types.DefaultAllowedOrigins
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := opts.Handler

	r.GET("/health", h.HealthCheck)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	gated := r.Group("", middleware.AuthMiddleware(opts.Tokens, opts.StrictBearerScheme))
	{
		gated.GET("/usuario", h.CurrentUser)
		gated.GET("/ws", h.WebSocket)

		gated.POST("/proyecto", h.CreateProject)
		gated.GET("/proyectos", h.ListProjects)
		gated.PUT("/proyecto/:id", h.UpdateProject)
		gated.DELETE("/proyecto/:id", h.DeleteProject)

		gated.POST("/tarea", h.CreateTask)
		gated.GET("/tareas", h.ListTasks)
		gated.PUT("/tarea/:id", h.UpdateTask)
		gated.DELETE("/tarea/:id", h.DeleteTask)
	}

	return r
}
