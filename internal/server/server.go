package server

import (
	"github.com/gin-gonic/gin"

	"tasktracker/internal/api/controller"
	"tasktracker/internal/api/middleware"
	"tasktracker/internal/api/service"
)

// Server assembles the gin engine: middleware order, route table and the
// auth guard on the task group.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the engine. The access logger runs on every route; the
// task group additionally requires a resolved bearer identity.
func NewServer(
	userController *controller.UserController,
	taskController *controller.TaskController,
	userService service.UserService,
	accessLog *middleware.AccessLogger,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(accessLog.Handler())

	engine.POST("/register", userController.Register)
	engine.POST("/token", userController.Login)

	tasks := engine.Group("/tasks")
	tasks.Use(middleware.RequireAuth(userService))
	{
		tasks.POST("/", taskController.Create)
		tasks.GET("", taskController.List)
		tasks.GET("/:id", taskController.Get)
		tasks.PUT("/:id", taskController.Update)
		tasks.DELETE("/:id", taskController.Delete)
	}

	return &Server{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
