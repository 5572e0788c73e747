package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskbox/todo-api/internal/api/handler"
	"github.com/taskbox/todo-api/internal/api/middleware"
	"github.com/taskbox/todo-api/internal/core/ports"
	"github.com/taskbox/todo-api/internal/core/service"
	mongodb "github.com/taskbox/todo-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskbox/todo-api/internal/infrastructure/db/redis"
	"github.com/taskbox/todo-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the session cache is then skipped and token resolution
// always goes straight to MongoDB.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)

	var cache ports.SessionCache
	if rdb != nil {
		cache = redisdb.NewSessionCache(rdb)
	}

	tokens := service.NewTokenService(jwtSecret)
	userService := service.NewUserService(userRepo, tokens, cache, log)
	todoService := service.NewTodoService(todoRepo, log)

	userHandler := handler.NewUserHandler(userService)
	todoHandler := handler.NewTodoHandler(todoService)
	auth := middleware.Auth(userService)

	// --- User routes ---
	e.POST("/users", userHandler.Register)
	e.POST("/users/login", userHandler.Login)
	e.GET("/users/me", userHandler.Me, auth)
	e.DELETE("/users/me/token", userHandler.Logout, auth)
	e.PATCH("/users/me/password", userHandler.ChangePassword, auth)

	// --- Todo routes (all authenticated) ---
	todos := e.Group("/todos", auth)
	todos.POST("", todoHandler.Create)
	todos.GET("", todoHandler.List)
	todos.GET("/:id", todoHandler.Get)
	todos.PATCH("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
