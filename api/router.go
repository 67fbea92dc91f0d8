// Package api - HTTP routing and middleware assembly.
package api

import (
	"shop/api/health"
	"shop/api/item"
	"shop/api/member"
	"shop/api/middleware"
	"shop/api/order"
	"shop/config"

	"github.com/gin-gonic/gin"
)

// Router - route configuration.
type Router struct {
	engine           *gin.Engine
	config           *config.Config
	healthController *health.Controller
	memberController *member.Controller
	itemController   *item.Controller
	orderController  *order.Controller
}

// NewRouter creates the router with the full middleware chain.
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	memberController *member.Controller,
	itemController *item.Controller,
	orderController *order.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Middleware order matters: the request ID must exist before anything
	// logs, and recovery must wrap everything below it.
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine:           engine,
		config:           cfg,
		healthController: healthController,
		memberController: memberController,
		itemController:   itemController,
		orderController:  orderController,
	}
}

// SetupRoutes registers all routes.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.memberController.RegisterRoutes(apiGroup)
		r.itemController.RegisterRoutes(apiGroup)
		r.orderController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
