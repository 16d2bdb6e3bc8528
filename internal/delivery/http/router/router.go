// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campsite/internal/delivery/http/middleware"
	"campsite/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CampgroundHandler *handler.CampgroundHandler
	ReviewHandler     *handler.ReviewHandler
	UserHandler       *handler.UserHandler

	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
	SessionMiddleware   *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	campgroundHandler *handler.CampgroundHandler
	reviewHandler     *handler.ReviewHandler
	userHandler       *handler.UserHandler

	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
	sessionMiddleware   *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		campgroundHandler:   params.CampgroundHandler,
		reviewHandler:       params.ReviewHandler,
		userHandler:         params.UserHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
		sessionMiddleware:   params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)
	e.Use(r.sessionMiddleware.Resolve)

	// Landing and health endpoints
	e.GET("/", handler.Home)
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.GET("/register", r.userHandler.RegisterForm)
	e.POST("/register", r.userHandler.Register)
	e.GET("/login", r.userHandler.LoginForm)
	e.POST("/login", r.userHandler.Login)
	e.GET("/logout", r.userHandler.Logout)
	e.POST("/logout", r.userHandler.Logout)

	// Campground routes. The literal "new" route is registered ahead of the
	// parameterized ":id" routes so it always wins the match.
	campgrounds := e.Group("/campgrounds")
	{
		campgrounds.GET("", r.campgroundHandler.Index)
		campgrounds.GET("/new", r.campgroundHandler.New, r.sessionMiddleware.RequireLogin)
		campgrounds.POST("", r.campgroundHandler.Create, r.sessionMiddleware.RequireLogin)
		campgrounds.GET("/:id", r.campgroundHandler.Show)
		campgrounds.GET("/:id/edit", r.campgroundHandler.Edit, r.sessionMiddleware.RequireLogin)
		campgrounds.PUT("/:id", r.campgroundHandler.Update, r.sessionMiddleware.RequireLogin)
		campgrounds.DELETE("/:id", r.campgroundHandler.Delete, r.sessionMiddleware.RequireLogin)

		// Review routes nested under their campground
		campgrounds.POST("/:id/reviews", r.reviewHandler.Create, r.sessionMiddleware.RequireLogin)
		campgrounds.DELETE("/:id/reviews/:reviewId", r.reviewHandler.Delete, r.sessionMiddleware.RequireLogin)
	}
}
