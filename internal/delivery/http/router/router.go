// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"conduit/internal/delivery/http/middleware"
	"conduit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	ArticleHandler *handler.ArticleHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	articleHandler *handler.ArticleHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		articleHandler: params.ArticleHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	required := r.authMiddleware.Authenticate
	optional := r.authMiddleware.AuthenticateOptional

	// Registration and login
	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
	}

	// Current account, always authenticated
	userGroup := e.Group("/user")
	userGroup.Use(required)
	{
		userGroup.GET("", r.userHandler.GetCurrent)
		userGroup.PUT("", r.userHandler.UpdateCurrent)
	}

	// Public profiles and follow edges
	profilesGroup := e.Group("/profiles")
	{
		profilesGroup.GET("/:username", r.profileHandler.Get, optional)
		profilesGroup.POST("/:username/follow", r.profileHandler.Follow, required)
		profilesGroup.DELETE("/:username/follow", r.profileHandler.Unfollow, required)
	}

	// Articles, favorites and comments
	articlesGroup := e.Group("/articles")
	{
		articlesGroup.POST("", r.articleHandler.Create, required)
		articlesGroup.GET("/:slug", r.articleHandler.Get, optional)
		articlesGroup.PUT("/:slug", r.articleHandler.Update, required)
		articlesGroup.DELETE("/:slug", r.articleHandler.Delete, required)
		articlesGroup.POST("/:slug/favorite", r.articleHandler.Favorite, required)
		articlesGroup.DELETE("/:slug/favorite", r.articleHandler.Unfavorite, required)
		articlesGroup.POST("/:slug/comments", r.commentHandler.Create, required)
		articlesGroup.DELETE("/:slug/comments/:id", r.commentHandler.Delete, required)
	}
}
