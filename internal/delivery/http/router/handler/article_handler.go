package handler

import (
	"log/slog"
	"net/http"

	"conduit/internal/delivery/http/middleware"
	"conduit/internal/delivery/http/response"
	"conduit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArticleHandler holds dependencies for article-related handlers.
type ArticleHandler struct {
	uc     usecase.ArticleUsecase
	logger *slog.Logger
}

// NewArticleHandler is the constructor for ArticleHandler, injected by Fx.
func NewArticleHandler(uc usecase.ArticleUsecase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{uc: uc, logger: logger}
}

type createArticleRequest struct {
	Article struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description"`
		Body        string   `json:"body" validate:"required"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

type updateArticleRequest struct {
	Article struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	} `json:"article"`
}

// Create publishes a new article under the caller's identity.
func (h *ArticleHandler) Create(c echo.Context) error {
	authorID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Article input failed validation")
	}

	output, err := h.uc.Create(c.Request().Context(), authorID, &usecase.CreateArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		TagList:     req.Article.TagList,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"article": toArticleView(output)}, "Article created successfully")
}

// Get returns the article behind the slug. Auth is optional.
func (h *ArticleHandler) Get(c echo.Context) error {
	viewerID, _ := middleware.UserID(c)

	output, err := h.uc.Get(c.Request().Context(), viewerID, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"article": toArticleView(output)}, "")
}

// Update modifies the caller's own article.
func (h *ArticleHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}

	output, err := h.uc.Update(c.Request().Context(), userID, c.Param("slug"), &usecase.UpdateArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"article": toArticleView(output)}, "Article updated successfully")
}

// Delete soft-deletes the caller's own article.
func (h *ArticleHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Article deleted successfully")
}

// Favorite ensures the caller's favorite edge on the article.
func (h *ArticleHandler) Favorite(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	output, err := h.uc.Favorite(c.Request().Context(), userID, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"article": toArticleView(output)}, "")
}

// Unfavorite removes the caller's favorite edge from the article.
func (h *ArticleHandler) Unfavorite(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	output, err := h.uc.Unfavorite(c.Request().Context(), userID, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"article": toArticleView(output)}, "")
}
