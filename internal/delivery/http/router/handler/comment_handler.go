package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"conduit/internal/delivery/http/middleware"
	"conduit/internal/delivery/http/response"
	"conduit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

type createCommentRequest struct {
	Comment struct {
		Body string `json:"body" validate:"required"`
	} `json:"comment"`
}

// Create posts a comment on the article behind the slug.
func (h *CommentHandler) Create(c echo.Context) error {
	authorID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Comment input failed validation")
	}

	output, err := h.uc.Create(c.Request().Context(), authorID, c.Param("slug"), &usecase.CreateCommentInput{
		Body: req.Comment.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"comment": toCommentView(output)}, "Comment created successfully")
}

// Delete removes the caller's own comment from the article.
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Comment id must be an integer")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("slug"), commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
