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

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// Get returns the named profile. Auth is optional; an anonymous viewer
// always sees following=false.
func (h *ProfileHandler) Get(c echo.Context) error {
	viewerID, _ := middleware.UserID(c)

	output, err := h.uc.Get(c.Request().Context(), viewerID, c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"profile": toProfileView(output.User, output.Following)}, "")
}

// Follow ensures the caller follows the named profile.
func (h *ProfileHandler) Follow(c echo.Context) error {
	followerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	output, err := h.uc.Follow(c.Request().Context(), followerID, c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"profile": toProfileView(output.User, output.Following)}, "")
}

// Unfollow ensures the caller does not follow the named profile.
func (h *ProfileHandler) Unfollow(c echo.Context) error {
	followerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	output, err := h.uc.Unfollow(c.Request().Context(), followerID, c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"profile": toProfileView(output.User, output.Following)}, "")
}
