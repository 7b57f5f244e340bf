package handler

import (
	"log/slog"
	"net/http"

	"registry/internal/delivery/http/middleware"
	"registry/internal/delivery/http/response"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MembershipHandler holds dependencies for member card handlers.
type MembershipHandler struct {
	uc     usecase.MembershipUsecase
	logger *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler, injected by Fx.
func NewMembershipHandler(uc usecase.MembershipUsecase, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCard returns the member's digital membership card.
func (h *MembershipHandler) GetCard(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	card, err := h.uc.GetCard(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "Member card retrieved")
}

// GetCardQR renders the member card's verification QR code as a PNG image.
func (h *MembershipHandler) GetCardQR(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	png, err := h.uc.GetCardQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
