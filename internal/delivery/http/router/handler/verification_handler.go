package handler

import (
	"log/slog"
	"net/http"

	"registry/internal/delivery/http/response"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler serves public, unauthenticated member verification.
type VerificationHandler struct {
	uc     usecase.VerificationUsecase
	logger *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// VerifyMember resolves a member ID scanned from a card's QR code.
func (h *VerificationHandler) VerifyMember(c echo.Context) error {
	memberID := c.Param("memberId")
	if memberID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Member ID is required")
	}

	output, err := h.uc.VerifyMember(c.Request().Context(), memberID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Member verified")
}
