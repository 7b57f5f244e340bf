package handler

import (
	"io"
	"log/slog"
	"net/http"

	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxWebhookBodySize caps the raw webhook payload we are willing to read.
const maxWebhookBodySize = 1 << 20 // 1 MiB

// WebhookHandler receives payment-provider webhooks. This is the only path
// through which memberships get activated.
type WebhookHandler struct {
	paymentService service.PaymentService
	membershipUc   usecase.MembershipUsecase
	logger         *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(
	paymentService service.PaymentService,
	membershipUc usecase.MembershipUsecase,
	logger *slog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		paymentService: paymentService,
		membershipUc:   membershipUc,
		logger:         logger,
	}
}

// HandleStripeWebhook verifies the webhook signature against the raw body and
// dispatches the parsed event. Events this service does not consume are
// acknowledged with 200 so the provider stops retrying them.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBodySize))
	if err != nil {
		return errors.WithStack(domainerrors.ErrWebhookInvalid.WrapMessage("failed to read webhook body"))
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	event, err := h.paymentService.VerifyWebhook(payload, signature)
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", "error", err.Error())

		return errors.WithStack(domainerrors.ErrWebhookInvalid.WrapMessage("signature verification failed"))
	}

	if err := h.membershipUc.ActivateMembership(c.Request().Context(), event); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"received": "true"})
}
