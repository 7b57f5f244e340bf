package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"registry/internal/domain/service"
	mockService "registry/internal/mocks/service"
	mockUsecase "registry/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWebhookHandler_HandleStripeWebhook_Completed(t *testing.T) {
	mockPayment := mockService.NewMockPaymentService(t)
	mockMembership := mockUsecase.NewMockMembershipUsecase(t)
	handler := NewWebhookHandler(mockPayment, mockMembership, slog.Default())

	e := newTestEcho()
	e.POST("/webhooks/stripe", handler.HandleStripeWebhook)

	event := &service.CheckoutEvent{
		Type:           service.CheckoutEventCompleted,
		UserID:         "0d9c1e6a-4f2b-4f0e-9f2a-1b2c3d4e5f60",
		CustomerID:     "cus_123",
		SubscriptionID: "sub_456",
	}
	payload := `{"type":"checkout.session.completed"}`

	mockPayment.EXPECT().VerifyWebhook([]byte(payload), "sig_valid").Return(event, nil)
	mockMembership.EXPECT().ActivateMembership(mock.Anything, event).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", "sig_valid")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "received")
}

func TestWebhookHandler_HandleStripeWebhook_BadSignature(t *testing.T) {
	mockPayment := mockService.NewMockPaymentService(t)
	mockMembership := mockUsecase.NewMockMembershipUsecase(t)
	handler := NewWebhookHandler(mockPayment, mockMembership, slog.Default())

	e := newTestEcho()
	e.POST("/webhooks/stripe", handler.HandleStripeWebhook)

	payload := `{"type":"checkout.session.completed"}`
	mockPayment.EXPECT().VerifyWebhook([]byte(payload), "sig_bad").
		Return(nil, errors.New("signature mismatch"))

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", "sig_bad")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// The membership usecase must never be reached on a bad signature.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "WEBHOOK_INVALID")
	mockMembership.AssertNotCalled(t, "ActivateMembership", mock.Anything, mock.Anything)
}

func TestWebhookHandler_HandleStripeWebhook_IgnoredEvent(t *testing.T) {
	mockPayment := mockService.NewMockPaymentService(t)
	mockMembership := mockUsecase.NewMockMembershipUsecase(t)
	handler := NewWebhookHandler(mockPayment, mockMembership, slog.Default())

	e := newTestEcho()
	e.POST("/webhooks/stripe", handler.HandleStripeWebhook)

	event := &service.CheckoutEvent{Type: service.CheckoutEventIgnored}
	payload := `{"type":"invoice.paid"}`

	mockPayment.EXPECT().VerifyWebhook([]byte(payload), "sig_valid").Return(event, nil)
	mockMembership.EXPECT().ActivateMembership(mock.Anything, event).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", "sig_valid")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Ignored events are still acknowledged so the provider stops retrying.
	assert.Equal(t, http.StatusOK, rec.Code)
}
