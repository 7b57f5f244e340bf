package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"registry/internal/delivery/http/middleware"
	domainerrors "registry/internal/domain/errors"
	mockUsecase "registry/internal/mocks/usecase"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newTestEcho builds an Echo instance with the same error handling the real
// server uses, so handler errors map to the expected status codes.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	return e
}

func TestVerificationHandler_VerifyMember_Active(t *testing.T) {
	mockUc := mockUsecase.NewMockVerificationUsecase(t)
	handler := NewVerificationHandler(mockUc, slog.Default())

	e := newTestEcho()
	e.GET("/verify/:memberId", handler.VerifyMember)

	validUntil := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)
	mockUc.EXPECT().VerifyMember(mock.Anything, "REG123456").Return(&usecase.VerifyMemberOutput{
		MemberID:   "REG123456",
		FullName:   "Test Member",
		IssuedAt:   time.Now().Add(-24 * time.Hour).Truncate(time.Second),
		Active:     true,
		ValidUntil: validUntil,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/verify/REG123456", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"member_id":"REG123456"`)
	assert.Contains(t, body, `"active":true`)
	assert.NotContains(t, body, "email")
}

func TestVerificationHandler_VerifyMember_Unknown(t *testing.T) {
	mockUc := mockUsecase.NewMockVerificationUsecase(t)
	handler := NewVerificationHandler(mockUc, slog.Default())

	e := newTestEcho()
	e.GET("/verify/:memberId", handler.VerifyMember)

	mockUc.EXPECT().VerifyMember(mock.Anything, "REG000000").
		Return(nil, domainerrors.ErrVerificationFailed.WrapMessage("unknown member id"))

	req := httptest.NewRequest(http.MethodGet, "/verify/REG000000", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, "VERIFICATION_FAILED")
}
