package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"registry/internal/domain/service"
	mockService "registry/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	userID := uuid.New()
	mockTokenSvc.EXPECT().ValidateAccessToken("valid-token").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"member"},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID uuid.UUID
	next := func(c echo.Context) error {
		var ok bool
		gotUserID, ok = UserIDFromContext(c)
		require.True(t, ok)

		return okHandler(c)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abcdef")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	mockTokenSvc.EXPECT().ValidateAccessToken("expired-token").Return(nil, assert.AnError)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	tests := []struct {
		name     string
		roles    any
		wantCode int
	}{
		{name: "has role", roles: []string{"member", "admin"}, wantCode: http.StatusOK},
		{name: "missing role", roles: []string{"member"}, wantCode: http.StatusForbidden},
		{name: "no role info", roles: nil, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.roles != nil {
				c.Set(ContextKeyRoles, tt.roles)
			}

			err := m.RequireRole("admin")(okHandler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
