package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"conduit/internal/domain/service"
	mockSvc "conduit/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, tokenSvc service.TokenService, header string, optional bool) (*httptest.ResponseRecorder, echo.Context, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	handler := m.Authenticate(next)
	if optional {
		handler = m.AuthenticateOptional(next)
	}

	require.NoError(t, handler(c))

	return rec, c, reached
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("valid-token").Return(int64(7), nil)

	rec, c, reached := runAuth(t, tokenSvc, "Token valid-token", false)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	userID, ok := UserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _, reached := runAuth(t, tokenSvc, "", false)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_SchemeIsExact(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "bearer scheme", header: "Bearer some-token"},
		{name: "lowercase token", header: "token some-token"},
		{name: "no space", header: "Tokensome-token"},
		{name: "scheme only", header: "Token "},
		{name: "bare token", header: "some-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)

			rec, _, reached := runAuth(t, tokenSvc, tt.header, false)

			assert.False(t, reached)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("bad-token").Return(int64(0), service.ErrInvalidToken)

	rec, _, reached := runAuth(t, tokenSvc, "Token bad-token", false)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateOptional_NoHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, c, reached := runAuth(t, tokenSvc, "", true)

	// Anonymous requests pass through with no identity set.
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := UserID(c)
	assert.False(t, ok)
}

func TestAuthenticateOptional_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("valid-token").Return(int64(7), nil)

	_, c, reached := runAuth(t, tokenSvc, "Token valid-token", true)

	assert.True(t, reached)
	userID, ok := UserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)
}

func TestAuthenticateOptional_BadTokenStillRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("bad-token").Return(int64(0), service.ErrInvalidToken)

	rec, _, reached := runAuth(t, tokenSvc, "Token bad-token", true)

	// A credential that is present but unusable is an error, not anonymity.
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
