package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegefaq/pkg/auth/token"
)

func echoRequest(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	tm := token.NewManager("s", time.Hour)
	c, rec := echoRequest("")

	require.NoError(t, RequireAuth(tm)(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	tm := token.NewManager("s", time.Hour)
	c, rec := echoRequest("Bearer garbage")

	require.NoError(t, RequireAuth(tm)(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	tm := token.NewManager("s", time.Hour)
	tok, err := tm.Issue(5)
	require.NoError(t, err)
	c, rec := echoRequest("Bearer " + tok)

	require.NoError(t, RequireAuth(tm)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(5), UserID(c))
}

func TestOptionalAuthPassesThroughAnonymously(t *testing.T) {
	tm := token.NewManager("s", time.Hour)
	c, rec := echoRequest("")

	require.NoError(t, OptionalAuth(tm)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, UserID(c))
}

func TestOptionalAuthIgnoresInvalidToken(t *testing.T) {
	// an expired or bogus token on an optional endpoint means "no identity",
	// not a rejection
	tm := token.NewManager("s", time.Hour)
	c, rec := echoRequest("Bearer not-valid")

	require.NoError(t, OptionalAuth(tm)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, UserID(c))
}

func TestOptionalAuthAttachesIdentity(t *testing.T) {
	tm := token.NewManager("s", time.Hour)
	tok, err := tm.Issue(8)
	require.NoError(t, err)
	c, rec := echoRequest("Bearer " + tok)

	require.NoError(t, OptionalAuth(tm)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(8), UserID(c))
}
