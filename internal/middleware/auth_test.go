package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"swasthyasetu-backend/pkg/utils"
)

func newAuthRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		userID, _ := c.Get("userID")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	r.GET("/secure", chain...)
	return r
}

func doGet(t *testing.T, r *gin.Engine, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	w := doGet(t, newAuthRouter(), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	w := doGet(t, newAuthRouter(), "Token abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	w := doGet(t, newAuthRouter(), "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateToken(11, "patient")
	require.NoError(t, err)

	w := doGet(t, newAuthRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"patient"`)
	require.Contains(t, w.Body.String(), `"userId":11`)
}

func TestAdminOnly(t *testing.T) {
	patientToken, err := utils.GenerateToken(1, "patient")
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(2, "admin")
	require.NoError(t, err)

	r := newAuthRouter(AdminOnly())

	w := doGet(t, r, "Bearer "+patientToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(t, r, "Bearer "+adminToken)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGovernmentOnly(t *testing.T) {
	patientToken, err := utils.GenerateToken(1, "patient")
	require.NoError(t, err)
	govToken, err := utils.GenerateToken(2, "government")
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(3, "admin")
	require.NoError(t, err)

	r := newAuthRouter(GovernmentOnly())

	w := doGet(t, r, "Bearer "+patientToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(t, r, "Bearer "+govToken)
	require.Equal(t, http.StatusOK, w.Code)

	// Hospital admins can view the dashboards too.
	w = doGet(t, r, "Bearer "+adminToken)
	require.Equal(t, http.StatusOK, w.Code)
}
