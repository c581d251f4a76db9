package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(tok *Tokens) *gin.Engine {
	r := gin.New()
	r.GET("/me", tok.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetInt("user_id"), "name": c.GetString("user_name")})
	})
	return r
}

func get(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	tok := NewTokens("secret", 7*24*time.Hour)
	raw, err := tok.Issue(7, "admin")
	require.NoError(t, err)

	w := get(newRouter(tok), "Bearer "+raw)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":7,"name":"admin"}`, w.Body.String())
	assert.Empty(t, w.Header().Get("X-New-Token"))
}

func TestJWTAuthRefreshesNearExpiry(t *testing.T) {
	tok := NewTokens("secret", time.Hour)
	raw, err := tok.Issue(1, "admin")
	require.NoError(t, err)

	w := get(newRouter(tok), "Bearer "+raw)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-New-Token"))
}

func TestJWTAuthRejects(t *testing.T) {
	tok := NewTokens("secret", time.Hour)
	other, _ := NewTokens("other", time.Hour).Issue(1, "admin")
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": 1, "name": "admin", "exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	noName, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": 1, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))

	r := newRouter(tok)
	for name, auth := range map[string]string{
		"missing":      "",
		"not bearer":   "Token abc",
		"garbage":      "Bearer abc.def.ghi",
		"wrong secret": "Bearer " + other,
		"expired":      "Bearer " + expired,
		"no name":      "Bearer " + noName,
	} {
		assert.Equal(t, http.StatusUnauthorized, get(r, auth).Code, name)
	}
}
