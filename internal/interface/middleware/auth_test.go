package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/careertrack/pkg/helpers"
)

func authRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserIDKey)})
	})
	return r
}

func doAuth(t *testing.T, r *gin.Engine, header string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestAuth_NoHeader(t *testing.T) {
	t.Parallel()
	r := authRouter(helpers.NewJWTManager("secret", time.Hour))

	w, body := doAuth(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "NO_TOKEN", body["code"])
}

func TestAuth_WrongScheme(t *testing.T) {
	t.Parallel()
	r := authRouter(helpers.NewJWTManager("secret", time.Hour))

	w, body := doAuth(t, r, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "NO_TOKEN", body["code"])
}

func TestAuth_BearerWithoutToken(t *testing.T) {
	t.Parallel()
	r := authRouter(helpers.NewJWTManager("secret", time.Hour))

	w, body := doAuth(t, r, "Bearer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "NO_TOKEN", body["code"])
}

func TestAuth_Expired(t *testing.T) {
	t.Parallel()
	jwt := helpers.NewJWTManager("secret", -time.Minute)
	token, _, err := jwt.Generate("u1", "u1@example.com")
	require.NoError(t, err)

	r := authRouter(helpers.NewJWTManager("secret", time.Hour))
	w, body := doAuth(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_EXPIRED", body["code"])
}

func TestAuth_Garbage(t *testing.T) {
	t.Parallel()
	r := authRouter(helpers.NewJWTManager("secret", time.Hour))

	w, body := doAuth(t, r, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuth_WrongSecret(t *testing.T) {
	t.Parallel()
	other := helpers.NewJWTManager("other-secret", time.Hour)
	token, _, err := other.Generate("u1", "u1@example.com")
	require.NoError(t, err)

	r := authRouter(helpers.NewJWTManager("secret", time.Hour))
	w, body := doAuth(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuth_Valid(t *testing.T) {
	t.Parallel()
	jwt := helpers.NewJWTManager("secret", time.Hour)
	token, _, err := jwt.Generate("u1", "u1@example.com")
	require.NoError(t, err)

	r := authRouter(jwt)
	w, body := doAuth(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", body["user_id"])
}
