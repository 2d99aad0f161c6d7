package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/careertrack/pkg/helpers"
	"github.com/oksasatya/careertrack/pkg/response"
)

// Context keys set for downstream handlers.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth extracts the bearer credential from the Authorization header,
// verifies it, and attaches the resolved identity to the request context.
// A single bad token terminates the request; there is no retry path.
//
// Failure modes, all 401:
//   - header absent or no bearer value -> NO_TOKEN
//   - signature valid but expired      -> TOKEN_EXPIRED
//   - anything else                    -> INVALID_TOKEN
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortErr(c, http.StatusUnauthorized, response.CodeNoToken, "no token provided")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			if errors.Is(err, helpers.ErrTokenExpired) {
				response.AbortErr(c, http.StatusUnauthorized, response.CodeTokenExpired, "token expired")
				return
			}
			response.AbortErr(c, http.StatusUnauthorized, response.CodeInvalidToken, "invalid token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

// bearerToken returns the credential portion of "Bearer <token>", or ""
// when the header is missing or has no second segment.
func bearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return fields[1]
}
