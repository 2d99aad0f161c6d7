package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried alongside every error payload. Clients branch on the
// code, not on the human-readable text.
const (
	CodeNoToken         = "NO_TOKEN"
	CodeTokenExpired    = "TOKEN_EXPIRED"
	CodeInvalidToken    = "INVALID_TOKEN"
	CodeValidationError = "VALIDATION_ERROR"
	CodeDuplicate       = "DUPLICATE"
	CodeNotFound        = "NOT_FOUND"
	CodeStorageError    = "STORAGE_ERROR"
	CodeRateLimited     = "RATE_LIMITED"
	CodeBadCredentials  = "INVALID_CREDENTIALS"
)

// OK writes a success envelope: a human-readable message plus the resource
// under its own key, e.g. {"message": "...", "certifications": [...]}.
func OK(c *gin.Context, status int, message string, payload gin.H) {
	if status == 0 {
		status = http.StatusOK
	}
	body := gin.H{}
	for k, v := range payload {
		body[k] = v
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// Err writes the error envelope {"error": <text>, "code": <CODE>} and leaves
// status selection to the caller.
func Err(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

// ErrDetails is Err plus a per-field breakdown, used for binding failures.
func ErrDetails(c *gin.Context, status int, code, message string, details map[string]string) {
	body := gin.H{"error": message, "code": code}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(status, body)
}

// AbortErr writes the error envelope and stops the handler chain. Used by
// middleware.
func AbortErr(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message, "code": code})
}
