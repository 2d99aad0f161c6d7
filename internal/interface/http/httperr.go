package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/application"
	"github.com/oksasatya/careertrack/internal/domain/repository"
	"github.com/oksasatya/careertrack/pkg/response"
	"github.com/oksasatya/careertrack/pkg/validation"
)

// writeErr translates service and repository errors into the error envelope.
// Anything unclassified is a storage failure: logged with its cause, reported
// without it.
func writeErr(c *gin.Context, log *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Err(c, http.StatusBadRequest, response.CodeValidationError, validationMessage(err))
	case errors.Is(err, repository.ErrDuplicate):
		response.Err(c, http.StatusConflict, response.CodeDuplicate, "resource already exists")
	case errors.Is(err, repository.ErrNotFound):
		response.Err(c, http.StatusNotFound, response.CodeNotFound, "resource not found")
	case errors.Is(err, application.ErrUserNotFound):
		response.Err(c, http.StatusNotFound, response.CodeNotFound, "user not found")
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Err(c, http.StatusUnauthorized, response.CodeBadCredentials, "invalid email or password")
	default:
		if log != nil {
			log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Err(c, http.StatusInternalServerError, response.CodeStorageError, "storage error")
	}
}

// validationMessage strips the sentinel prefix so clients see only the
// field-level text.
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, application.ErrValidation.Error()+": "); ok {
		return rest
	}
	return msg
}

// bindJSON decodes the body and reports binding failures in the error
// envelope with per-field details.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, response.CodeValidationError, "invalid payload", validation.ToDetails(err))
		return false
	}
	return true
}

// userID reads the identity set by the auth middleware.
func userID(c *gin.Context) string {
	return c.GetString("userID")
}
