package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/application"
	"github.com/oksasatya/careertrack/pkg/response"
)

type UploadHandler struct {
	Uploads *application.UploadService
	Logger  *logrus.Logger
}

func NewUploadHandler(uploads *application.UploadService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Uploads: uploads, Logger: logger}
}

// Upload POST /api/upload (multipart field "file" or "image")
// Accepts a single image and returns the relative URL it is served under.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		fh, err = c.FormFile("image")
	}
	if err != nil {
		response.Err(c, http.StatusBadRequest, response.CodeValidationError, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Uploads.Store(fh.Filename, fh.Size, f)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "file uploaded", gin.H{"url": url})
}
