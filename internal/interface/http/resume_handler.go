package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/application"
	"github.com/oksasatya/careertrack/pkg/response"
)

type ResumeHandler struct {
	Resumes *application.ResumeService
	Logger  *logrus.Logger
}

func NewResumeHandler(resumes *application.ResumeService, logger *logrus.Logger) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes, Logger: logger}
}

// ---- Resumes ----

// Create POST /api/resumes
func (h *ResumeHandler) Create(c *gin.Context) {
	var req application.ResumeInput
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.Resumes.CreateResume(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "resume saved", gin.H{"resume": r})
}

// List GET /api/resumes
func (h *ResumeHandler) List(c *gin.Context) {
	list, err := h.Resumes.ListResumes(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"resumes": list})
}

// Get GET /api/resumes/:id
func (h *ResumeHandler) Get(c *gin.Context) {
	r, err := h.Resumes.GetResume(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"resume": r})
}

// Update PUT /api/resumes/:id
func (h *ResumeHandler) Update(c *gin.Context) {
	var req application.ResumeUpdate
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.Resumes.UpdateResume(c.Request.Context(), c.Param("id"), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "resume updated", gin.H{"resume": r})
}

// Delete DELETE /api/resumes/:id
func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.Resumes.DeleteResume(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "resume deleted", nil)
}

// ---- Presets ----

// CreatePreset POST /api/presets
func (h *ResumeHandler) CreatePreset(c *gin.Context) {
	var req application.PresetInput
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Resumes.CreatePreset(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "preset saved", gin.H{"preset": p})
}

// ListPresets GET /api/presets
func (h *ResumeHandler) ListPresets(c *gin.Context) {
	list, err := h.Resumes.ListPresets(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"presets": list})
}

// UpdatePreset PUT /api/presets/:id
func (h *ResumeHandler) UpdatePreset(c *gin.Context) {
	var req application.PresetUpdate
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Resumes.UpdatePreset(c.Request.Context(), c.Param("id"), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "preset updated", gin.H{"preset": p})
}

// DeletePreset DELETE /api/presets/:id
func (h *ResumeHandler) DeletePreset(c *gin.Context) {
	if err := h.Resumes.DeletePreset(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "preset deleted", nil)
}

// ---- Export ----

// ExportText POST /api/export/text {content, jobTitle, company}
// Streams the content back as an attachment named after the target role.
func (h *ResumeHandler) ExportText(c *gin.Context) {
	var req application.ExportRequest
	if !bindJSON(c, &req) {
		return
	}
	file, err := h.Resumes.ExportText(req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
